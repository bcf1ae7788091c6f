package config

import "strings"

// Issue is one invalid config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError lists every invalid field found in one pass.
type ValidationError struct {
	Issues []Issue
}

// Error renders one "field: message" line per issue.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "invalid config"
	}
	var b strings.Builder
	b.WriteString("invalid config")
	for _, issue := range err.Issues {
		b.WriteString("\n  ")
		b.WriteString(issue.Field)
		b.WriteString(": ")
		b.WriteString(issue.Message)
	}
	return b.String()
}

type issueAdder func(field, message string)

type issueCollector struct {
	issues []Issue
}

func (c *issueCollector) add(field, message string) {
	c.issues = append(c.issues, Issue{Field: field, Message: message})
}

func (c *issueCollector) result() error {
	if len(c.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: c.issues}
}
