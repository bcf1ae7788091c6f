package quiz

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem in a quiz.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("quiz validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// Validate reports questions that can never be graded. Grading itself stays
// permissive; callers opt into this check.
func Validate(questions []Question) error {
	collector := &issueCollector{}
	if len(questions) == 0 {
		collector.add("questions", "must include at least one entry")
	}
	for i, q := range questions {
		prefix := fmt.Sprintf("questions[%d]", i)
		if strings.TrimSpace(q.Prompt) == "" {
			collector.add(prefix+".question", "is required")
		}
		if len(q.Options) == 0 {
			collector.add(prefix+".options", "must include at least one entry")
		}
		index, ok := CorrectIndex(q)
		switch {
		case q.Answer.Kind == AnswerMissing:
			collector.add(prefix+".answer", "is required")
		case !ok:
			collector.add(prefix+".answer", fmt.Sprintf("does not match any option (%s)", q.Answer))
		case index < 0 || index >= len(q.Options):
			collector.add(prefix+".answer", fmt.Sprintf("index %d out of range", index))
		}
	}
	return collector.result()
}
