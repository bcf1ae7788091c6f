package plain

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"quizgen/internal/quiz"
)

// readLine reads a line from the reader, trimming line endings.
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil {
		if err == io.EOF {
			return strings.TrimRight(line, "\r\n"), io.EOF
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// PromptLine prints a label and reads one line. A blank line yields
// defaultValue. io.EOF is returned only when nothing was read.
func PromptLine(reader *bufio.Reader, out io.Writer, label, defaultValue string) (string, error) {
	if defaultValue != "" {
		fmt.Fprintf(out, "%s [%s]: ", label, defaultValue)
	} else {
		fmt.Fprintf(out, "%s: ", label)
	}
	line, err := readLine(reader)
	if err != nil && err != io.EOF {
		return "", err
	}
	if err == io.EOF && line == "" {
		fmt.Fprintln(out)
		return "", io.EOF
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return defaultValue, nil
	}
	return line, nil
}

// PromptYesNo prompts for a yes/no response with a default.
func PromptYesNo(reader *bufio.Reader, out io.Writer, label string, defaultYes bool) (bool, error) {
	suffix := "y/N"
	if defaultYes {
		suffix = "Y/n"
	}
	for {
		fmt.Fprintf(out, "%s [%s]: ", label, suffix)
		line, err := readLine(reader)
		if err != nil && err != io.EOF {
			return false, err
		}
		line = strings.TrimSpace(strings.ToLower(line))
		if line == "" {
			if err == io.EOF {
				fmt.Fprintln(out)
				return false, nil
			}
			return defaultYes, nil
		}
		switch line {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			if err == io.EOF {
				return false, fmt.Errorf("invalid response %q", line)
			}
			fmt.Fprintln(out, "Please answer yes or no.")
		}
	}
}

// parseChoice maps typed input to an option index. It accepts a letter,
// a 1-based number, or the option text.
func parseChoice(input string, options []string) (int, bool) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return 0, false
	}
	if utf8.RuneCountInString(trimmed) == 1 {
		letter := strings.ToUpper(trimmed)[0]
		if letter >= 'A' && letter <= 'Z' {
			index := int(letter - 'A')
			if index < len(options) {
				return index, true
			}
		}
	}
	if number, err := strconv.Atoi(trimmed); err == nil {
		if number >= 1 && number <= len(options) {
			return number - 1, true
		}
		return 0, false
	}
	normalized := quiz.NormalizeAnswerText(trimmed)
	for i, option := range options {
		if quiz.NormalizeAnswerText(option) == normalized {
			return i, true
		}
	}
	return 0, false
}

// optionLabel returns A, B, C... and falls back to numbers past Z.
func optionLabel(index int) string {
	if index >= 0 && index < 26 {
		return string(rune('A' + index))
	}
	return strconv.Itoa(index + 1)
}

// choiceHint describes the accepted answers for a question.
func choiceHint(options []string) string {
	switch len(options) {
	case 0:
		return "no options"
	case 1:
		return "A"
	}
	return "A-" + optionLabel(len(options)-1)
}
