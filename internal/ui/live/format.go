package live

import (
	"strconv"
	"strings"
)

// formatHeading renders a numbered question prompt.
func formatHeading(index int, prompt string) string {
	return fmtInt(index+1) + ". " + strings.Join(strings.Fields(prompt), " ")
}

// formatOption renders an option with cursor and radio markers.
func formatOption(index int, option string, cursor, chosen bool) string {
	pointer := "  "
	if cursor {
		pointer = "> "
	}
	radio := "( )"
	if chosen {
		radio = "(•)"
	}
	return "  " + pointer + radio + " " + optionLabel(index) + ". " + option
}

// optionLabel returns A, B, C... and falls back to numbers past Z.
func optionLabel(index int) string {
	if index >= 0 && index < 26 {
		return string(rune('A' + index))
	}
	return fmtInt(index + 1)
}

// formatScore renders the submission score line.
func formatScore(score, total int) string {
	return "Your score: " + fmtInt(score) + " / " + fmtInt(total)
}

// fmtInt converts an int to string.
func fmtInt(value int) string {
	return strconv.Itoa(value)
}
