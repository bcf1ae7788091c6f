package quiz

import "strings"

// answerLetters are the letter answers accepted for the first four options.
const answerLetters = "ABCD"

// CorrectIndex resolves a question's answer to a zero-based option index.
// The boolean is false when the answer cannot be resolved. Numeric answers are
// returned unchanged, without checking them against the option count.
func CorrectIndex(q Question) (int, bool) {
	switch q.Answer.Kind {
	case AnswerIndex:
		return q.Answer.Index, true
	case AnswerText:
		return resolveText(q.Answer.Text, q.Options)
	default:
		return 0, false
	}
}

func resolveText(text string, options []string) (int, bool) {
	letter := strings.ToUpper(strings.TrimSpace(text))
	if len(letter) == 1 {
		if index := strings.Index(answerLetters, letter); index >= 0 {
			return index, true
		}
	}
	want := NormalizeAnswerText(text)
	for index, option := range options {
		if NormalizeAnswerText(option) == want {
			return index, true
		}
	}
	return 0, false
}

// CorrectOption returns the option text at the resolved index. It reports false
// for unresolvable answers and for indexes outside the option list.
func CorrectOption(q Question) (string, bool) {
	index, ok := CorrectIndex(q)
	if !ok || index < 0 || index >= len(q.Options) {
		return "", false
	}
	return q.Options[index], true
}
