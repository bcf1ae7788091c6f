package quiz

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// AnswerKind tags the shape of a question's correctness indicator.
type AnswerKind int

const (
	// AnswerMissing means no answer was supplied.
	AnswerMissing AnswerKind = iota
	// AnswerIndex is a zero-based option index.
	AnswerIndex
	// AnswerText is a letter or option text.
	AnswerText
	// AnswerInvalid is any other value (fractions, booleans, objects).
	AnswerInvalid
)

// Answer is the polymorphic "answer" field of a question.
type Answer struct {
	Kind  AnswerKind
	Index int
	Text  string
}

// IndexAnswer builds an index answer.
func IndexAnswer(index int) Answer {
	return Answer{Kind: AnswerIndex, Index: index}
}

// TextAnswer builds a letter or option-text answer.
func TextAnswer(text string) Answer {
	return Answer{Kind: AnswerText, Text: text}
}

// String renders the answer for display and logs.
func (a Answer) String() string {
	switch a.Kind {
	case AnswerIndex:
		return strconv.Itoa(a.Index)
	case AnswerText:
		return a.Text
	case AnswerInvalid:
		return "<invalid>"
	default:
		return "<missing>"
	}
}

// UnmarshalJSON decodes a number, string or null. Other shapes decode as invalid
// rather than failing the whole payload.
func (a *Answer) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = Answer{Kind: AnswerMissing}
		return nil
	}
	switch data[0] {
	case '"':
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return fmt.Errorf("decode answer text: %w", err)
		}
		*a = TextAnswer(text)
		return nil
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		*a = answerFromNumber(string(data))
		return nil
	default:
		*a = Answer{Kind: AnswerInvalid}
		return nil
	}
}

// MarshalJSON encodes the answer back to its wire shape.
func (a Answer) MarshalJSON() ([]byte, error) {
	switch a.Kind {
	case AnswerIndex:
		return []byte(strconv.Itoa(a.Index)), nil
	case AnswerText:
		return json.Marshal(a.Text)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalYAML decodes a scalar answer from a quiz sheet.
func (a *Answer) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		*a = Answer{Kind: AnswerInvalid}
		return nil
	}
	switch node.ShortTag() {
	case "!!null":
		*a = Answer{Kind: AnswerMissing}
	case "!!int", "!!float":
		*a = answerFromNumber(node.Value)
	case "!!str":
		*a = TextAnswer(node.Value)
	default:
		*a = Answer{Kind: AnswerInvalid}
	}
	return nil
}

// MarshalYAML encodes the answer as a YAML scalar.
func (a Answer) MarshalYAML() (any, error) {
	switch a.Kind {
	case AnswerIndex:
		return a.Index, nil
	case AnswerText:
		return a.Text, nil
	default:
		return nil, nil
	}
}

// answerFromNumber keeps integral numbers (including 2.0) and rejects fractions.
func answerFromNumber(raw string) Answer {
	if index, err := strconv.Atoi(raw); err == nil {
		return IndexAnswer(index)
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || value != float64(int(value)) {
		return Answer{Kind: AnswerInvalid}
	}
	return IndexAnswer(int(value))
}
