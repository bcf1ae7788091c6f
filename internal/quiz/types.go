package quiz

// Question is a single multiple-choice item as returned by the generator.
type Question struct {
	Prompt  string   `json:"question" yaml:"question"`
	Options []string `json:"options" yaml:"options"`
	Answer  Answer   `json:"answer" yaml:"answer"`
}

// Answers maps a question index to the chosen option text.
type Answers map[int]string

// Clone returns an independent copy of the answer record.
func (a Answers) Clone() Answers {
	out := make(Answers, len(a))
	for index, choice := range a {
		out[index] = choice
	}
	return out
}

// Sheet is the file form of a quiz attempt.
type Sheet struct {
	Topic     string     `json:"topic,omitempty" yaml:"topic,omitempty"`
	Questions []Question `json:"questions" yaml:"questions"`
	Answers   Answers    `json:"answers,omitempty" yaml:"answers,omitempty"`
}
