package quiz

// Outcome classifies a graded question.
type Outcome string

const (
	OutcomeCorrect    Outcome = "correct"
	OutcomeIncorrect  Outcome = "incorrect"
	OutcomeUnanswered Outcome = "unanswered"
	// OutcomeUngradable marks questions whose answer does not resolve to an option.
	OutcomeUngradable Outcome = "ungradable"
)

// Result is the grading outcome for a single question.
type Result struct {
	Index        int
	Choice       string
	Answered     bool
	CorrectIndex int
	Resolved     bool
	Outcome      Outcome
}

// Report aggregates per-question results.
type Report struct {
	Results []Result
	Score   int
	Total   int
}

// Grade scores every question against the recorded answers.
func Grade(questions []Question, answers Answers) Report {
	report := Report{
		Results: make([]Result, 0, len(questions)),
		Total:   len(questions),
	}
	for index, q := range questions {
		result := gradeQuestion(index, q, answers)
		if result.Outcome == OutcomeCorrect {
			report.Score++
		}
		report.Results = append(report.Results, result)
	}
	return report
}

// Score returns the number of correctly answered questions.
func Score(questions []Question, answers Answers) int {
	return Grade(questions, answers).Score
}

func gradeQuestion(index int, q Question, answers Answers) Result {
	choice, answered := answers[index]
	result := Result{Index: index, Choice: choice, Answered: answered}
	correct, ok := CorrectOption(q)
	if !ok {
		result.Outcome = OutcomeUngradable
		return result
	}
	result.CorrectIndex, result.Resolved = CorrectIndex(q)
	switch {
	case !answered:
		result.Outcome = OutcomeUnanswered
	case NormalizeAnswerText(choice) == NormalizeAnswerText(correct):
		result.Outcome = OutcomeCorrect
	default:
		result.Outcome = OutcomeIncorrect
	}
	return result
}
