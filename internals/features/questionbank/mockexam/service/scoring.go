// file: internals/features/questionbank/mockexam/service/scoring.go
package service

import (
	"github.com/google/uuid"

	cmodel "kpsc_backend/internals/features/questionbank/catalog/model"
)

// NegativeMark is the fraction deducted per wrong answer. A wrong answer
// therefore costs 1 + NegativeMark marks relative to answering correctly.
const NegativeMark = 0.33

// ScoreResult is the outcome of grading one submission.
type ScoreResult struct {
	Total      int     `json:"total"`
	Attempted  int     `json:"attempted"`
	Correct    int     `json:"correct"`
	Wrong      int     `json:"wrong"`
	Unanswered int     `json:"unanswered"`
	Score      float64 `json:"score"`
}

// GradedAnswer is one graded (question, selection) pair, in form order.
type GradedAnswer struct {
	QuestionID     uuid.UUID
	SelectedOption string
	IsCorrect      bool
}

// Grade scores a submission against the given question set. Unanswered
// questions score zero; each wrong answer deducts NegativeMark. Questions
// are graded in the order given, and only answered ones produce a
// GradedAnswer. Labels compare case-sensitively ("b" is not "B"); answer
// keys not in the question set are ignored. A question whose key is present
// counts as answered even when the selection is blank: a blank never matches
// the correct label, so it grades wrong.
func Grade(questions []cmodel.QuestionModel, answers map[uuid.UUID]string) (ScoreResult, []GradedAnswer) {
	res := ScoreResult{Total: len(questions)}
	graded := make([]GradedAnswer, 0, len(answers))

	for i := range questions {
		q := &questions[i]
		sel, ok := answers[q.QuestionID]
		if !ok {
			res.Unanswered++
			continue
		}
		res.Attempted++
		correct := sel == q.QuestionCorrectAnswer
		if correct {
			res.Correct++
		} else {
			res.Wrong++
		}
		graded = append(graded, GradedAnswer{
			QuestionID:     q.QuestionID,
			SelectedOption: sel,
			IsCorrect:      correct,
		})
	}

	res.Score = float64(res.Correct) - NegativeMark*float64(res.Wrong)
	return res, graded
}

// Percentage is the fixed-form exam score: correct answers over paper size,
// scaled to 100. An empty paper scores zero rather than dividing by zero.
func Percentage(correct, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(correct) / float64(total) * 100
}
