// file: internals/features/questionbank/attempts/service/practice.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	cmodel "kpsc_backend/internals/features/questionbank/catalog/model"
	cservice "kpsc_backend/internals/features/questionbank/catalog/service"
)

var ErrQuestionNotFound = errors.New("question not found")

// PracticeResult is the graded outcome of one standalone quiz answer.
type PracticeResult struct {
	Question  *cmodel.QuestionModel
	IsCorrect bool
}

// RecordPracticeAnswer grades a single quiz-mode selection and appends it to
// the answer history, so practice answers feed the progress dashboard the
// same way exam submissions do. The question must be visible to the
// requester; a blank selection never matches the correct label and grades
// wrong. Labels compare case-sensitively.
func (l *Ledger) RecordPracticeAnswer(ctx context.Context, userID uuid.UUID, instituteID *uuid.UUID, questionID uuid.UUID, selected string) (*PracticeResult, error) {
	var q cmodel.QuestionModel
	err := cservice.VisibleQuestions(l.DB.WithContext(ctx), instituteID).
		Preload("Topic").
		First(&q, "question_id = ?", questionID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}

	correct := selected == q.QuestionCorrectAnswer
	if err := l.RecordAnswers(ctx, userID, []AnswerInput{{
		QuestionID:     questionID,
		SelectedOption: selected,
		IsCorrect:      correct,
	}}); err != nil {
		return nil, err
	}
	return &PracticeResult{Question: &q, IsCorrect: correct}, nil
}
