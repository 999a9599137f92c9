// file: internals/features/questionbank/attempts/service/ledger.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	amodel "kpsc_backend/internals/features/questionbank/attempts/model"
	helper "kpsc_backend/internals/helpers"
)

// ErrAlreadyAttempted is expected user-facing flow, not a fatal error: the
// caller maps it to a 400-style conflict message.
var ErrAlreadyAttempted = errors.New("already attempted")

// AttemptPolicy is the per-exam-kind retake rule consulted by the ledger.
type AttemptPolicy struct {
	AllowRetake bool
}

var (
	// Daily exams: one attempt per (user, instance); the storage-layer
	// unique index is the correctness backstop under concurrent submits.
	DailyExamPolicy = AttemptPolicy{AllowRetake: false}
	// Model exams: unlimited retakes, every attempt persisted.
	ModelExamPolicy = AttemptPolicy{AllowRetake: true}
)

// AttemptRecord is any fixed-form attempt row the ledger can persist.
type AttemptRecord interface {
	AttemptUserID() uuid.UUID
	// AttemptScope narrows a query to rows with this record's
	// (user, exam-instance) key.
	AttemptScope(db *gorm.DB) *gorm.DB
}

type Ledger struct {
	DB *gorm.DB
}

func NewLedger(db *gorm.DB) *Ledger {
	return &Ledger{DB: db}
}

// AnswerInput is one answered question heading into the ledger.
type AnswerInput struct {
	QuestionID     uuid.UUID
	SelectedOption string
	IsCorrect      bool
}

// RecordAnswers bulk-writes one AnswerRecord per answered question.
// Best-effort insert-or-skip: a concurrent duplicate submission hits the
// (user, question, answered_at) unique index and is dropped silently
// instead of failing the whole submission.
func (l *Ledger) RecordAnswers(ctx context.Context, userID uuid.UUID, answers []AnswerInput) error {
	if len(answers) == 0 {
		return nil
	}
	now := time.Now()
	rows := make([]amodel.UserAnswerModel, 0, len(answers))
	for _, a := range answers {
		rows = append(rows, amodel.UserAnswerModel{
			UserAnswerUserID:         userID,
			UserAnswerQuestionID:     a.QuestionID,
			UserAnswerSelectedOption: a.SelectedOption,
			UserAnswerIsCorrect:      a.IsCorrect,
			UserAnswerAnsweredAt:     now,
		})
	}
	return l.DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error
}

// RecordAttempt persists a fixed-form attempt under the given policy.
// When retakes are forbidden, an existing (user, instance) row yields
// ErrAlreadyAttempted; the pre-insert lookup is just the fast path — the
// unique constraint catches the race two concurrent submissions would win.
func (l *Ledger) RecordAttempt(ctx context.Context, pol AttemptPolicy, rec AttemptRecord) error {
	db := l.DB.WithContext(ctx)

	if !pol.AllowRetake {
		var count int64
		if err := rec.AttemptScope(db).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrAlreadyAttempted
		}
	}

	if err := db.Create(rec).Error; err != nil {
		if !pol.AllowRetake && helper.IsUniqueViolation(err) {
			return ErrAlreadyAttempted
		}
		return err
	}
	return nil
}

// AnswersFor returns the user's answer history, newest first, optionally
// restricted to questions belonging to any of the given exams (focus mode).
// limit <= 0 returns the full history.
func (l *Ledger) AnswersFor(ctx context.Context, userID uuid.UUID, examIDs []uuid.UUID, limit int) ([]amodel.UserAnswerModel, error) {
	q := l.DB.WithContext(ctx).
		Model(&amodel.UserAnswerModel{}).
		Preload("Question").
		Preload("Question.Topic").
		Preload("Question.Exams").
		Where("user_answer_user_id = ?", userID)

	if len(examIDs) > 0 {
		q = q.Where(
			"user_answer_question_id IN (?)",
			l.DB.WithContext(ctx).Table("question_exams").
				Select("question_id").
				Where("exam_id IN ?", examIDs),
		)
	}

	q = q.Order("user_answer_answered_at DESC, user_answer_id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var rows []amodel.UserAnswerModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
