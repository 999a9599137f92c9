// file: internals/features/questionbank/attempts/model/user_answer_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	cmodel "kpsc_backend/internals/features/questionbank/catalog/model"
)

// UserAnswerModel is one immutable (user, question, label, correctness) fact,
// written exactly once at submission time and read-many by the progress
// aggregator. The unique index backs the insert-or-skip bulk write: a
// duplicate submission within the same second is silently dropped.
type UserAnswerModel struct {
	UserAnswerID         uuid.UUID `gorm:"column:user_answer_id;type:uuid;primaryKey" json:"user_answer_id"`
	UserAnswerUserID     uuid.UUID `gorm:"column:user_answer_user_id;type:uuid;not null;uniqueIndex:uq_user_answers_dedup;index" json:"user_answer_user_id"`
	UserAnswerQuestionID uuid.UUID `gorm:"column:user_answer_question_id;type:uuid;not null;uniqueIndex:uq_user_answers_dedup" json:"user_answer_question_id"`

	UserAnswerSelectedOption string `gorm:"column:user_answer_selected_option;type:char(1);not null" json:"user_answer_selected_option"`
	UserAnswerIsCorrect      bool   `gorm:"column:user_answer_is_correct;not null" json:"user_answer_is_correct"`

	UserAnswerAnsweredAt time.Time `gorm:"column:user_answer_answered_at;not null;uniqueIndex:uq_user_answers_dedup" json:"user_answer_answered_at"`

	Question *cmodel.QuestionModel `gorm:"foreignKey:UserAnswerQuestionID;references:QuestionID" json:"question,omitempty"`
}

func (UserAnswerModel) TableName() string { return "user_answers" }

func (m *UserAnswerModel) BeforeCreate(tx *gorm.DB) error {
	if m.UserAnswerID == uuid.Nil {
		m.UserAnswerID = uuid.New()
	}
	if m.UserAnswerAnsweredAt.IsZero() {
		m.UserAnswerAnsweredAt = time.Now()
	}
	return nil
}
