// file: internals/features/questionbank/attempts/model/daily_exam_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	cmodel "kpsc_backend/internals/features/questionbank/catalog/model"
)

// DailyExamModel is a fixed-form paper: a pre-assembled, immutable question
// set published for one calendar date.
type DailyExamModel struct {
	DailyExamID   uuid.UUID `gorm:"column:daily_exam_id;type:uuid;primaryKey" json:"daily_exam_id"`
	DailyExamDate time.Time `gorm:"column:daily_exam_date;type:date;not null;uniqueIndex:uq_daily_exams_date" json:"daily_exam_date"`

	Questions []cmodel.QuestionModel `gorm:"many2many:daily_exam_questions;foreignKey:DailyExamID;joinForeignKey:DailyExamID;References:QuestionID;joinReferences:QuestionID" json:"questions,omitempty"`

	DailyExamCreatedAt time.Time      `gorm:"column:daily_exam_created_at;autoCreateTime" json:"daily_exam_created_at"`
	DailyExamDeletedAt gorm.DeletedAt `gorm:"column:daily_exam_deleted_at;index" json:"daily_exam_deleted_at,omitempty"`
}

func (DailyExamModel) TableName() string { return "daily_exams" }

func (m *DailyExamModel) BeforeCreate(tx *gorm.DB) error {
	if m.DailyExamID == uuid.Nil {
		m.DailyExamID = uuid.New()
	}
	return nil
}

// DailyExamAttemptModel: one outcome per (user, daily exam). The unique
// index is the real single-attempt enforcement; the application-level
// lookup only produces the friendly error message.
type DailyExamAttemptModel struct {
	DailyExamAttemptID          uuid.UUID `gorm:"column:daily_exam_attempt_id;type:uuid;primaryKey" json:"daily_exam_attempt_id"`
	DailyExamAttemptUserID      uuid.UUID `gorm:"column:daily_exam_attempt_user_id;type:uuid;not null;uniqueIndex:uq_daily_exam_attempts_once" json:"daily_exam_attempt_user_id"`
	DailyExamAttemptDailyExamID uuid.UUID `gorm:"column:daily_exam_attempt_daily_exam_id;type:uuid;not null;uniqueIndex:uq_daily_exam_attempts_once" json:"daily_exam_attempt_daily_exam_id"`

	DailyExamAttemptScore            float64 `gorm:"column:daily_exam_attempt_score;not null" json:"daily_exam_attempt_score"`
	DailyExamAttemptTimeTakenSeconds int     `gorm:"column:daily_exam_attempt_time_taken_seconds;not null" json:"daily_exam_attempt_time_taken_seconds"`

	DailyExamAttemptSubmittedAt time.Time `gorm:"column:daily_exam_attempt_submitted_at;autoCreateTime" json:"daily_exam_attempt_submitted_at"`
}

func (DailyExamAttemptModel) TableName() string { return "daily_exam_attempts" }

func (m *DailyExamAttemptModel) BeforeCreate(tx *gorm.DB) error {
	if m.DailyExamAttemptID == uuid.Nil {
		m.DailyExamAttemptID = uuid.New()
	}
	return nil
}

// AttemptUserID / AttemptScope implement the ledger's AttemptRecord.
func (m *DailyExamAttemptModel) AttemptUserID() uuid.UUID { return m.DailyExamAttemptUserID }

func (m *DailyExamAttemptModel) AttemptScope(db *gorm.DB) *gorm.DB {
	return db.Model(&DailyExamAttemptModel{}).
		Where("daily_exam_attempt_user_id = ? AND daily_exam_attempt_daily_exam_id = ?",
			m.DailyExamAttemptUserID, m.DailyExamAttemptDailyExamID)
}
