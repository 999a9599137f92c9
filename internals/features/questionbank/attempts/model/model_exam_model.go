// file: internals/features/questionbank/attempts/model/model_exam_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	cmodel "kpsc_backend/internals/features/questionbank/catalog/model"
)

// ModelExamModel is a curated fixed-form paper attached to a main exam
// (e.g. "LDC Model Paper 1"). Retakes are allowed, so attempts carry no
// uniqueness constraint.
type ModelExamModel struct {
	ModelExamID              uuid.UUID `gorm:"column:model_exam_id;type:uuid;primaryKey" json:"model_exam_id"`
	ModelExamName            string    `gorm:"column:model_exam_name;type:varchar(255);not null" json:"model_exam_name"`
	ModelExamExamID          uuid.UUID `gorm:"column:model_exam_exam_id;type:uuid;not null;index" json:"model_exam_exam_id"`
	ModelExamDurationMinutes int       `gorm:"column:model_exam_duration_minutes;not null;default:120" json:"model_exam_duration_minutes"`

	Questions []cmodel.QuestionModel `gorm:"many2many:model_exam_questions;foreignKey:ModelExamID;joinForeignKey:ModelExamID;References:QuestionID;joinReferences:QuestionID" json:"questions,omitempty"`

	ModelExamCreatedAt time.Time      `gorm:"column:model_exam_created_at;autoCreateTime" json:"model_exam_created_at"`
	ModelExamDeletedAt gorm.DeletedAt `gorm:"column:model_exam_deleted_at;index" json:"model_exam_deleted_at,omitempty"`
}

func (ModelExamModel) TableName() string { return "model_exams" }

func (m *ModelExamModel) BeforeCreate(tx *gorm.DB) error {
	if m.ModelExamID == uuid.Nil {
		m.ModelExamID = uuid.New()
	}
	return nil
}

type ModelExamAttemptModel struct {
	ModelExamAttemptID          uuid.UUID `gorm:"column:model_exam_attempt_id;type:uuid;primaryKey" json:"model_exam_attempt_id"`
	ModelExamAttemptUserID      uuid.UUID `gorm:"column:model_exam_attempt_user_id;type:uuid;not null;index" json:"model_exam_attempt_user_id"`
	ModelExamAttemptModelExamID uuid.UUID `gorm:"column:model_exam_attempt_model_exam_id;type:uuid;not null;index" json:"model_exam_attempt_model_exam_id"`

	ModelExamAttemptScore            float64 `gorm:"column:model_exam_attempt_score;not null" json:"model_exam_attempt_score"`
	ModelExamAttemptTimeTakenSeconds int     `gorm:"column:model_exam_attempt_time_taken_seconds;not null" json:"model_exam_attempt_time_taken_seconds"`

	ModelExamAttemptSubmittedAt time.Time `gorm:"column:model_exam_attempt_submitted_at;autoCreateTime" json:"model_exam_attempt_submitted_at"`
}

func (ModelExamAttemptModel) TableName() string { return "model_exam_attempts" }

func (m *ModelExamAttemptModel) BeforeCreate(tx *gorm.DB) error {
	if m.ModelExamAttemptID == uuid.Nil {
		m.ModelExamAttemptID = uuid.New()
	}
	return nil
}

func (m *ModelExamAttemptModel) AttemptUserID() uuid.UUID { return m.ModelExamAttemptUserID }

func (m *ModelExamAttemptModel) AttemptScope(db *gorm.DB) *gorm.DB {
	return db.Model(&ModelExamAttemptModel{}).
		Where("model_exam_attempt_user_id = ? AND model_exam_attempt_model_exam_id = ?",
			m.ModelExamAttemptUserID, m.ModelExamAttemptModelExamID)
}
