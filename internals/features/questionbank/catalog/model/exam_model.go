// file: internals/features/questionbank/catalog/model/exam_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExamModel struct {
	ExamID              uuid.UUID  `gorm:"column:exam_id;type:uuid;primaryKey" json:"exam_id"`
	ExamCategoryID      *uuid.UUID `gorm:"column:exam_category_id;type:uuid" json:"exam_category_id,omitempty"`
	ExamName            string     `gorm:"column:exam_name;type:varchar(100);not null" json:"exam_name"`
	ExamYear            int        `gorm:"column:exam_year;not null" json:"exam_year"`
	ExamDurationMinutes int        `gorm:"column:exam_duration_minutes;not null;default:75" json:"exam_duration_minutes"`

	ExamCreatedAt time.Time      `gorm:"column:exam_created_at;autoCreateTime" json:"exam_created_at"`
	ExamUpdatedAt time.Time      `gorm:"column:exam_updated_at;autoUpdateTime" json:"exam_updated_at"`
	ExamDeletedAt gorm.DeletedAt `gorm:"column:exam_deleted_at;index" json:"exam_deleted_at,omitempty"`
}

func (ExamModel) TableName() string { return "exams" }

func (m *ExamModel) BeforeCreate(tx *gorm.DB) error {
	if m.ExamID == uuid.Nil {
		m.ExamID = uuid.New()
	}
	return nil
}
