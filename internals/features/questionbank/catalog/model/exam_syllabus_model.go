// file: internals/features/questionbank/catalog/model/exam_syllabus_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExamSyllabusModel is a per-(exam, topic) sampling weight for the mock-exam
// generator. The count is a target, not a guarantee: a smaller pool
// under-fills silently.
type ExamSyllabusModel struct {
	ExamSyllabusID           uuid.UUID `gorm:"column:exam_syllabus_id;type:uuid;primaryKey" json:"exam_syllabus_id"`
	ExamSyllabusExamID       uuid.UUID `gorm:"column:exam_syllabus_exam_id;type:uuid;not null;uniqueIndex:uq_exam_syllabus_exam_topic" json:"exam_syllabus_exam_id"`
	ExamSyllabusTopicID      uuid.UUID `gorm:"column:exam_syllabus_topic_id;type:uuid;not null;uniqueIndex:uq_exam_syllabus_exam_topic" json:"exam_syllabus_topic_id"`
	ExamSyllabusNumQuestions int       `gorm:"column:exam_syllabus_num_questions;not null;default:10;check:exam_syllabus_num_questions >= 0" json:"exam_syllabus_num_questions"`

	Topic *TopicModel `gorm:"foreignKey:ExamSyllabusTopicID;references:TopicID" json:"topic,omitempty"`

	ExamSyllabusCreatedAt time.Time      `gorm:"column:exam_syllabus_created_at;autoCreateTime" json:"exam_syllabus_created_at"`
	ExamSyllabusUpdatedAt time.Time      `gorm:"column:exam_syllabus_updated_at;autoUpdateTime" json:"exam_syllabus_updated_at"`
	ExamSyllabusDeletedAt gorm.DeletedAt `gorm:"column:exam_syllabus_deleted_at;index" json:"exam_syllabus_deleted_at,omitempty"`
}

func (ExamSyllabusModel) TableName() string { return "exam_syllabus" }

func (m *ExamSyllabusModel) BeforeCreate(tx *gorm.DB) error {
	if m.ExamSyllabusID == uuid.Nil {
		m.ExamSyllabusID = uuid.New()
	}
	return nil
}
