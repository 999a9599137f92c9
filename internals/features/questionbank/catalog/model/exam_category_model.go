// file: internals/features/questionbank/catalog/model/exam_category_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExamCategoryModel struct {
	ExamCategoryID          uuid.UUID `gorm:"column:exam_category_id;type:uuid;primaryKey" json:"exam_category_id"`
	ExamCategoryName        string    `gorm:"column:exam_category_name;type:varchar(100);not null;uniqueIndex:uq_exam_categories_name" json:"exam_category_name"`
	ExamCategoryDescription *string   `gorm:"column:exam_category_description;type:text" json:"exam_category_description,omitempty"`
	ExamCategoryOrder       int       `gorm:"column:exam_category_order;not null;default:0" json:"exam_category_order"`

	Exams []ExamModel `gorm:"foreignKey:ExamCategoryID;references:ExamCategoryID" json:"exams,omitempty"`

	ExamCategoryCreatedAt time.Time      `gorm:"column:exam_category_created_at;autoCreateTime" json:"exam_category_created_at"`
	ExamCategoryUpdatedAt time.Time      `gorm:"column:exam_category_updated_at;autoUpdateTime" json:"exam_category_updated_at"`
	ExamCategoryDeletedAt gorm.DeletedAt `gorm:"column:exam_category_deleted_at;index" json:"exam_category_deleted_at,omitempty"`
}

func (ExamCategoryModel) TableName() string { return "exam_categories" }

func (m *ExamCategoryModel) BeforeCreate(tx *gorm.DB) error {
	if m.ExamCategoryID == uuid.Nil {
		m.ExamCategoryID = uuid.New()
	}
	return nil
}
