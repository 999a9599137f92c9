// file: internals/features/questionbank/catalog/model/topic_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TopicModel struct {
	TopicID   uuid.UUID `gorm:"column:topic_id;type:uuid;primaryKey" json:"topic_id"`
	TopicName string    `gorm:"column:topic_name;type:varchar(100);not null" json:"topic_name"`

	// NULL = globally visible; otherwise private to the owning institute.
	TopicInstituteID *uuid.UUID `gorm:"column:topic_institute_id;type:uuid;index" json:"topic_institute_id,omitempty"`

	TopicCreatedAt time.Time      `gorm:"column:topic_created_at;autoCreateTime" json:"topic_created_at"`
	TopicUpdatedAt time.Time      `gorm:"column:topic_updated_at;autoUpdateTime" json:"topic_updated_at"`
	TopicDeletedAt gorm.DeletedAt `gorm:"column:topic_deleted_at;index" json:"topic_deleted_at,omitempty"`
}

func (TopicModel) TableName() string { return "topics" }

func (m *TopicModel) BeforeCreate(tx *gorm.DB) error {
	if m.TopicID == uuid.Nil {
		m.TopicID = uuid.New()
	}
	return nil
}
