// file: internals/features/institutes/model/institute_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InstituteModel struct {
	InstituteID          uuid.UUID `gorm:"column:institute_id;type:uuid;primaryKey" json:"institute_id"`
	InstituteName        string    `gorm:"column:institute_name;type:varchar(150);not null" json:"institute_name"`
	InstituteDescription *string   `gorm:"column:institute_description;type:text" json:"institute_description,omitempty"`

	// One institute per owning user (unique backstop at the storage layer).
	InstituteOwnerUserID uuid.UUID `gorm:"column:institute_owner_user_id;type:uuid;not null;uniqueIndex:uq_institutes_owner" json:"institute_owner_user_id"`

	InstituteCreatedAt time.Time      `gorm:"column:institute_created_at;autoCreateTime" json:"institute_created_at"`
	InstituteUpdatedAt time.Time      `gorm:"column:institute_updated_at;autoUpdateTime" json:"institute_updated_at"`
	InstituteDeletedAt gorm.DeletedAt `gorm:"column:institute_deleted_at;index" json:"institute_deleted_at,omitempty"`
}

func (InstituteModel) TableName() string { return "institutes" }

func (m *InstituteModel) BeforeCreate(tx *gorm.DB) error {
	if m.InstituteID == uuid.Nil {
		m.InstituteID = uuid.New()
	}
	return nil
}
