// file: internals/features/users/model/user_profile_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	cmodel "kpsc_backend/internals/features/questionbank/catalog/model"
)

// MaxPreferredExams caps the focus-exam list a user may declare.
const MaxPreferredExams = 3

type UserProfileModel struct {
	UserProfileID     uuid.UUID `gorm:"column:user_profile_id;type:uuid;primaryKey" json:"user_profile_id"`
	UserProfileUserID uuid.UUID `gorm:"column:user_profile_user_id;type:uuid;not null;uniqueIndex:uq_user_profiles_user" json:"user_profile_user_id"`

	UserProfileQualifications      pq.StringArray `gorm:"column:user_profile_qualifications;type:text[]" json:"user_profile_qualifications,omitempty"`
	UserProfilePlace               *string        `gorm:"column:user_profile_place;type:varchar(100)" json:"user_profile_place,omitempty"`
	UserProfileBio                 *string        `gorm:"column:user_profile_bio;type:text" json:"user_profile_bio,omitempty"`
	UserProfileDateOfBirth         *time.Time     `gorm:"column:user_profile_date_of_birth;type:date" json:"user_profile_date_of_birth,omitempty"`
	UserProfilePreferredDifficulty *string        `gorm:"column:user_profile_preferred_difficulty;type:varchar(20)" json:"user_profile_preferred_difficulty,omitempty"`

	// Home tenant; NULL means the user only sees global content.
	UserProfileInstituteID *uuid.UUID `gorm:"column:user_profile_institute_id;type:uuid" json:"user_profile_institute_id,omitempty"`

	// Focus exams for the progress dashboard (at most MaxPreferredExams).
	PreferredExams []cmodel.ExamModel `gorm:"many2many:user_preferred_exams;foreignKey:UserProfileID;joinForeignKey:UserProfileID;References:ExamID;joinReferences:ExamID" json:"preferred_exams,omitempty"`

	UserProfileCreatedAt time.Time      `gorm:"column:user_profile_created_at;autoCreateTime" json:"user_profile_created_at"`
	UserProfileUpdatedAt time.Time      `gorm:"column:user_profile_updated_at;autoUpdateTime" json:"user_profile_updated_at"`
	UserProfileDeletedAt gorm.DeletedAt `gorm:"column:user_profile_deleted_at;index" json:"user_profile_deleted_at,omitempty"`
}

func (UserProfileModel) TableName() string { return "user_profiles" }

func (m *UserProfileModel) BeforeCreate(tx *gorm.DB) error {
	if m.UserProfileID == uuid.Nil {
		m.UserProfileID = uuid.New()
	}
	return nil
}
