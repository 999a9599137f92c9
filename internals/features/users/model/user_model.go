// file: internals/features/users/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	UserID           uuid.UUID `gorm:"column:user_id;type:uuid;primaryKey" json:"user_id"`
	UserUsername     string    `gorm:"column:user_username;type:varchar(60);not null;uniqueIndex:uq_users_username" json:"user_username"`
	UserEmail        string    `gorm:"column:user_email;type:varchar(255);not null" json:"user_email"`
	UserFirstName    *string   `gorm:"column:user_first_name;type:varchar(100)" json:"user_first_name,omitempty"`
	UserLastName     *string   `gorm:"column:user_last_name;type:varchar(100)" json:"user_last_name,omitempty"`
	UserPasswordHash string    `gorm:"column:user_password_hash;type:varchar(100);not null" json:"-"`

	UserCreatedAt time.Time      `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"user_deleted_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }

func (m *UserModel) BeforeCreate(tx *gorm.DB) error {
	if m.UserID == uuid.Nil {
		m.UserID = uuid.New()
	}
	return nil
}
