// file: internals/features/questionbank/engagement/model/bookmark_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	cmodel "kpsc_backend/internals/features/questionbank/catalog/model"
)

// BookmarkModel is a user's saved question. One row per (user, question).
type BookmarkModel struct {
	BookmarkID         uuid.UUID `gorm:"column:bookmark_id;type:uuid;primaryKey" json:"bookmark_id"`
	BookmarkUserID     uuid.UUID `gorm:"column:bookmark_user_id;type:uuid;not null;uniqueIndex:uq_bookmarks_user_question" json:"bookmark_user_id"`
	BookmarkQuestionID uuid.UUID `gorm:"column:bookmark_question_id;type:uuid;not null;uniqueIndex:uq_bookmarks_user_question" json:"bookmark_question_id"`

	Question *cmodel.QuestionModel `gorm:"foreignKey:BookmarkQuestionID;references:QuestionID" json:"question,omitempty"`

	BookmarkCreatedAt time.Time `gorm:"column:bookmark_created_at;autoCreateTime" json:"bookmark_created_at"`
}

func (BookmarkModel) TableName() string { return "bookmarks" }

func (m *BookmarkModel) BeforeCreate(tx *gorm.DB) error {
	if m.BookmarkID == uuid.Nil {
		m.BookmarkID = uuid.New()
	}
	return nil
}
