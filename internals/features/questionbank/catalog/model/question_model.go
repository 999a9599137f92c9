// file: internals/features/questionbank/catalog/model/question_model.go
package model

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type QuestionDifficulty string

const (
	DifficultyEasy   QuestionDifficulty = "easy"
	DifficultyMedium QuestionDifficulty = "medium"
	DifficultyHard   QuestionDifficulty = "hard"
)

func (d QuestionDifficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Option labels are drawn from a small fixed alphabet.
var OptionLabels = []string{"A", "B", "C", "D"}

type QuestionModel struct {
	QuestionID uuid.UUID `gorm:"column:question_id;type:uuid;primaryKey" json:"question_id"`

	QuestionText          string             `gorm:"column:question_text;type:text;not null" json:"question_text"`
	QuestionOptions       datatypes.JSON     `gorm:"column:question_options;type:jsonb;not null" json:"question_options"`
	QuestionCorrectAnswer string             `gorm:"column:question_correct_answer;type:char(1);not null" json:"question_correct_answer"`
	QuestionExplanation   *string            `gorm:"column:question_explanation;type:text" json:"question_explanation,omitempty"`
	QuestionDifficulty    QuestionDifficulty `gorm:"column:question_difficulty;type:varchar(20);not null;default:'medium'" json:"question_difficulty"`
	QuestionSubTopic      *string            `gorm:"column:question_sub_topic;type:varchar(255)" json:"question_sub_topic,omitempty"`

	QuestionTopicID uuid.UUID `gorm:"column:question_topic_id;type:uuid;not null;index" json:"question_topic_id"`
	Topic           *TopicModel `gorm:"foreignKey:QuestionTopicID;references:TopicID" json:"topic,omitempty"`

	// NULL = globally visible; otherwise private to the owning institute.
	QuestionInstituteID *uuid.UUID `gorm:"column:question_institute_id;type:uuid;index" json:"question_institute_id,omitempty"`

	// A question may belong to several exams.
	Exams []ExamModel `gorm:"many2many:question_exams;foreignKey:QuestionID;joinForeignKey:QuestionID;References:ExamID;joinReferences:ExamID" json:"exams,omitempty"`

	QuestionCreatedAt time.Time      `gorm:"column:question_created_at;autoCreateTime" json:"question_created_at"`
	QuestionUpdatedAt time.Time      `gorm:"column:question_updated_at;autoUpdateTime" json:"question_updated_at"`
	QuestionDeletedAt gorm.DeletedAt `gorm:"column:question_deleted_at;index" json:"question_deleted_at,omitempty"`
}

func (QuestionModel) TableName() string { return "questions" }

func (m *QuestionModel) BeforeCreate(tx *gorm.DB) error {
	if m.QuestionID == uuid.Nil {
		m.QuestionID = uuid.New()
	}
	return nil
}

// ------------------------
// Helpers
// ------------------------

// SetOptions stores the options object {"A":"..","B":".."} plus the correct
// label, mirroring the DB CHECK constraints so bad rows fail fast in app.
func (m *QuestionModel) SetOptions(opts map[string]string, correct string) error {
	correct = strings.ToUpper(strings.TrimSpace(correct))
	if correct == "" {
		return errors.New("correct label is required ('A'..'D')")
	}
	if len(opts) < 2 {
		return errors.New("at least 2 options are required")
	}
	for k := range opts {
		if !inSet(strings.ToUpper(k), OptionLabels...) {
			return errors.New("options contain a label outside A..D")
		}
	}
	if _, ok := opts[correct]; !ok {
		return errors.New("correct label is not one of the option labels")
	}
	b, _ := json.Marshal(opts)
	m.QuestionOptions = datatypes.JSON(b)
	m.QuestionCorrectAnswer = correct
	return nil
}

// Options decodes the JSONB options column into a label→text map.
func (m *QuestionModel) Options() map[string]string {
	out := map[string]string{}
	_ = json.Unmarshal(m.QuestionOptions, &out)
	return out
}

// ValidateShape mirrors the storage-layer checks.
func (m *QuestionModel) ValidateShape() error {
	if strings.TrimSpace(m.QuestionText) == "" {
		return errors.New("question text is required")
	}
	if !m.QuestionDifficulty.Valid() {
		return errors.New("difficulty must be easy|medium|hard")
	}
	opts := m.Options()
	if len(opts) < 2 {
		return errors.New("at least 2 options are required")
	}
	c := strings.ToUpper(strings.TrimSpace(m.QuestionCorrectAnswer))
	if !inSet(c, OptionLabels...) {
		return errors.New("correct answer must be one of A..D")
	}
	if _, ok := opts[c]; !ok {
		return errors.New("correct answer is not an option label")
	}
	if m.QuestionTopicID == uuid.Nil {
		return errors.New("topic is required")
	}
	return nil
}

func inSet(v string, set ...string) bool {
	for _, s := range set {
		if v == s {
			return true
		}
	}
	return false
}
