// file: internals/features/questionbank/catalog/dto/catalog_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	cmodel "kpsc_backend/internals/features/questionbank/catalog/model"
)

/* ==========================================================================================
   RESPONSES — wire shapes consumed by the mobile/web clients
========================================================================================== */

type ExamResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Year            int       `json:"year"`
	DurationMinutes int       `json:"duration_minutes"`
}

func FromModelExam(m *cmodel.ExamModel) *ExamResponse {
	return &ExamResponse{
		ID:              m.ExamID,
		Name:            m.ExamName,
		Year:            m.ExamYear,
		DurationMinutes: m.ExamDurationMinutes,
	}
}

func FromModelsExams(items []cmodel.ExamModel) []*ExamResponse {
	out := make([]*ExamResponse, 0, len(items))
	for i := range items {
		out = append(out, FromModelExam(&items[i]))
	}
	return out
}

type ExamCategoryResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description,omitempty"`
	Exams       []*ExamResponse `json:"exams"`
}

func FromModelExamCategory(m *cmodel.ExamCategoryModel) *ExamCategoryResponse {
	return &ExamCategoryResponse{
		ID:          m.ExamCategoryID,
		Name:        m.ExamCategoryName,
		Description: m.ExamCategoryDescription,
		Exams:       FromModelsExams(m.Exams),
	}
}

type TopicResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	InstituteID *uuid.UUID `json:"institute,omitempty"`
}

func FromModelTopic(m *cmodel.TopicModel) *TopicResponse {
	return &TopicResponse{
		ID:          m.TopicID,
		Name:        m.TopicName,
		InstituteID: m.TopicInstituteID,
	}
}

func FromModelsTopics(items []*cmodel.TopicModel) []*TopicResponse {
	out := make([]*TopicResponse, 0, len(items))
	for _, it := range items {
		out = append(out, FromModelTopic(it))
	}
	return out
}

// QuestionPayload mirrors the observed wire shape, including correct_answer
// in read responses (instant-review behavior of the existing clients).
type QuestionPayload struct {
	ID            uuid.UUID         `json:"id"`
	Text          string            `json:"text"`
	Options       map[string]string `json:"options"`
	CorrectAnswer string            `json:"correct_answer"`
	Explanation   *string           `json:"explanation,omitempty"`
	Difficulty    string            `json:"difficulty"`
	Topic         string            `json:"topic"`
	SubTopic      *string           `json:"sub_topic,omitempty"`
	Exams         []string          `json:"exams"`
	InstituteID   *uuid.UUID        `json:"institute,omitempty"`
}

func FromModelQuestion(m *cmodel.QuestionModel) *QuestionPayload {
	topicName := ""
	if m.Topic != nil {
		topicName = m.Topic.TopicName
	}
	examNames := make([]string, 0, len(m.Exams))
	for i := range m.Exams {
		examNames = append(examNames, m.Exams[i].ExamName)
	}
	return &QuestionPayload{
		ID:            m.QuestionID,
		Text:          m.QuestionText,
		Options:       m.Options(),
		CorrectAnswer: m.QuestionCorrectAnswer,
		Explanation:   m.QuestionExplanation,
		Difficulty:    string(m.QuestionDifficulty),
		Topic:         topicName,
		SubTopic:      m.QuestionSubTopic,
		Exams:         examNames,
		InstituteID:   m.QuestionInstituteID,
	}
}

func FromModelsQuestions(items []cmodel.QuestionModel) []*QuestionPayload {
	out := make([]*QuestionPayload, 0, len(items))
	for i := range items {
		out = append(out, FromModelQuestion(&items[i]))
	}
	return out
}

/* ==========================================================================================
   REQUESTS — admin/tenant-owner catalog management
========================================================================================== */

type CreateTopicRequest struct {
	Name        string     `json:"name" validate:"required,min=2,max=100"`
	InstituteID *uuid.UUID `json:"institute_id" validate:"omitempty"`
}

func (r *CreateTopicRequest) ToModel() *cmodel.TopicModel {
	return &cmodel.TopicModel{
		TopicName:        r.Name,
		TopicInstituteID: r.InstituteID,
	}
}

type CreateExamCategoryRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Description *string `json:"description" validate:"omitempty"`
	Order       int     `json:"order" validate:"omitempty,gte=0"`
}

func (r *CreateExamCategoryRequest) ToModel() *cmodel.ExamCategoryModel {
	return &cmodel.ExamCategoryModel{
		ExamCategoryName:        r.Name,
		ExamCategoryDescription: r.Description,
		ExamCategoryOrder:       r.Order,
	}
}

type CreateExamRequest struct {
	CategoryID      *uuid.UUID `json:"category_id" validate:"omitempty"`
	Name            string     `json:"name" validate:"required,min=2,max=100"`
	Year            int        `json:"year" validate:"required,gte=1950"`
	DurationMinutes int        `json:"duration_minutes" validate:"omitempty,gt=0"`
}

func (r *CreateExamRequest) ToModel() *cmodel.ExamModel {
	dur := r.DurationMinutes
	if dur <= 0 {
		dur = 75
	}
	return &cmodel.ExamModel{
		ExamCategoryID:      r.CategoryID,
		ExamName:            r.Name,
		ExamYear:            r.Year,
		ExamDurationMinutes: dur,
	}
}

type CreateQuestionRequest struct {
	Text          string            `json:"text" validate:"required"`
	Options       map[string]string `json:"options" validate:"required,min=2"`
	CorrectAnswer string            `json:"correct_answer" validate:"required,len=1"`
	Explanation   *string           `json:"explanation" validate:"omitempty"`
	Difficulty    string            `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
	SubTopic      *string           `json:"sub_topic" validate:"omitempty,max=255"`
	TopicID       uuid.UUID         `json:"topic_id" validate:"required"`
	InstituteID   *uuid.UUID        `json:"institute_id" validate:"omitempty"`
	ExamIDs       []uuid.UUID       `json:"exam_ids" validate:"omitempty,dive,required"`
}

func (r *CreateQuestionRequest) ToModel() (*cmodel.QuestionModel, error) {
	m := &cmodel.QuestionModel{
		QuestionText:        r.Text,
		QuestionExplanation: r.Explanation,
		QuestionDifficulty:  cmodel.DifficultyMedium,
		QuestionSubTopic:    r.SubTopic,
		QuestionTopicID:     r.TopicID,
		QuestionInstituteID: r.InstituteID,
	}
	if r.Difficulty != "" {
		m.QuestionDifficulty = cmodel.QuestionDifficulty(r.Difficulty)
	}
	if err := m.SetOptions(r.Options, r.CorrectAnswer); err != nil {
		return nil, err
	}
	return m, nil
}

type CreateSyllabusEntryRequest struct {
	ExamID       uuid.UUID `json:"exam_id" validate:"required"`
	TopicID      uuid.UUID `json:"topic_id" validate:"required"`
	NumQuestions int       `json:"num_questions" validate:"gte=0"`
}

func (r *CreateSyllabusEntryRequest) ToModel() *cmodel.ExamSyllabusModel {
	return &cmodel.ExamSyllabusModel{
		ExamSyllabusExamID:       r.ExamID,
		ExamSyllabusTopicID:      r.TopicID,
		ExamSyllabusNumQuestions: r.NumQuestions,
	}
}

type SyllabusEntryResponse struct {
	ID           uuid.UUID `json:"id"`
	ExamID       uuid.UUID `json:"exam_id"`
	TopicID      uuid.UUID `json:"topic_id"`
	TopicName    string    `json:"topic_name,omitempty"`
	NumQuestions int       `json:"num_questions"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromModelSyllabusEntry(m *cmodel.ExamSyllabusModel) *SyllabusEntryResponse {
	out := &SyllabusEntryResponse{
		ID:           m.ExamSyllabusID,
		ExamID:       m.ExamSyllabusExamID,
		TopicID:      m.ExamSyllabusTopicID,
		NumQuestions: m.ExamSyllabusNumQuestions,
		CreatedAt:    m.ExamSyllabusCreatedAt,
	}
	if m.Topic != nil {
		out.TopicName = m.Topic.TopicName
	}
	return out
}
