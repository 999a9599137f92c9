// file: internals/features/questionbank/attempts/dto/attempt_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	amodel "kpsc_backend/internals/features/questionbank/attempts/model"
	cdto "kpsc_backend/internals/features/questionbank/catalog/dto"
)

type DailyExamResponse struct {
	ID             uuid.UUID `json:"id"`
	Date           string    `json:"date"`
	TotalQuestions int       `json:"total_questions"`
}

func FromModelDailyExam(m *amodel.DailyExamModel) *DailyExamResponse {
	return &DailyExamResponse{
		ID:             m.DailyExamID,
		Date:           m.DailyExamDate.Format("2006-01-02"),
		TotalQuestions: len(m.Questions),
	}
}

func FromModelsDailyExams(items []amodel.DailyExamModel) []*DailyExamResponse {
	out := make([]*DailyExamResponse, 0, len(items))
	for i := range items {
		out = append(out, FromModelDailyExam(&items[i]))
	}
	return out
}

// DailyExamDetailResponse carries the full fixed form for taking the exam.
type DailyExamDetailResponse struct {
	DailyExamResponse
	Questions []*cdto.QuestionPayload `json:"questions"`
}

func FromModelDailyExamDetail(m *amodel.DailyExamModel) *DailyExamDetailResponse {
	return &DailyExamDetailResponse{
		DailyExamResponse: *FromModelDailyExam(m),
		Questions:         cdto.FromModelsQuestions(m.Questions),
	}
}

type ModelExamResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	ExamID          uuid.UUID `json:"exam_id"`
	DurationMinutes int       `json:"duration_minutes"`
	TotalQuestions  int       `json:"total_questions"`
}

func FromModelModelExam(m *amodel.ModelExamModel) *ModelExamResponse {
	return &ModelExamResponse{
		ID:              m.ModelExamID,
		Name:            m.ModelExamName,
		ExamID:          m.ModelExamExamID,
		DurationMinutes: m.ModelExamDurationMinutes,
		TotalQuestions:  len(m.Questions),
	}
}

func FromModelsModelExams(items []amodel.ModelExamModel) []*ModelExamResponse {
	out := make([]*ModelExamResponse, 0, len(items))
	for i := range items {
		out = append(out, FromModelModelExam(&items[i]))
	}
	return out
}

type ModelExamDetailResponse struct {
	ModelExamResponse
	Questions []*cdto.QuestionPayload `json:"questions"`
}

func FromModelModelExamDetail(m *amodel.ModelExamModel) *ModelExamDetailResponse {
	return &ModelExamDetailResponse{
		ModelExamResponse: *FromModelModelExam(m),
		Questions:         cdto.FromModelsQuestions(m.Questions),
	}
}

// SubmitAttemptRequest is the shared fixed-form submission body. Answers are
// keyed by question id; absent keys are unanswered.
type SubmitAttemptRequest struct {
	Answers          map[uuid.UUID]string `json:"answers" validate:"omitempty"`
	TimeTakenSeconds int                  `json:"time_taken_seconds" validate:"omitempty,gte=0"`
}

// AttemptResultResponse is the graded outcome of a fixed-form exam. Score is
// the percentage of the paper answered correctly.
type AttemptResultResponse struct {
	Score            float64   `json:"score"`
	Total            int       `json:"total_questions"`
	Correct          int       `json:"correct_count"`
	Wrong            int       `json:"wrong_count"`
	Unanswered       int       `json:"unanswered_count"`
	TimeTakenSeconds int       `json:"time_taken_seconds"`
	SubmittedAt      time.Time `json:"submitted_at"`
}

// SubmitAnswerRequest is a single quiz-mode answer. SelectedOption may be
// blank; a blank selection grades wrong rather than unanswered.
type SubmitAnswerRequest struct {
	QuestionID     *uuid.UUID `json:"question_id" validate:"required"`
	SelectedOption string     `json:"selected_option" validate:"omitempty,max=8"`
}

type SubmitAnswerResponse struct {
	QuestionID    uuid.UUID `json:"question_id"`
	IsCorrect     bool      `json:"is_correct"`
	CorrectAnswer string    `json:"correct_answer"`
	Explanation   *string   `json:"explanation,omitempty"`
}

type LeaderboardEntry struct {
	Rank             int       `json:"rank"`
	UserID           uuid.UUID `json:"user_id"`
	Username         string    `json:"username"`
	Score            float64   `json:"score"`
	TimeTakenSeconds int       `json:"time_taken_seconds"`
}
