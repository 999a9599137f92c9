// file: internals/features/questionbank/mockexam/dto/mock_exam_dto.go
package dto

import (
	"github.com/google/uuid"

	cdto "kpsc_backend/internals/features/questionbank/catalog/dto"
	cmodel "kpsc_backend/internals/features/questionbank/catalog/model"
	service "kpsc_backend/internals/features/questionbank/mockexam/service"
)

// MockExamResponse is a freshly generated paper. The same endpoint called
// twice returns different papers.
type MockExamResponse struct {
	ExamID          uuid.UUID               `json:"exam_id"`
	ExamName        string                  `json:"exam_name"`
	DurationMinutes int                     `json:"duration_minutes"`
	TotalQuestions  int                     `json:"total_questions"`
	Questions       []*cdto.QuestionPayload `json:"questions"`
}

func NewMockExamResponse(exam *cmodel.ExamModel, questions []cmodel.QuestionModel) *MockExamResponse {
	return &MockExamResponse{
		ExamID:          exam.ExamID,
		ExamName:        exam.ExamName,
		DurationMinutes: exam.ExamDurationMinutes,
		TotalQuestions:  len(questions),
		Questions:       cdto.FromModelsQuestions(questions),
	}
}

// SubmitMockExamRequest carries the full form (question_ids) plus whichever
// answers the user actually picked. Unanswered questions are simply absent
// from the answers map.
type SubmitMockExamRequest struct {
	ExamID           *uuid.UUID           `json:"exam_id" validate:"omitempty"`
	QuestionIDs      []uuid.UUID          `json:"question_ids" validate:"required,min=1,dive,required"`
	Answers          map[uuid.UUID]string `json:"answers" validate:"omitempty"`
	TimeTakenSeconds int                  `json:"time_taken_seconds" validate:"omitempty,gte=0"`
}

// ReviewItem pairs one graded selection with its full question for
// instant review on the client.
type ReviewItem struct {
	Question       *cdto.QuestionPayload `json:"question"`
	SelectedOption *string               `json:"selected_option,omitempty"`
	IsCorrect      *bool                 `json:"is_correct,omitempty"`
}

type SubmitMockExamResponse struct {
	Results   service.ScoreResult `json:"results"`
	Questions []*ReviewItem       `json:"questions"`
}
