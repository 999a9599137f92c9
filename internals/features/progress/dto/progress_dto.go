// file: internals/features/progress/dto/progress_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"kpsc_backend/internals/features/progress/service"
	amodel "kpsc_backend/internals/features/questionbank/attempts/model"
	cdto "kpsc_backend/internals/features/questionbank/catalog/dto"
	helper "kpsc_backend/internals/helpers"
)

type TopicStatResponse struct {
	Topic     string  `json:"topic"`
	Attempted int     `json:"attempted"`
	Correct   int     `json:"correct"`
	Wrong     int     `json:"wrong"`
	Accuracy  float64 `json:"accuracy"`
	MarksLost float64 `json:"marks_lost"`
}

func fromTopicStat(t service.TopicStat) TopicStatResponse {
	return TopicStatResponse{
		Topic:     t.Topic,
		Attempted: t.Attempted,
		Correct:   t.Correct,
		Wrong:     t.Wrong,
		Accuracy:  helper.Round2(t.Accuracy),
		MarksLost: helper.Round2(t.MarksLost),
	}
}

func fromTopicStats(items []service.TopicStat) []TopicStatResponse {
	out := make([]TopicStatResponse, 0, len(items))
	for _, t := range items {
		out = append(out, fromTopicStat(t))
	}
	return out
}

type ExamStatResponse struct {
	Exam      string  `json:"exam"`
	Attempted int     `json:"attempted"`
	Correct   int     `json:"correct"`
	Wrong     int     `json:"wrong"`
	Accuracy  float64 `json:"accuracy"`
}

func fromExamStats(items []service.ExamStat) []ExamStatResponse {
	out := make([]ExamStatResponse, 0, len(items))
	for _, e := range items {
		out = append(out, ExamStatResponse{
			Exam:      e.Exam,
			Attempted: e.Attempted,
			Correct:   e.Correct,
			Wrong:     e.Wrong,
			Accuracy:  helper.Round2(e.Accuracy),
		})
	}
	return out
}

// RecentAnswerResponse carries the full question payload so the client can
// render review cards without extra lookups.
type RecentAnswerResponse struct {
	QuestionID     uuid.UUID             `json:"question_id"`
	Question       *cdto.QuestionPayload `json:"question,omitempty"`
	SelectedOption string                `json:"selected_option"`
	IsCorrect      bool                  `json:"is_correct"`
	AnsweredAt     time.Time             `json:"answered_at"`
}

func fromRecentAnswers(items []amodel.UserAnswerModel) []RecentAnswerResponse {
	out := make([]RecentAnswerResponse, 0, len(items))
	for i := range items {
		a := &items[i]
		r := RecentAnswerResponse{
			QuestionID:     a.UserAnswerQuestionID,
			SelectedOption: a.UserAnswerSelectedOption,
			IsCorrect:      a.UserAnswerIsCorrect,
			AnsweredAt:     a.UserAnswerAnsweredAt,
		}
		if a.Question != nil {
			r.Question = cdto.FromModelQuestion(a.Question)
		}
		out = append(out, r)
	}
	return out
}

// ProgressReportResponse is the dashboard payload. All percentages and marks
// are rounded to 2 decimals here, once.
type ProgressReportResponse struct {
	Mode       string   `json:"mode"`
	FocusExams []string `json:"focus_exams,omitempty"`

	Attempted int     `json:"total_attempted"`
	Correct   int     `json:"correct"`
	Wrong     int     `json:"wrong"`
	Accuracy  float64 `json:"accuracy"`
	NetScore  float64 `json:"net_score"`
	MarksLost float64 `json:"marks_lost"`

	Topics    []TopicStatResponse `json:"topics"`
	Exams     []ExamStatResponse  `json:"exams"`
	Strongest []TopicStatResponse `json:"strongest_topics"`
	Weakest   []TopicStatResponse `json:"weakest_topics"`

	RecentAnswers []RecentAnswerResponse `json:"recent_answers"`
}

func FromReport(rep *service.Report) *ProgressReportResponse {
	return &ProgressReportResponse{
		Mode:          string(rep.Mode),
		FocusExams:    rep.FocusExams,
		Attempted:     rep.Attempted,
		Correct:       rep.Correct,
		Wrong:         rep.Wrong,
		Accuracy:      helper.Round2(rep.Accuracy),
		NetScore:      helper.Round2(rep.NetScore),
		MarksLost:     helper.Round2(rep.MarksLost),
		Topics:        fromTopicStats(rep.Topics),
		Exams:         fromExamStats(rep.Exams),
		Strongest:     fromTopicStats(rep.Strongest),
		Weakest:       fromTopicStats(rep.Weakest),
		RecentAnswers: fromRecentAnswers(rep.Recent),
	}
}
