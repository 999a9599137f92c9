// file: internals/features/questionbank/attempts/controller/daily_exam_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kpsc_backend/internals/features/questionbank/attempts/dto"
	amodel "kpsc_backend/internals/features/questionbank/attempts/model"
	aservice "kpsc_backend/internals/features/questionbank/attempts/service"
	mservice "kpsc_backend/internals/features/questionbank/mockexam/service"
	helper "kpsc_backend/internals/helpers"
	authhelper "kpsc_backend/internals/helpers/auth"
)

// Daily exams list at most this many recent papers.
const dailyExamListLimit = 20

const leaderboardLimit = 50

type DailyExamController struct {
	DB       *gorm.DB
	Ledger   *aservice.Ledger
	validate *validator.Validate
}

func NewDailyExamController(db *gorm.DB) *DailyExamController {
	return &DailyExamController{DB: db, Ledger: aservice.NewLedger(db)}
}

func (ctl *DailyExamController) ensureValidator() {
	if ctl.validate == nil {
		ctl.validate = validator.New()
	}
}

// List returns the most recent daily exams, newest first.
func (ctl *DailyExamController) List(c *fiber.Ctx) error {
	var exams []amodel.DailyExamModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Preload("Questions").
		Order("daily_exam_date DESC").
		Limit(dailyExamListLimit).
		Find(&exams).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list daily exams")
	}
	return helper.JsonOK(c, "ok", dto.FromModelsDailyExams(exams))
}

func (ctl *DailyExamController) loadDailyExam(c *fiber.Ctx) (*amodel.DailyExamModel, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid daily exam id")
	}
	var exam amodel.DailyExamModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Preload("Questions").
		Preload("Questions.Topic").
		Preload("Questions.Exams").
		First(&exam, "daily_exam_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Daily exam not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load daily exam")
	}
	return &exam, nil
}

// GetByID returns the fixed form, questions included.
func (ctl *DailyExamController) GetByID(c *fiber.Ctx) error {
	exam, err := ctl.loadDailyExam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "ok", dto.FromModelDailyExamDetail(exam))
}

// Submit grades the form, stores the single allowed attempt, and records
// every answered question in the ledger. A second submission gets 409.
func (ctl *DailyExamController) Submit(c *fiber.Ctx) error {
	ctl.ensureValidator()

	userID, err := authhelper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	exam, err := ctl.loadDailyExam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.SubmitAttemptRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	result, graded := mservice.Grade(exam.Questions, req.Answers)
	score := helper.Round2(mservice.Percentage(result.Correct, result.Total))

	attempt := &amodel.DailyExamAttemptModel{
		DailyExamAttemptUserID:           userID,
		DailyExamAttemptDailyExamID:      exam.DailyExamID,
		DailyExamAttemptScore:            score,
		DailyExamAttemptTimeTakenSeconds: req.TimeTakenSeconds,
	}
	if err := ctl.Ledger.RecordAttempt(c.UserContext(), aservice.DailyExamPolicy, attempt); err != nil {
		if errors.Is(err, aservice.ErrAlreadyAttempted) {
			return helper.JsonError(c, fiber.StatusConflict, "You have already attempted this daily exam")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record attempt")
	}

	inputs := make([]aservice.AnswerInput, 0, len(graded))
	for _, g := range graded {
		inputs = append(inputs, aservice.AnswerInput{
			QuestionID:     g.QuestionID,
			SelectedOption: g.SelectedOption,
			IsCorrect:      g.IsCorrect,
		})
	}
	if err := ctl.Ledger.RecordAnswers(c.UserContext(), userID, inputs); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record answers")
	}

	return helper.JsonOK(c, "Daily exam submitted", dto.AttemptResultResponse{
		Score:            score,
		Total:            result.Total,
		Correct:          result.Correct,
		Wrong:            result.Wrong,
		Unanswered:       result.Unanswered,
		TimeTakenSeconds: req.TimeTakenSeconds,
		SubmittedAt:      time.Now(),
	})
}

// Leaderboard ranks attempts by score, fastest first among ties.
func (ctl *DailyExamController) Leaderboard(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid daily exam id")
	}

	type row struct {
		UserID           uuid.UUID
		Username         string
		Score            float64
		TimeTakenSeconds int
	}
	var rows []row
	if err := ctl.DB.WithContext(c.UserContext()).
		Table("daily_exam_attempts").
		Select("daily_exam_attempt_user_id AS user_id, users.user_username AS username, daily_exam_attempt_score AS score, daily_exam_attempt_time_taken_seconds AS time_taken_seconds").
		Joins("JOIN users ON users.user_id = daily_exam_attempts.daily_exam_attempt_user_id").
		Where("daily_exam_attempt_daily_exam_id = ?", id).
		Order("daily_exam_attempt_score DESC, daily_exam_attempt_time_taken_seconds ASC").
		Limit(leaderboardLimit).
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load leaderboard")
	}

	entries := make([]*dto.LeaderboardEntry, 0, len(rows))
	for i, r := range rows {
		entries = append(entries, &dto.LeaderboardEntry{
			Rank:             i + 1,
			UserID:           r.UserID,
			Username:         r.Username,
			Score:            r.Score,
			TimeTakenSeconds: r.TimeTakenSeconds,
		})
	}
	return helper.JsonOK(c, "ok", entries)
}
