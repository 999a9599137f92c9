// file: internals/features/questionbank/attempts/controller/model_exam_controller.go
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

type ModelExamController struct {
	DB       *gorm.DB
	Ledger   *aservice.Ledger
	validate *validator.Validate
}

func NewModelExamController(db *gorm.DB) *ModelExamController {
	return &ModelExamController{DB: db, Ledger: aservice.NewLedger(db)}
}

func (ctl *ModelExamController) ensureValidator() {
	if ctl.validate == nil {
		ctl.validate = validator.New()
	}
}

// List returns the model papers for one exam (?exam_id=), or all of them.
func (ctl *ModelExamController) List(c *fiber.Ctx) error {
	q := ctl.DB.WithContext(c.UserContext()).
		Preload("Questions").
		Order("model_exam_created_at ASC")

	if raw := strings.TrimSpace(c.Query("exam_id")); raw != "" {
		examID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid exam id")
		}
		q = q.Where("model_exam_exam_id = ?", examID)
	}

	var exams []amodel.ModelExamModel
	if err := q.Find(&exams).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list model exams")
	}
	return helper.JsonOK(c, "ok", dto.FromModelsModelExams(exams))
}

func (ctl *ModelExamController) loadModelExam(c *fiber.Ctx) (*amodel.ModelExamModel, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid model exam id")
	}
	var exam amodel.ModelExamModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Preload("Questions").
		Preload("Questions.Topic").
		Preload("Questions.Exams").
		First(&exam, "model_exam_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Model exam not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load model exam")
	}
	return &exam, nil
}

func (ctl *ModelExamController) GetByID(c *fiber.Ctx) error {
	exam, err := ctl.loadModelExam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "ok", dto.FromModelModelExamDetail(exam))
}

// Submit grades the paper and stores a new attempt row. Model exams allow
// retakes, so every submission lands as its own attempt.
func (ctl *ModelExamController) Submit(c *fiber.Ctx) error {
	ctl.ensureValidator()

	userID, err := authhelper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	exam, err := ctl.loadModelExam(c)
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

	attempt := &amodel.ModelExamAttemptModel{
		ModelExamAttemptUserID:           userID,
		ModelExamAttemptModelExamID:      exam.ModelExamID,
		ModelExamAttemptScore:            score,
		ModelExamAttemptTimeTakenSeconds: req.TimeTakenSeconds,
	}
	if err := ctl.Ledger.RecordAttempt(c.UserContext(), aservice.ModelExamPolicy, attempt); err != nil {
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

	return helper.JsonOK(c, "Model exam submitted", dto.AttemptResultResponse{
		Score:            score,
		Total:            result.Total,
		Correct:          result.Correct,
		Wrong:            result.Wrong,
		Unanswered:       result.Unanswered,
		TimeTakenSeconds: req.TimeTakenSeconds,
		SubmittedAt:      time.Now(),
	})
}
