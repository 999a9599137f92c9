// file: internals/features/questionbank/mockexam/controller/mock_exam_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	aservice "kpsc_backend/internals/features/questionbank/attempts/service"
	cdto "kpsc_backend/internals/features/questionbank/catalog/dto"
	cmodel "kpsc_backend/internals/features/questionbank/catalog/model"
	cservice "kpsc_backend/internals/features/questionbank/catalog/service"
	"kpsc_backend/internals/features/questionbank/mockexam/dto"
	"kpsc_backend/internals/features/questionbank/mockexam/service"
	helper "kpsc_backend/internals/helpers"
	authhelper "kpsc_backend/internals/helpers/auth"
)

type MockExamController struct {
	DB        *gorm.DB
	Generator *service.Generator
	Ledger    *aservice.Ledger
	validate  *validator.Validate
}

func NewMockExamController(db *gorm.DB) *MockExamController {
	return &MockExamController{
		DB:        db,
		Generator: service.NewGenerator(db),
		Ledger:    aservice.NewLedger(db),
	}
}

func (ctl *MockExamController) ensureValidator() {
	if ctl.validate == nil {
		ctl.validate = validator.New()
	}
}

// Generate assembles a fresh paper for the exam in the path. Unauthenticated
// callers get global content only.
func (ctl *MockExamController) Generate(c *fiber.Ctx) error {
	examID, err := uuid.Parse(strings.TrimSpace(c.Params("exam_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid exam id")
	}

	var exam cmodel.ExamModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&exam, "exam_id = ?", examID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Exam not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load exam")
	}

	ident := authhelper.GetOptionalIdentity(c)
	questions, err := ctl.Generator.Generate(c.UserContext(), examID, ident.InstituteID)
	if err != nil {
		if errors.Is(err, service.ErrExamNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Exam not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to generate mock exam")
	}

	return helper.JsonOK(c, "ok", dto.NewMockExamResponse(&exam, questions))
}

// Submit grades a mock-exam form and records every answered question in the
// attempt ledger. Mock exams have no attempt row of their own: only the
// per-question history feeds progress.
func (ctl *MockExamController) Submit(c *fiber.Ctx) error {
	ctl.ensureValidator()

	userID, err := authhelper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.SubmitMockExamRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, map[string][]string{
			"question_ids": {"at least one question id is required"},
		})
	}

	ident := authhelper.GetOptionalIdentity(c)
	var questions []cmodel.QuestionModel
	if err := cservice.VisibleQuestions(ctl.DB.WithContext(c.UserContext()), ident.InstituteID).
		Where("question_id IN ?", req.QuestionIDs).
		Preload("Topic").
		Preload("Exams").
		Find(&questions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load questions")
	}
	if len(questions) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "No questions found for the submitted form")
	}

	// Preserve form order for the review payload.
	byID := make(map[uuid.UUID]*cmodel.QuestionModel, len(questions))
	for i := range questions {
		byID[questions[i].QuestionID] = &questions[i]
	}
	ordered := make([]cmodel.QuestionModel, 0, len(questions))
	for _, id := range req.QuestionIDs {
		if q, ok := byID[id]; ok {
			ordered = append(ordered, *q)
		}
	}

	result, graded := service.Grade(ordered, req.Answers)

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

	gradedByID := make(map[uuid.UUID]service.GradedAnswer, len(graded))
	for _, g := range graded {
		gradedByID[g.QuestionID] = g
	}
	review := make([]*dto.ReviewItem, 0, len(ordered))
	for i := range ordered {
		item := &dto.ReviewItem{Question: cdto.FromModelQuestion(&ordered[i])}
		if g, ok := gradedByID[ordered[i].QuestionID]; ok {
			sel, correct := g.SelectedOption, g.IsCorrect
			item.SelectedOption = &sel
			item.IsCorrect = &correct
		}
		review = append(review, item)
	}

	return helper.JsonOK(c, "Mock exam submitted", dto.SubmitMockExamResponse{
		Results:   result,
		Questions: review,
	})
}
