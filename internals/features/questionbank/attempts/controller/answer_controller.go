// file: internals/features/questionbank/attempts/controller/answer_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kpsc_backend/internals/features/questionbank/attempts/dto"
	aservice "kpsc_backend/internals/features/questionbank/attempts/service"
	helper "kpsc_backend/internals/helpers"
	authhelper "kpsc_backend/internals/helpers/auth"
)

type AnswerController struct {
	DB       *gorm.DB
	Ledger   *aservice.Ledger
	validate *validator.Validate
}

func NewAnswerController(db *gorm.DB) *AnswerController {
	return &AnswerController{DB: db, Ledger: aservice.NewLedger(db)}
}

func (ctl *AnswerController) ensureValidator() {
	if ctl.validate == nil {
		ctl.validate = validator.New()
	}
}

// Submit grades one practice-quiz answer and writes it to the answer
// history, so standalone practice counts toward progress.
func (ctl *AnswerController) Submit(c *fiber.Ctx) error {
	ctl.ensureValidator()

	userID, err := authhelper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.SubmitAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, map[string][]string{
			"question_id": {"question_id is required"},
		})
	}

	ident := authhelper.GetOptionalIdentity(c)
	res, err := ctl.Ledger.RecordPracticeAnswer(
		c.UserContext(), userID, ident.InstituteID, *req.QuestionID, req.SelectedOption)
	if err != nil {
		if errors.Is(err, aservice.ErrQuestionNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Question not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record answer")
	}

	return helper.JsonCreated(c, "Answer recorded", dto.SubmitAnswerResponse{
		QuestionID:    res.Question.QuestionID,
		IsCorrect:     res.IsCorrect,
		CorrectAnswer: res.Question.QuestionCorrectAnswer,
		Explanation:   res.Question.QuestionExplanation,
	})
}
