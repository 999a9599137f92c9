// file: internals/features/questionbank/engagement/controller/engagement_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	cdto "kpsc_backend/internals/features/questionbank/catalog/dto"
	cmodel "kpsc_backend/internals/features/questionbank/catalog/model"
	cservice "kpsc_backend/internals/features/questionbank/catalog/service"
	emodel "kpsc_backend/internals/features/questionbank/engagement/model"
	helper "kpsc_backend/internals/helpers"
	authhelper "kpsc_backend/internals/helpers/auth"
)

type EngagementController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewEngagementController(db *gorm.DB) *EngagementController {
	return &EngagementController{DB: db}
}

func (ctl *EngagementController) ensureValidator() {
	if ctl.validate == nil {
		ctl.validate = validator.New()
	}
}

func parseQuestionID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("question_id")))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid question id")
	}
	return id, nil
}

// ToggleBookmark flips the saved state and reports the new one.
func (ctl *EngagementController) ToggleBookmark(c *fiber.Ctx) error {
	userID, err := authhelper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	questionID, err := parseQuestionID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	db := ctl.DB.WithContext(c.UserContext())

	var existing emodel.BookmarkModel
	err = db.First(&existing,
		"bookmark_user_id = ? AND bookmark_question_id = ?", userID, questionID).Error
	if err == nil {
		if err := db.Delete(&existing).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to remove bookmark")
		}
		return helper.JsonOK(c, "Bookmark removed", fiber.Map{"bookmarked": false})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load bookmark")
	}

	ident := authhelper.GetOptionalIdentity(c)
	var count int64
	if err := cservice.VisibleQuestions(db, ident.InstituteID).
		Where("question_id = ?", questionID).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load question")
	}
	if count == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Question not found")
	}

	bm := emodel.BookmarkModel{
		BookmarkUserID:     userID,
		BookmarkQuestionID: questionID,
	}
	if err := db.Create(&bm).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonOK(c, "Bookmark saved", fiber.Map{"bookmarked": true})
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save bookmark")
	}
	return helper.JsonCreated(c, "Bookmark saved", fiber.Map{"bookmarked": true})
}

// ListBookmarks returns the user's saved questions, newest first.
func (ctl *EngagementController) ListBookmarks(c *fiber.Ctx) error {
	userID, err := authhelper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var bookmarks []emodel.BookmarkModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Preload("Question").
		Preload("Question.Topic").
		Preload("Question.Exams").
		Where("bookmark_user_id = ?", userID).
		Order("bookmark_created_at DESC").
		Find(&bookmarks).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list bookmarks")
	}

	questions := make([]cmodel.QuestionModel, 0, len(bookmarks))
	for i := range bookmarks {
		if bookmarks[i].Question != nil {
			questions = append(questions, *bookmarks[i].Question)
		}
	}
	return helper.JsonOK(c, "ok", cdto.FromModelsQuestions(questions))
}

type reportRequest struct {
	Reason string `json:"reason" validate:"required,min=5,max=2000"`
}

// ReportQuestion files a complaint about a question.
func (ctl *EngagementController) ReportQuestion(c *fiber.Ctx) error {
	ctl.ensureValidator()

	userID, err := authhelper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	questionID, err := parseQuestionID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req reportRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, map[string][]string{
			"reason": {"reason must be 5-2000 characters"},
		})
	}

	report := emodel.QuestionReportModel{
		QuestionReportUserID:     userID,
		QuestionReportQuestionID: questionID,
		QuestionReportReason:     strings.TrimSpace(req.Reason),
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&report).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to file report")
	}
	return helper.JsonCreated(c, "Report filed", report)
}

// ListMyReports returns the requester's own filed reports, newest first.
func (ctl *EngagementController) ListMyReports(c *fiber.Ctx) error {
	userID, err := authhelper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var reports []emodel.QuestionReportModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Preload("Question").
		Where("question_report_user_id = ?", userID).
		Order("question_report_created_at DESC").
		Find(&reports).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list reports")
	}
	return helper.JsonOK(c, "ok", reports)
}

// ListReports is the admin review queue (?status=pending|resolved).
func (ctl *EngagementController) ListReports(c *fiber.Ctx) error {
	q := ctl.DB.WithContext(c.UserContext()).
		Preload("Question").
		Order("question_report_created_at ASC")

	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("question_report_status = ?", status)
	}

	var reports []emodel.QuestionReportModel
	if err := q.Find(&reports).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list reports")
	}
	return helper.JsonOK(c, "ok", reports)
}

// ResolveReport marks one report handled.
func (ctl *EngagementController) ResolveReport(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid report id")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Model(&emodel.QuestionReportModel{}).
		Where("question_report_id = ?", id).
		Update("question_report_status", emodel.ReportStatusResolved)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to resolve report")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Report not found")
	}
	return helper.JsonUpdated(c, "Report resolved", fiber.Map{"id": id})
}
