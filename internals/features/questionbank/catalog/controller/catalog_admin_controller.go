// file: internals/features/questionbank/catalog/controller/catalog_admin_controller.go
package controller

import (
	"errors"
	"strings"

	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	imodel "kpsc_backend/internals/features/institutes/model"
	cdto "kpsc_backend/internals/features/questionbank/catalog/dto"
	cmodel "kpsc_backend/internals/features/questionbank/catalog/model"
	helper "kpsc_backend/internals/helpers"
	helperAuth "kpsc_backend/internals/helpers/auth"
)

type CatalogAdminController struct {
	DB        *gorm.DB
	validator *validator.Validate
}

func NewCatalogAdminController(db *gorm.DB) *CatalogAdminController {
	return &CatalogAdminController{DB: db}
}

func (ctl *CatalogAdminController) ensureValidator() {
	if ctl.validator == nil {
		ctl.validator = validator.New()
	}
}

// ensureContentScope gates catalog writes: global rows need a global admin,
// institute rows need the owning user of that institute. Checked before any
// write, after the visibility rule would already have hidden foreign rows.
func (ctl *CatalogAdminController) ensureContentScope(c *fiber.Ctx, instituteID *uuid.UUID) error {
	if instituteID == nil {
		if !helperAuth.IsAdmin(c) {
			return fiber.NewError(fiber.StatusForbidden, "Only admins may manage global content")
		}
		return nil
	}
	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		return err
	}
	var owned bool
	if err := ctl.DB.WithContext(c.UserContext()).
		Model(&imodel.InstituteModel{}).
		Select("count(*) > 0").
		Where("institute_id = ? AND institute_owner_user_id = ?", *instituteID, userID).
		Find(&owned).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to check institute ownership")
	}
	if !owned && !helperAuth.IsAdmin(c) {
		return fiber.NewError(fiber.StatusForbidden, "You do not own this institute")
	}
	return nil
}

// POST /catalog/categories
func (ctl *CatalogAdminController) CreateExamCategory(c *fiber.Ctx) error {
	ctl.ensureValidator()
	if !helperAuth.IsAdmin(c) {
		return helper.JsonError(c, fiber.StatusForbidden, "Only admins may manage exam categories")
	}

	var req cdto.CreateExamCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Validation failed")
	}

	m := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Category name already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create category")
	}
	return helper.JsonCreated(c, "Category created", cdto.FromModelExamCategory(m))
}

// POST /catalog/exams
func (ctl *CatalogAdminController) CreateExam(c *fiber.Ctx) error {
	ctl.ensureValidator()
	if !helperAuth.IsAdmin(c) {
		return helper.JsonError(c, fiber.StatusForbidden, "Only admins may manage exams")
	}

	var req cdto.CreateExamRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Validation failed")
	}

	m := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create exam")
	}
	return helper.JsonCreated(c, "Exam created", cdto.FromModelExam(m))
}

// POST /catalog/topics
func (ctl *CatalogAdminController) CreateTopic(c *fiber.Ctx) error {
	ctl.ensureValidator()

	var req cdto.CreateTopicRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Validation failed")
	}
	if err := ctl.ensureContentScope(c, req.InstituteID); err != nil {
		return helper.FromFiberError(c, err)
	}

	m := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create topic")
	}
	return helper.JsonCreated(c, "Topic created", cdto.FromModelTopic(m))
}

// POST /catalog/questions
func (ctl *CatalogAdminController) CreateQuestion(c *fiber.Ctx) error {
	ctl.ensureValidator()

	var req cdto.CreateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Validation failed")
	}
	if err := ctl.ensureContentScope(c, req.InstituteID); err != nil {
		return helper.FromFiberError(c, err)
	}

	m, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := m.ValidateShape(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// topic must exist before the FK write
	var topicCount int64
	if err := ctl.DB.WithContext(c.UserContext()).
		Model(&cmodel.TopicModel{}).
		Where("topic_id = ?", req.TopicID).
		Count(&topicCount).Error; err != nil || topicCount == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Topic not found")
	}

	if len(req.ExamIDs) > 0 {
		var exams []cmodel.ExamModel
		if err := ctl.DB.WithContext(c.UserContext()).
			Where("exam_id IN ?", req.ExamIDs).
			Find(&exams).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to resolve exams")
		}
		if len(exams) != len(req.ExamIDs) {
			return helper.JsonError(c, fiber.StatusBadRequest, "One or more exam ids do not exist")
		}
		m.Exams = exams
	}

	if err := ctl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create question")
	}
	m.Topic = nil // reload not needed for the create response
	return helper.JsonCreated(c, "Question created", cdto.FromModelQuestion(m))
}

// POST /catalog/syllabus — one weight per (exam, topic).
func (ctl *CatalogAdminController) CreateSyllabusEntry(c *fiber.Ctx) error {
	ctl.ensureValidator()
	if !helperAuth.IsAdmin(c) {
		return helper.JsonError(c, fiber.StatusForbidden, "Only admins may manage exam syllabus")
	}

	var req cdto.CreateSyllabusEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Validation failed")
	}

	m := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "A syllabus entry for this exam and topic already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create syllabus entry")
	}
	return helper.JsonCreated(c, "Syllabus entry created", cdto.FromModelSyllabusEntry(m))
}

// DELETE /catalog/questions/:id — owner of the question's institute or admin.
func (ctl *CatalogAdminController) DeleteQuestion(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var m cmodel.QuestionModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Select("question_id, question_institute_id").
		First(&m, "question_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Question not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch question")
	}
	if err := ctl.ensureContentScope(c, m.QuestionInstituteID); err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := ctl.DB.WithContext(c.UserContext()).
		Delete(&cmodel.QuestionModel{}, "question_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete question")
	}
	return helper.JsonDeleted(c, "Question deleted", fiber.Map{"deleted_id": id})
}
