// file: internals/features/questionbank/catalog/controller/catalog_controller.go
package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	cdto "kpsc_backend/internals/features/questionbank/catalog/dto"
	cmodel "kpsc_backend/internals/features/questionbank/catalog/model"
	cservice "kpsc_backend/internals/features/questionbank/catalog/service"
	helper "kpsc_backend/internals/helpers"
	helperAuth "kpsc_backend/internals/helpers/auth"
)

type CatalogController struct {
	DB *gorm.DB
}

func NewCatalogController(db *gorm.DB) *CatalogController {
	return &CatalogController{DB: db}
}

// GET /exams — all exam categories with their exams nested, by display order.
func (ctl *CatalogController) ListExamCategories(c *fiber.Ctx) error {
	var rows []*cmodel.ExamCategoryModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Preload("Exams").
		Order("exam_category_order ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch exams")
	}

	out := make([]*cdto.ExamCategoryResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, cdto.FromModelExamCategory(r))
	}
	return helper.JsonOK(c, "", out)
}

// GET /topics — topics visible to the requester (global + home institute).
func (ctl *CatalogController) ListTopics(c *fiber.Ctx) error {
	instituteID := helperAuth.GetInstituteID(c)

	var rows []*cmodel.TopicModel
	if err := cservice.VisibleTopics(ctl.DB.WithContext(c.UserContext()), instituteID).
		Order("topic_name ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch topics")
	}
	return helper.JsonOK(c, "", cdto.FromModelsTopics(rows))
}

// GET /questions?exam_id=&topic_id=&limit=
// Visibility first, then filters. A numeric limit switches to quiz mode:
// random order, capped result. No limit = study mode (all matching rows).
func (ctl *CatalogController) ListQuestions(c *fiber.Ctx) error {
	instituteID := helperAuth.GetInstituteID(c)

	q := cservice.VisibleQuestions(ctl.DB.WithContext(c.UserContext()), instituteID).
		Preload("Topic").
		Preload("Exams")

	if examIDStr := strings.TrimSpace(c.Query("exam_id")); examIDStr != "" {
		examID, err := uuid.Parse(examIDStr)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid exam_id")
		}
		q = q.Joins("JOIN question_exams qe ON qe.question_id = questions.question_id").
			Where("qe.exam_id = ?", examID)
	}

	if topicIDStr := strings.TrimSpace(c.Query("topic_id")); topicIDStr != "" {
		topicID, err := uuid.Parse(topicIDStr)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid topic_id")
		}
		q = q.Where("question_topic_id = ?", topicID)
	}

	if limitStr := strings.TrimSpace(c.Query("limit")); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit <= 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid limit")
		}
		// Quiz mode: sample at the storage layer, never load the full pool.
		var rows []cmodel.QuestionModel
		if err := q.Order("RANDOM()").Limit(limit).Find(&rows).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch questions")
		}
		return helper.JsonOK(c, "", cdto.FromModelsQuestions(rows))
	}

	var rows []cmodel.QuestionModel
	if err := q.Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch questions")
	}
	return helper.JsonOK(c, "", cdto.FromModelsQuestions(rows))
}

// GET /questions/daily — one random visible question.
func (ctl *CatalogController) DailyQuestion(c *fiber.Ctx) error {
	instituteID := helperAuth.GetInstituteID(c)

	var row cmodel.QuestionModel
	err := cservice.VisibleQuestions(ctl.DB.WithContext(c.UserContext()), instituteID).
		Preload("Topic").
		Preload("Exams").
		Order("RANDOM()").
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "No questions available")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch question")
	}
	return helper.JsonOK(c, "", cdto.FromModelQuestion(&row))
}

// GET /exams/:exam_id/syllabus — the sampling weights for one exam.
func (ctl *CatalogController) ListSyllabus(c *fiber.Ctx) error {
	examID, err := uuid.Parse(strings.TrimSpace(c.Params("exam_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid exam_id")
	}

	var rows []*cmodel.ExamSyllabusModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Preload("Topic").
		Where("exam_syllabus_exam_id = ?", examID).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch syllabus")
	}

	out := make([]*cdto.SyllabusEntryResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, cdto.FromModelSyllabusEntry(r))
	}
	return helper.JsonOK(c, "", out)
}
