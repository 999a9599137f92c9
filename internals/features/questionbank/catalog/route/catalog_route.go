// file: internals/features/questionbank/catalog/route/catalog_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ccontroller "kpsc_backend/internals/features/questionbank/catalog/controller"
)

func CatalogPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := ccontroller.NewCatalogController(db)
	r.Get("/exams", ctl.ListExamCategories)
	r.Get("/exams/:exam_id/syllabus", ctl.ListSyllabus)
	r.Get("/topics", ctl.ListTopics)
	r.Get("/questions", ctl.ListQuestions)
	r.Get("/questions/daily", ctl.DailyQuestion)
}

func CatalogAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := ccontroller.NewCatalogAdminController(db)
	g := r.Group("/catalog")
	g.Post("/categories", ctl.CreateExamCategory)
	g.Post("/exams", ctl.CreateExam)
	g.Post("/topics", ctl.CreateTopic)
	g.Post("/questions", ctl.CreateQuestion)
	g.Delete("/questions/:id", ctl.DeleteQuestion)
	g.Post("/syllabus", ctl.CreateSyllabusEntry)
}
