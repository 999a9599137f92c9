// file: internals/features/questionbank/attempts/route/attempt_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	acontroller "kpsc_backend/internals/features/questionbank/attempts/controller"
	"kpsc_backend/internals/middlewares"
)

func AttemptPublicRoutes(r fiber.Router, db *gorm.DB) {
	daily := acontroller.NewDailyExamController(db)
	model := acontroller.NewModelExamController(db)

	r.Get("/daily-exams", daily.List)
	r.Get("/daily-exams/:id", daily.GetByID)
	r.Get("/daily-exams/:id/leaderboard", daily.Leaderboard)

	r.Get("/model-exams", model.List)
	r.Get("/model-exams/:id", model.GetByID)
}

func AttemptUserRoutes(r fiber.Router, db *gorm.DB) {
	daily := acontroller.NewDailyExamController(db)
	model := acontroller.NewModelExamController(db)
	answer := acontroller.NewAnswerController(db)

	r.Post("/answers", middlewares.SubmitRateLimiter(), answer.Submit)
	r.Post("/daily-exams/:id/submit", middlewares.SubmitRateLimiter(), daily.Submit)
	r.Post("/model-exams/:id/submit", middlewares.SubmitRateLimiter(), model.Submit)
}
