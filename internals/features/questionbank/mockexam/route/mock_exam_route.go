// file: internals/features/questionbank/mockexam/route/mock_exam_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	mcontroller "kpsc_backend/internals/features/questionbank/mockexam/controller"
	"kpsc_backend/internals/middlewares"
)

// Generation is public (visibility falls back to global content);
// submission requires a signed-in user so answers land in the ledger.
func MockExamPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := mcontroller.NewMockExamController(db)
	r.Get("/mock-exams/:exam_id", ctl.Generate)
}

func MockExamUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := mcontroller.NewMockExamController(db)
	r.Post("/mock-exams/submit", middlewares.SubmitRateLimiter(), ctl.Submit)
}
