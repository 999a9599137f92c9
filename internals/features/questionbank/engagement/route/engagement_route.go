// file: internals/features/questionbank/engagement/route/engagement_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	econtroller "kpsc_backend/internals/features/questionbank/engagement/controller"
)

func EngagementUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := econtroller.NewEngagementController(db)
	r.Get("/bookmarks", ctl.ListBookmarks)
	r.Post("/questions/:question_id/bookmark", ctl.ToggleBookmark)
	r.Post("/questions/:question_id/report", ctl.ReportQuestion)
	r.Get("/my-reports", ctl.ListMyReports)
}

func EngagementAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := econtroller.NewEngagementController(db)
	r.Get("/reports", ctl.ListReports)
	r.Patch("/reports/:id/resolve", ctl.ResolveReport)
}
