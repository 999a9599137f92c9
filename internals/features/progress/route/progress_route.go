// file: internals/features/progress/route/progress_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	pcontroller "kpsc_backend/internals/features/progress/controller"
)

func ProgressUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := pcontroller.NewProgressController(db)
	r.Get("/progress/dashboard", ctl.Dashboard)
}
