// file: internals/features/institutes/route/institute_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	icontroller "kpsc_backend/internals/features/institutes/controller"
)

func InstitutePublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := icontroller.NewInstituteController(db)
	g := r.Group("/institutes")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
}

func InstituteUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := icontroller.NewInstituteController(db)
	g := r.Group("/institutes")
	g.Post("/", ctl.Create)
	g.Patch("/:id", ctl.Patch)
	g.Delete("/:id", ctl.Delete)
}
