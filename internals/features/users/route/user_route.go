// file: internals/features/users/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ucontroller "kpsc_backend/internals/features/users/controller"
)

func UserPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := ucontroller.NewUserController(db)
	r.Post("/users/register", ctl.Register)
	r.Get("/users/:username/profile", ctl.PublicProfile)
}

func UserUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := ucontroller.NewUserController(db)
	r.Get("/me/profile", ctl.GetMe)
	r.Patch("/me/profile", ctl.PatchMe)
	r.Put("/me/preferred-exams", ctl.SetPreferredExams)
}
