// file: internals/route/index.go
package route

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kpsc_backend/internals/configs"
	instituteRoute "kpsc_backend/internals/features/institutes/route"
	progressRoute "kpsc_backend/internals/features/progress/route"
	attemptRoute "kpsc_backend/internals/features/questionbank/attempts/route"
	catalogRoute "kpsc_backend/internals/features/questionbank/catalog/route"
	engagementRoute "kpsc_backend/internals/features/questionbank/engagement/route"
	mockExamRoute "kpsc_backend/internals/features/questionbank/mockexam/route"
	userRoute "kpsc_backend/internals/features/users/route"
	helper "kpsc_backend/internals/helpers"
	authhelper "kpsc_backend/internals/helpers/auth"
	authmw "kpsc_backend/internals/middlewares/auth"
)

// SetupRoutes mounts three surfaces:
//
//	/api/public — optional auth; institute members see their private content
//	/api/u      — authenticated users
//	/api/a      — admins only
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	public := api.Group("/public", authmw.AuthJWT(authmw.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
		Optional:            true,
	}))
	instituteRoute.InstitutePublicRoutes(public, db)
	catalogRoute.CatalogPublicRoutes(public, db)
	mockExamRoute.MockExamPublicRoutes(public, db)
	attemptRoute.AttemptPublicRoutes(public, db)
	userRoute.UserPublicRoutes(public, db)
	log.Println("[INFO] mounted /api/public")

	user := api.Group("/u", authmw.AuthJWT(authmw.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	}))
	instituteRoute.InstituteUserRoutes(user, db)
	mockExamRoute.MockExamUserRoutes(user, db)
	attemptRoute.AttemptUserRoutes(user, db)
	progressRoute.ProgressUserRoutes(user, db)
	userRoute.UserUserRoutes(user, db)
	engagementRoute.EngagementUserRoutes(user, db)
	log.Println("[INFO] mounted /api/u")

	admin := api.Group("/a",
		authmw.AuthJWT(authmw.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
		requireAdmin,
	)
	catalogRoute.CatalogAdminRoutes(admin, db)
	engagementRoute.EngagementAdminRoutes(admin, db)
	log.Println("[INFO] mounted /api/a")
}

func requireAdmin(c *fiber.Ctx) error {
	if !authhelper.IsAdmin(c) {
		return helper.JsonError(c, fiber.StatusForbidden, "Admin access required")
	}
	return c.Next()
}
