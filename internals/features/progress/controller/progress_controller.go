// file: internals/features/progress/controller/progress_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kpsc_backend/internals/features/progress/dto"
	"kpsc_backend/internals/features/progress/service"
	helper "kpsc_backend/internals/helpers"
	authhelper "kpsc_backend/internals/helpers/auth"
)

type ProgressController struct {
	DB      *gorm.DB
	Builder *service.Builder
}

func NewProgressController(db *gorm.DB) *ProgressController {
	return &ProgressController{DB: db, Builder: service.NewBuilder(db)}
}

// Dashboard returns the computed progress report. ?mode=focus narrows to the
// user's preferred exams; anything else means overall.
func (ctl *ProgressController) Dashboard(c *fiber.Ctx) error {
	userID, err := authhelper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	mode := service.ModeOverall
	if strings.EqualFold(strings.TrimSpace(c.Query("mode")), string(service.ModeFocus)) {
		mode = service.ModeFocus
	}

	rep, err := ctl.Builder.Build(c.UserContext(), userID, mode)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoFocusExams):
			return helper.JsonOK(c, "Select preferred exams to see focus progress", nil)
		case errors.Is(err, service.ErrNoData):
			return helper.JsonOK(c, "Start answering questions to see your progress", nil)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build progress report")
	}

	return helper.JsonOK(c, "ok", dto.FromReport(rep))
}
