// file: internals/features/institutes/controller/institute_controller.go
package controller

import (
	"errors"
	"strings"

	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	idto "kpsc_backend/internals/features/institutes/dto"
	imodel "kpsc_backend/internals/features/institutes/model"
	helper "kpsc_backend/internals/helpers"
	helperAuth "kpsc_backend/internals/helpers/auth"
)

type InstituteController struct {
	DB        *gorm.DB
	validator *validator.Validate
}

func NewInstituteController(db *gorm.DB) *InstituteController {
	return &InstituteController{DB: db}
}

func (ctl *InstituteController) ensureValidator() {
	if ctl.validator == nil {
		ctl.validator = validator.New()
	}
}

// POST /institutes — one institute per owning user.
func (ctl *InstituteController) Create(c *fiber.Ctx) error {
	ctl.ensureValidator()

	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req idto.CreateInstituteRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Validation failed")
	}

	m := req.ToModel(userID)
	if err := ctl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "You already own an institute")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create institute")
	}
	return helper.JsonCreated(c, "Institute created", idto.FromModelInstitute(m))
}

// GET /institutes — public directory.
func (ctl *InstituteController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "institute_name", "asc", helper.DefaultOpts)

	q := ctl.DB.WithContext(c.UserContext()).Model(&imodel.InstituteModel{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count institutes")
	}

	var rows []*imodel.InstituteModel
	if err := q.Order("institute_name ASC").
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch institutes")
	}

	return helper.JsonList(c, idto.FromModelsInstitutes(rows), helper.BuildMeta(total, p))
}

// GET /institutes/:id
func (ctl *InstituteController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var m imodel.InstituteModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&m, "institute_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Institute not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch institute")
	}
	return helper.JsonOK(c, "", idto.FromModelInstitute(&m))
}

// PATCH /institutes/:id — owner only.
func (ctl *InstituteController) Patch(c *fiber.Ctx) error {
	ctl.ensureValidator()

	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var m imodel.InstituteModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&m, "institute_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Institute not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch institute")
	}
	if m.InstituteOwnerUserID != userID && !helperAuth.IsAdmin(c) {
		return helper.JsonError(c, fiber.StatusForbidden, "Only the institute owner may update it")
	}

	var req idto.UpdateInstituteRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Validation failed")
	}

	req.ApplyToModel(&m)
	if err := ctl.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save changes")
	}
	return helper.JsonUpdated(c, "Institute updated", idto.FromModelInstitute(&m))
}

// DELETE /institutes/:id — owner only (soft delete).
func (ctl *InstituteController) Delete(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var m imodel.InstituteModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Select("institute_id, institute_owner_user_id").
		First(&m, "institute_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Institute not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch institute")
	}
	if m.InstituteOwnerUserID != userID && !helperAuth.IsAdmin(c) {
		return helper.JsonError(c, fiber.StatusForbidden, "Only the institute owner may delete it")
	}

	if err := ctl.DB.WithContext(c.UserContext()).
		Delete(&imodel.InstituteModel{}, "institute_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete")
	}
	return helper.JsonDeleted(c, "Institute deleted", fiber.Map{"deleted_id": id})
}
