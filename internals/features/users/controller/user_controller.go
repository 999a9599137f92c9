// file: internals/features/users/controller/user_controller.go
package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	cmodel "kpsc_backend/internals/features/questionbank/catalog/model"
	"kpsc_backend/internals/features/users/dto"
	umodel "kpsc_backend/internals/features/users/model"
	helper "kpsc_backend/internals/helpers"
	authhelper "kpsc_backend/internals/helpers/auth"
)

type UserController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

func (ctl *UserController) ensureValidator() {
	if ctl.validate == nil {
		ctl.validate = validator.New()
	}
}

// Register creates a user account. Session/token issuance is handled by the
// auth gateway in front of this service; this endpoint only persists the
// account.
func (ctl *UserController) Register(c *fiber.Ctx) error {
	ctl.ensureValidator()

	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.validate.Struct(&req); err != nil {
		fieldErrors := map[string][]string{}
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				key := strings.ToLower(fe.Field())
				fieldErrors[key] = append(fieldErrors[key], fmt.Sprintf("failed on '%s'", fe.Tag()))
			}
		}
		return helper.JsonValidationError(c, fieldErrors)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := umodel.UserModel{
		UserUsername:     strings.ToLower(strings.TrimSpace(req.Username)),
		UserEmail:        strings.ToLower(strings.TrimSpace(req.Email)),
		UserFirstName:    req.FirstName,
		UserLastName:     req.LastName,
		UserPasswordHash: string(hash),
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&user).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Username already taken")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	return helper.JsonCreated(c, "User registered", dto.FromModelUser(&user))
}

// profile get-or-create: the row appears lazily on first profile access.
func (ctl *UserController) getOrCreateProfile(c *fiber.Ctx, userID uuid.UUID) (*umodel.UserProfileModel, error) {
	var profile umodel.UserProfileModel
	err := ctl.DB.WithContext(c.UserContext()).
		Preload("PreferredExams").
		First(&profile, "user_profile_user_id = ?", userID).Error
	if err == nil {
		return &profile, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	profile = umodel.UserProfileModel{UserProfileUserID: userID}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (ctl *UserController) GetMe(c *fiber.Ctx) error {
	userID, err := authhelper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	profile, err := ctl.getOrCreateProfile(c, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load profile")
	}
	return helper.JsonOK(c, "ok", dto.FromModelProfile(profile))
}

func (ctl *UserController) PatchMe(c *fiber.Ctx) error {
	ctl.ensureValidator()

	userID, err := authhelper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid profile fields")
	}

	profile, err := ctl.getOrCreateProfile(c, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load profile")
	}
	req.ApplyToModel(profile)
	if err := ctl.DB.WithContext(c.UserContext()).Save(profile).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update profile")
	}
	return helper.JsonUpdated(c, "Profile updated", dto.FromModelProfile(profile))
}

// SetPreferredExams replaces the focus-exam list (at most 3).
func (ctl *UserController) SetPreferredExams(c *fiber.Ctx) error {
	ctl.ensureValidator()

	userID, err := authhelper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.SetPreferredExamsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.validate.Struct(&req); err != nil || len(req.ExamIDs) > umodel.MaxPreferredExams {
		return helper.JsonError(c, fiber.StatusBadRequest,
			fmt.Sprintf("Choose at most %d preferred exams", umodel.MaxPreferredExams))
	}

	var exams []cmodel.ExamModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("exam_id IN ?", req.ExamIDs).
		Find(&exams).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load exams")
	}
	if len(exams) != len(req.ExamIDs) {
		return helper.JsonError(c, fiber.StatusNotFound, "One or more exams do not exist")
	}

	profile, err := ctl.getOrCreateProfile(c, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load profile")
	}
	if err := ctl.DB.WithContext(c.UserContext()).
		Model(profile).
		Association("PreferredExams").
		Replace(exams); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to set preferred exams")
	}
	profile.PreferredExams = exams

	return helper.JsonUpdated(c, "Preferred exams updated", dto.FromModelProfile(profile))
}

// PublicProfile is the read-only profile page keyed by username.
func (ctl *UserController) PublicProfile(c *fiber.Ctx) error {
	username := strings.ToLower(strings.TrimSpace(c.Params("username")))
	if username == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Username is required")
	}

	var user umodel.UserModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&user, "user_username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load user")
	}

	var profile umodel.UserProfileModel
	err := ctl.DB.WithContext(c.UserContext()).
		Preload("PreferredExams").
		First(&profile, "user_profile_user_id = ?", user.UserID).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load profile")
	}

	var p *umodel.UserProfileModel
	if err == nil {
		p = &profile
	}
	return helper.JsonOK(c, "ok", dto.NewPublicProfileResponse(&user, p))
}
