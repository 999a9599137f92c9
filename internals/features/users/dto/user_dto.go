// file: internals/features/users/dto/user_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	cdto "kpsc_backend/internals/features/questionbank/catalog/dto"
	umodel "kpsc_backend/internals/features/users/model"
)

type RegisterRequest struct {
	Username  string  `json:"username" validate:"required,min=3,max=60,alphanum"`
	Email     string  `json:"email" validate:"required,email"`
	Password  string  `json:"password" validate:"required,min=8,max=72"`
	FirstName *string `json:"first_name" validate:"omitempty,max=100"`
	LastName  *string `json:"last_name" validate:"omitempty,max=100"`
}

type UserResponse struct {
	UserID    uuid.UUID `json:"user_id"`
	Username  string    `json:"user_username"`
	Email     string    `json:"user_email"`
	FirstName *string   `json:"user_first_name,omitempty"`
	LastName  *string   `json:"user_last_name,omitempty"`
	CreatedAt time.Time `json:"user_created_at"`
}

func FromModelUser(m *umodel.UserModel) *UserResponse {
	return &UserResponse{
		UserID:    m.UserID,
		Username:  m.UserUsername,
		Email:     m.UserEmail,
		FirstName: m.UserFirstName,
		LastName:  m.UserLastName,
		CreatedAt: m.UserCreatedAt,
	}
}

type UpdateProfileRequest struct {
	Qualifications      []string   `json:"qualifications" validate:"omitempty,dive,max=100"`
	Place               *string    `json:"place" validate:"omitempty,max=100"`
	Bio                 *string    `json:"bio" validate:"omitempty,max=2000"`
	DateOfBirth         *time.Time `json:"date_of_birth" validate:"omitempty"`
	PreferredDifficulty *string    `json:"preferred_difficulty" validate:"omitempty,oneof=easy medium hard"`
	InstituteID         *uuid.UUID `json:"institute_id" validate:"omitempty"`
}

// ApplyToModel only touches fields present in the request.
func (r *UpdateProfileRequest) ApplyToModel(m *umodel.UserProfileModel) {
	if r.Qualifications != nil {
		m.UserProfileQualifications = r.Qualifications
	}
	if r.Place != nil {
		m.UserProfilePlace = r.Place
	}
	if r.Bio != nil {
		m.UserProfileBio = r.Bio
	}
	if r.DateOfBirth != nil {
		m.UserProfileDateOfBirth = r.DateOfBirth
	}
	if r.PreferredDifficulty != nil {
		m.UserProfilePreferredDifficulty = r.PreferredDifficulty
	}
	if r.InstituteID != nil {
		m.UserProfileInstituteID = r.InstituteID
	}
}

type SetPreferredExamsRequest struct {
	ExamIDs []uuid.UUID `json:"exam_ids" validate:"required,max=3,dive,required"`
}

type ProfileResponse struct {
	UserProfileID       uuid.UUID            `json:"user_profile_id"`
	UserID              uuid.UUID            `json:"user_profile_user_id"`
	Qualifications      []string             `json:"user_profile_qualifications,omitempty"`
	Place               *string              `json:"user_profile_place,omitempty"`
	Bio                 *string              `json:"user_profile_bio,omitempty"`
	DateOfBirth         *time.Time           `json:"user_profile_date_of_birth,omitempty"`
	PreferredDifficulty *string              `json:"user_profile_preferred_difficulty,omitempty"`
	InstituteID         *uuid.UUID           `json:"user_profile_institute_id,omitempty"`
	PreferredExams      []*cdto.ExamResponse `json:"preferred_exams"`
}

func FromModelProfile(m *umodel.UserProfileModel) *ProfileResponse {
	return &ProfileResponse{
		UserProfileID:       m.UserProfileID,
		UserID:              m.UserProfileUserID,
		Qualifications:      m.UserProfileQualifications,
		Place:               m.UserProfilePlace,
		Bio:                 m.UserProfileBio,
		DateOfBirth:         m.UserProfileDateOfBirth,
		PreferredDifficulty: m.UserProfilePreferredDifficulty,
		InstituteID:         m.UserProfileInstituteID,
		PreferredExams:      cdto.FromModelsExams(m.PreferredExams),
	}
}

// PublicProfileResponse hides contact details; it is keyed by username.
type PublicProfileResponse struct {
	Username       string               `json:"username"`
	FirstName      *string              `json:"first_name,omitempty"`
	LastName       *string              `json:"last_name,omitempty"`
	Qualifications []string             `json:"qualifications,omitempty"`
	Place          *string              `json:"place,omitempty"`
	Bio            *string              `json:"bio,omitempty"`
	PreferredExams []*cdto.ExamResponse `json:"preferred_exams"`
}

func NewPublicProfileResponse(u *umodel.UserModel, p *umodel.UserProfileModel) *PublicProfileResponse {
	out := &PublicProfileResponse{
		Username:  u.UserUsername,
		FirstName: u.UserFirstName,
		LastName:  u.UserLastName,
	}
	if p != nil {
		out.Qualifications = p.UserProfileQualifications
		out.Place = p.UserProfilePlace
		out.Bio = p.UserProfileBio
		out.PreferredExams = cdto.FromModelsExams(p.PreferredExams)
	}
	return out
}
