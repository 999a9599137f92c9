// file: internals/features/institutes/dto/institute_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	imodel "kpsc_backend/internals/features/institutes/model"
)

/* =========================
   REQUESTS
========================= */

type CreateInstituteRequest struct {
	InstituteName        string  `json:"institute_name" validate:"required,min=3,max=150"`
	InstituteDescription *string `json:"institute_description" validate:"omitempty,max=2000"`
}

func (r *CreateInstituteRequest) ToModel(ownerUserID uuid.UUID) *imodel.InstituteModel {
	return &imodel.InstituteModel{
		InstituteName:        r.InstituteName,
		InstituteDescription: r.InstituteDescription,
		InstituteOwnerUserID: ownerUserID,
	}
}

type UpdateInstituteRequest struct {
	InstituteName        *string `json:"institute_name" validate:"omitempty,min=3,max=150"`
	InstituteDescription *string `json:"institute_description" validate:"omitempty,max=2000"`
}

func (r *UpdateInstituteRequest) ApplyToModel(m *imodel.InstituteModel) {
	if r.InstituteName != nil {
		m.InstituteName = *r.InstituteName
	}
	if r.InstituteDescription != nil {
		m.InstituteDescription = r.InstituteDescription
	}
}

/* =========================
   RESPONSES
========================= */

type InstituteResponse struct {
	InstituteID          uuid.UUID `json:"institute_id"`
	InstituteName        string    `json:"institute_name"`
	InstituteDescription *string   `json:"institute_description,omitempty"`
	InstituteOwnerUserID uuid.UUID `json:"institute_owner_user_id"`
	InstituteCreatedAt   time.Time `json:"institute_created_at"`
}

func FromModelInstitute(m *imodel.InstituteModel) *InstituteResponse {
	return &InstituteResponse{
		InstituteID:          m.InstituteID,
		InstituteName:        m.InstituteName,
		InstituteDescription: m.InstituteDescription,
		InstituteOwnerUserID: m.InstituteOwnerUserID,
		InstituteCreatedAt:   m.InstituteCreatedAt,
	}
}

func FromModelsInstitutes(items []*imodel.InstituteModel) []*InstituteResponse {
	out := make([]*InstituteResponse, 0, len(items))
	for _, it := range items {
		out = append(out, FromModelInstitute(it))
	}
	return out
}
