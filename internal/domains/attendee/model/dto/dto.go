package dto

import (
	"careerday/internal/domains/attendee/model"
	"careerday/shared/constant"
	"careerday/shared/timezone"
)

type SetReferenceRequest struct {
	Reference string `json:"reference" validate:"required,max=64"`
}

type ProfileResponse struct {
	Attendee   string `json:"attendee"`
	Reference  string `json:"reference"`
	ModifiedAt string `json:"modified_at,omitempty"`
}

func (r *ProfileResponse) FromModel(model model.Profile) {
	r.Attendee = model.Attendee
	r.Reference = model.Reference

	if !model.ModifiedAt.IsZero() {
		r.ModifiedAt = timezone.Format(model.ModifiedAt, constant.DateFormat)
	}
}
