package dto

import (
	"careerday/internal/domains/checkin/model"
	"careerday/shared/constant"
	"careerday/shared/timezone"
)

type ToggleRequest struct {
	Attendee string `json:"attendee" validate:"omitempty,attendee"`
}

type ToggleResponse struct {
	Attendee  string `json:"attendee"`
	CheckedIn bool   `json:"checked_in"`
}

type StatusResponse struct {
	Attendee  string `json:"attendee"`
	CheckedIn bool   `json:"checked_in"`
}

type CheckinResponse struct {
	ID          string `json:"id"`
	Attendee    string `json:"attendee"`
	CheckedInAt string `json:"checked_in_at"`
}

func FromModels(models []model.Checkin) []CheckinResponse {
	res := make([]CheckinResponse, len(models))
	for i, mod := range models {
		res[i] = CheckinResponse{
			ID:          mod.ID,
			Attendee:    mod.Attendee,
			CheckedInAt: timezone.Format(mod.CreatedAt, constant.DateFormat),
		}
	}

	return res
}
