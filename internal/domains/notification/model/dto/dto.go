package dto

import (
	"careerday/internal/domains/notification/model"
	"careerday/shared/constant"
	"careerday/shared/timezone"
)

type NotificationResponse struct {
	ID        string     `json:"id"`
	Kind      model.Kind `json:"kind"`
	Message   string     `json:"message"`
	CompanyID string     `json:"company_id"`
	SlotFrom  string     `json:"slot_from"`
	CreatedAt string     `json:"created_at"`
}

func FromModels(models []model.Notification) []NotificationResponse {
	res := make([]NotificationResponse, len(models))
	for i, mod := range models {
		res[i] = NotificationResponse{
			ID:        mod.ID,
			Kind:      mod.Kind,
			Message:   mod.Message,
			CompanyID: mod.CompanyID,
			SlotFrom:  mod.SlotFrom,
			CreatedAt: timezone.Format(mod.CreatedAt, constant.DateFormat),
		}
	}

	return res
}
