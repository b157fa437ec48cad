package dto

import (
	"time"

	"careerday/internal/domains/event/model"
	"careerday/shared"
	"careerday/shared/constant"
	gDto "careerday/shared/dto"
	gModel "careerday/shared/model"
	"careerday/shared/timezone"

	"github.com/google/uuid"
)

type CreateEventRequest struct {
	Name string `json:"name" validate:"required,max=200"`
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

func (c *CreateEventRequest) ToModel(user string) (model.Event, error) {
	date, err := time.Parse(constant.DateOnlyFormat, c.Date)
	if err != nil {
		return model.Event{}, err //nolint:wrapcheck
	}

	return model.Event{
		ID:       uuid.NewString(),
		Name:     c.Name,
		Date:     date,
		IsActive: false,
		Metadata: gModel.NewMetadata(timezone.Now(), user),
	}, nil
}

type AttachCompanyRequest struct {
	CompanyID string `json:"company_id" validate:"required,uuid"`
}

type EventResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Date     string `json:"date"`
	IsActive bool   `json:"is_active"`
	gDto.Metadata
}

func (r *EventResponse) FromModel(model model.Event) {
	r.ID = model.ID
	r.Name = model.Name
	r.Date = model.Date.Format(constant.DateOnlyFormat)
	r.IsActive = model.IsActive
	r.Metadata = gDto.NewMetadata(model.Metadata)
}

type GetEventsResponse struct {
	Events    []EventResponse `json:"events"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetEventsResponse) FromModels(models []model.Event, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Events = make([]EventResponse, len(models))
	for i, mod := range models {
		r.Events[i].FromModel(mod)
	}
}
