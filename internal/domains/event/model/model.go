package model

import (
	"time"

	"careerday/shared/model"
	"careerday/shared/timezone"
)

const (
	TableName  = "events"
	EntityName = "event"

	FieldID       = "id"
	FieldName     = "name"
	FieldDate     = "event_date"
	FieldIsActive = "is_active"
)

type Event struct {
	ID       string    `db:"id"`
	Name     string    `db:"name"`
	Date     time.Time `db:"event_date"`
	IsActive bool      `db:"is_active"`
	model.Metadata
}

// Day anchors the event date at midnight in loc. DATE columns scan as UTC midnight.
func (e Event) Day(loc *time.Location) time.Time {
	return timezone.Midnight(e.Date, loc)
}
