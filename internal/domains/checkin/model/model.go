package model

import "time"

const (
	TableName  = "checkins"
	EntityName = "checkin"

	FieldID        = "id"
	FieldEventID   = "event_id"
	FieldAttendee  = "attendee"
	FieldCreatedAt = "created_at"
)

type Checkin struct {
	ID        string    `db:"id"`
	EventID   string    `db:"event_id"`
	Attendee  string    `db:"attendee"`
	CreatedAt time.Time `db:"created_at"`
}
