package model

import "time"

const (
	TableName  = "attendee_profiles"
	EntityName = "attendee"

	FieldAttendee  = "attendee"
	FieldReference = "reference"
)

// Profile holds the student reference (matriculation number) an attendee books with.
type Profile struct {
	Attendee   string    `db:"attendee"`
	Reference  string    `db:"reference"`
	ModifiedAt time.Time `db:"modified_at"`
}
