package model

import (
	"strings"
	"time"
)

const (
	TableName  = "notifications"
	EntityName = "notification"

	FieldID        = "id"
	FieldEventID   = "event_id"
	FieldCompanyID = "company_id"
	FieldAttendee  = "attendee"
	FieldSlotFrom  = "slot_from"
	FieldKind      = "kind"
	FieldCreatedAt = "created_at"
	FieldReadAt    = "read_at"
)

type Kind string

const (
	KindEarlyFinish   Kind = "early_finish"
	KindCancelledPrev Kind = "cancelled_prev"
	KindRunningLate   Kind = "running_late"
)

// Notification tells the attendee of the next slot that the previous interview changed course.
// SlotFrom is the slot whose session triggered it.
type Notification struct {
	ID        string     `db:"id"         json:"id"`
	EventID   string     `db:"event_id"   json:"event_id"`
	CompanyID string     `db:"company_id" json:"company_id"`
	Attendee  string     `db:"attendee"   json:"attendee"`
	SlotFrom  string     `db:"slot_from"  json:"slot_from"`
	Kind      Kind       `db:"kind"       json:"kind"`
	Message   string     `db:"message"    json:"message"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	ReadAt    *time.Time `db:"read_at"    json:"read_at,omitempty"`
}

// Key identifies the unread notification a trigger may refresh instead of duplicating.
func (n Notification) Key() string {
	return strings.Join([]string{EntityName, n.EventID, n.CompanyID, n.Attendee, n.SlotFrom, string(n.Kind)}, ":")
}
