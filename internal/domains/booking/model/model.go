package model

import (
	"time"

	"careerday/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldEventID       = "event_id"
	FieldCompanyID     = "company_id"
	FieldAttendee      = "attendee"
	FieldSlot          = "slot"
	FieldReferenceLink = "reference_link"
	FieldAttendeeRef   = "attendee_ref"
	FieldCancelledAt   = "cancelled_at"

	CompanyTableName = "companies"
	SessionTableName = "interview_sessions"
	FieldStatus      = "status"
)

// Booking is one attendee holding one company slot. A cancelled booking keeps its row with CancelledAt set.
type Booking struct {
	ID            string     `db:"id"`
	EventID       string     `db:"event_id"`
	CompanyID     string     `db:"company_id"`
	Attendee      string     `db:"attendee"`
	Slot          string     `db:"slot"`
	ReferenceLink *string    `db:"reference_link"`
	AttendeeRef   *string    `db:"attendee_ref"`
	CancelledAt   *time.Time `db:"cancelled_at"`
	model.Metadata
}

func (b Booking) Live() bool {
	return b.ID != "" && b.CancelledAt == nil
}

// AttendeeBooking is a live booking joined with its company name.
type AttendeeBooking struct {
	ID          string `db:"id"`
	EventID     string `db:"event_id"`
	CompanyID   string `db:"company_id"`
	Attendee    string `db:"attendee"`
	Slot        string `db:"slot"`
	CompanyName string `db:"company_name" table:"companies" column:"name"`
}

func (AttendeeBooking) GetJoinQuery() string {
	return "JOIN companies ON companies.id = bookings.company_id"
}

// CompanyBooking is a live booking joined with its interview session, which may not exist yet.
type CompanyBooking struct {
	ID            string     `db:"id"`
	EventID       string     `db:"event_id"`
	CompanyID     string     `db:"company_id"`
	Attendee      string     `db:"attendee"`
	Slot          string     `db:"slot"`
	ReferenceLink *string    `db:"reference_link"`
	AttendeeRef   *string    `db:"attendee_ref"`
	Status        *string    `db:"status"         table:"interview_sessions"`
	StartTime     *time.Time `db:"start_time"     table:"interview_sessions"`
	EndTime       *time.Time `db:"end_time"       table:"interview_sessions"`
}

func (CompanyBooking) GetJoinQuery() string {
	return "LEFT JOIN interview_sessions ON interview_sessions.booking_id = bookings.id"
}

func (c CompanyBooking) Booking() Booking {
	return Booking{
		ID:            c.ID,
		EventID:       c.EventID,
		CompanyID:     c.CompanyID,
		Attendee:      c.Attendee,
		Slot:          c.Slot,
		ReferenceLink: c.ReferenceLink,
		AttendeeRef:   c.AttendeeRef,
	}
}

// Outcome tags the result of a booking attempt.
type Outcome string

const (
	OutcomeBooked        Outcome = "booked"
	OutcomeAlreadyBooked Outcome = "already_booked"
	OutcomeSlotTaken     Outcome = "slot_taken"
	OutcomeConflict      Outcome = "conflict"
)

// SlotState is how one calendar slot looks to one attendee for one company.
type SlotState string

const (
	SlotAvailable SlotState = "available"
	SlotMine      SlotState = "mine"
	SlotTaken     SlotState = "taken"
	SlotBlocked   SlotState = "blocked"
)
