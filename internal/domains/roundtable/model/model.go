package model

import (
	"time"

	"careerday/shared/model"
)

const (
	TableName        = "round_tables"
	BookingTableName = "round_table_bookings"
	EntityName       = "round_table"
	BookingEntity    = "round_table_booking"

	FieldID           = "id"
	FieldEventID      = "event_id"
	FieldName         = "name"
	FieldRoundTableID = "round_table_id"
	FieldAttendee     = "attendee"
	FieldCreatedAt    = "created_at"
)

type RoundTable struct {
	ID       string `db:"id"`
	EventID  string `db:"event_id"`
	Name     string `db:"name"`
	Room     string `db:"room"`
	Info     string `db:"info"`
	Capacity int    `db:"capacity"`
	model.Metadata
}

type Booking struct {
	ID           string    `db:"id"`
	EventID      string    `db:"event_id"`
	RoundTableID string    `db:"round_table_id"`
	Attendee     string    `db:"attendee"`
	AttendeeRef  *string   `db:"attendee_ref"`
	Attended     bool      `db:"attended"`
	CreatedAt    time.Time `db:"created_at"`
}

// AttendeeTable is a round-table booking joined with its table.
type AttendeeTable struct {
	ID           string `db:"id"`
	EventID      string `db:"event_id"`
	RoundTableID string `db:"round_table_id"`
	Attendee     string `db:"attendee"`
	Name         string `db:"name" table:"round_tables"`
	Room         string `db:"room" table:"round_tables"`
}

func (AttendeeTable) GetJoinQuery() string {
	return "JOIN round_tables ON round_tables.id = round_table_bookings.round_table_id"
}

// TableLoad is one table with its current number of bookings.
type TableLoad struct {
	ID       string `db:"id"`
	Name     string `db:"name"`
	Room     string `db:"room"`
	Capacity int    `db:"capacity"`
	Booked   int    `db:"booked"`
}

type Phase int

const (
	PhaseOne Phase = 1
	PhaseTwo Phase = 2
)

// CurrentPhase opens phase two once every table holds at least half its capacity.
func CurrentPhase(loads []TableLoad) Phase {
	if len(loads) == 0 {
		return PhaseOne
	}

	for _, load := range loads {
		if load.Booked < load.Capacity/2 {
			return PhaseOne
		}
	}

	return PhaseTwo
}

// Cap is the number of seats the table offers in phase.
func (l TableLoad) Cap(phase Phase) int {
	if phase == PhaseTwo {
		return l.Capacity
	}

	return l.Capacity / 2
}

type Decision struct {
	Found    bool
	Admitted bool
	Phase    Phase
	Cap      int
	Booked   int
}

// Admit decides on a fresh snapshot of every table in the event whether tableID can take one more attendee.
func Admit(loads []TableLoad, tableID string) Decision {
	phase := CurrentPhase(loads)

	for _, load := range loads {
		if load.ID != tableID {
			continue
		}

		limit := load.Cap(phase)

		return Decision{
			Found:    true,
			Admitted: load.Booked < limit,
			Phase:    phase,
			Cap:      limit,
			Booked:   load.Booked,
		}
	}

	return Decision{Phase: phase}
}

type Outcome string

const (
	OutcomeBooked            Outcome = "booked"
	OutcomeAlreadyBooked     Outcome = "already_booked"
	OutcomeAlreadyHoldsTable Outcome = "already_holds_table"
	OutcomeTableFull         Outcome = "table_full"
)
