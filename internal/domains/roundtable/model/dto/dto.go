package dto

import (
	"time"

	"careerday/internal/domains/roundtable/model"
	"careerday/shared/constant"
	gModel "careerday/shared/model"
	"careerday/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoundTableRequest struct {
	Name     string `json:"name"     validate:"required,max=200"`
	Room     string `json:"room"     validate:"max=100"`
	Info     string `json:"info"`
	Capacity int    `json:"capacity" validate:"omitempty,min=1,max=500"`
}

func (r *CreateRoundTableRequest) ToModel(eventID string, capacity int, now time.Time, user string) model.RoundTable {
	if r.Capacity > 0 {
		capacity = r.Capacity
	}

	return model.RoundTable{
		ID:       uuid.NewString(),
		EventID:  eventID,
		Name:     r.Name,
		Room:     r.Room,
		Info:     r.Info,
		Capacity: capacity,
		Metadata: gModel.NewMetadata(now, user),
	}
}

type RoundTableResponse struct {
	ID       string `json:"id"`
	EventID  string `json:"event_id"`
	Name     string `json:"name"`
	Room     string `json:"room"`
	Info     string `json:"info"`
	Capacity int    `json:"capacity"`
}

func (r *RoundTableResponse) FromModel(mod model.RoundTable) {
	r.ID = mod.ID
	r.EventID = mod.EventID
	r.Name = mod.Name
	r.Room = mod.Room
	r.Info = mod.Info
	r.Capacity = mod.Capacity
}

type BookRoundTableRequest struct {
	EventID     string `json:"-"`
	TableID     string `json:"-"`
	Attendee    string `json:"attendee"     validate:"omitempty,attendee"`
	AttendeeRef string `json:"attendee_ref" validate:"omitempty,max=64"`
}

func (r *BookRoundTableRequest) ToModel(attendee, attendeeRef string, now time.Time) model.Booking {
	booking := model.Booking{
		ID:           uuid.NewString(),
		EventID:      r.EventID,
		RoundTableID: r.TableID,
		Attendee:     attendee,
		CreatedAt:    now,
	}

	if attendeeRef != constant.Empty {
		booking.AttendeeRef = &attendeeRef
	}

	return booking
}

// BookRoundTableResult is the tagged outcome of a round-table request. Declines are results, not errors.
type BookRoundTableResult struct {
	Outcome   model.Outcome `json:"outcome"`
	BookingID string        `json:"booking_id,omitempty"`
	TableID   string        `json:"table_id"`
	Phase     model.Phase   `json:"phase"`
	Cap       int           `json:"cap"`
	Message   string        `json:"message"`
}

type TableOverview struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Room     string `json:"room"`
	Capacity int    `json:"capacity"`
	Booked   int    `json:"booked"`
	Cap      int    `json:"cap"`
	Open     bool   `json:"open"`
}

type RoundTablesResponse struct {
	Phase  model.Phase     `json:"phase"`
	Tables []TableOverview `json:"tables"`
}

func FromLoads(loads []model.TableLoad) RoundTablesResponse {
	phase := model.CurrentPhase(loads)
	res := RoundTablesResponse{Phase: phase, Tables: make([]TableOverview, len(loads))}

	for i, load := range loads {
		limit := load.Cap(phase)
		res.Tables[i] = TableOverview{
			ID:       load.ID,
			Name:     load.Name,
			Room:     load.Room,
			Capacity: load.Capacity,
			Booked:   load.Booked,
			Cap:      limit,
			Open:     load.Booked < limit,
		}
	}

	return res
}

type AttendeeRoundTable struct {
	BookingID string `json:"booking_id"`
	TableID   string `json:"table_id"`
	Name      string `json:"name"`
	Room      string `json:"room"`
}

func FromAttendeeTables(models []model.AttendeeTable) []AttendeeRoundTable {
	res := make([]AttendeeRoundTable, len(models))
	for i, mod := range models {
		res[i] = AttendeeRoundTable{
			BookingID: mod.ID,
			TableID:   mod.RoundTableID,
			Name:      mod.Name,
			Room:      mod.Room,
		}
	}

	return res
}

type RosterEntry struct {
	BookingID   string  `json:"booking_id"`
	Attendee    string  `json:"attendee"`
	AttendeeRef *string `json:"attendee_ref"`
	Attended    bool    `json:"attended"`
	BookedAt    string  `json:"booked_at"`
}

func FromRoster(models []model.Booking) []RosterEntry {
	res := make([]RosterEntry, len(models))
	for i, mod := range models {
		res[i] = RosterEntry{
			BookingID:   mod.ID,
			Attendee:    mod.Attendee,
			AttendeeRef: mod.AttendeeRef,
			Attended:    mod.Attended,
			BookedAt:    timezone.Format(mod.CreatedAt, constant.DateFormat),
		}
	}

	return res
}

type MarkAttendedRequest struct {
	Attended bool `json:"attended"`
}
