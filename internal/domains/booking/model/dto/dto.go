package dto

import (
	"time"

	"careerday/internal/domains/booking/model"
	"careerday/shared/constant"
	gModel "careerday/shared/model"
	"careerday/shared/timezone"

	"github.com/google/uuid"
)

const defaultSessionStatus = "pending"

type BookRequest struct {
	EventID       string `json:"-"`
	CompanyID     string `json:"company_id"     validate:"required,uuid"`
	Attendee      string `json:"attendee"       validate:"omitempty,attendee"`
	Slot          string `json:"slot"           validate:"required,slot"`
	ReferenceLink string `json:"reference_link" validate:"omitempty,url,max=2048"`
	AttendeeRef   string `json:"attendee_ref"   validate:"omitempty,max=64"`
}

func (b *BookRequest) ToModel(attendee, attendeeRef, user string, now time.Time) model.Booking {
	booking := model.Booking{
		ID:        uuid.NewString(),
		EventID:   b.EventID,
		CompanyID: b.CompanyID,
		Attendee:  attendee,
		Slot:      b.Slot,
		Metadata:  gModel.NewMetadata(now, user),
	}

	if b.ReferenceLink != constant.Empty {
		link := b.ReferenceLink
		booking.ReferenceLink = &link
	}

	if attendeeRef != constant.Empty {
		booking.AttendeeRef = &attendeeRef
	}

	return booking
}

// BookResult is the tagged outcome of a booking attempt. Declines are results, not errors.
type BookResult struct {
	Outcome           model.Outcome `json:"outcome"`
	BookingID         string        `json:"booking_id,omitempty"`
	Slot              string        `json:"slot"`
	CompanyID         string        `json:"company_id"`
	ConflictSlot      string        `json:"conflict_slot,omitempty"`
	ConflictCompanyID string        `json:"conflict_company_id,omitempty"`
	Message           string        `json:"message"`
}

func (r BookResult) Booked() bool {
	return r.Outcome == model.OutcomeBooked || r.Outcome == model.OutcomeAlreadyBooked
}

type CancelRequest struct {
	EventID   string `json:"-"`
	CompanyID string `json:"company_id" validate:"required,uuid"`
	Slot      string `json:"slot"       validate:"required,slot"`
	Attendee  string `json:"attendee"   validate:"omitempty,attendee"`
}

type AttendeeBookingResponse struct {
	ID        string `json:"id"`
	Slot      string `json:"slot"`
	CompanyID string `json:"company_id"`
	Company   string `json:"company"`
}

func FromAttendeeModels(models []model.AttendeeBooking) []AttendeeBookingResponse {
	res := make([]AttendeeBookingResponse, len(models))
	for i, mod := range models {
		res[i] = AttendeeBookingResponse{
			ID:        mod.ID,
			Slot:      mod.Slot,
			CompanyID: mod.CompanyID,
			Company:   mod.CompanyName,
		}
	}

	return res
}

type CompanyBookingResponse struct {
	ID            string  `json:"id"`
	Slot          string  `json:"slot"`
	Attendee      string  `json:"attendee"`
	ReferenceLink *string `json:"reference_link"`
	AttendeeRef   *string `json:"attendee_ref"`
	Status        string  `json:"status"`
	StartTime     *string `json:"start_time"`
	EndTime       *string `json:"end_time"`
}

func (r *CompanyBookingResponse) FromModel(mod model.CompanyBooking) {
	r.ID = mod.ID
	r.Slot = mod.Slot
	r.Attendee = mod.Attendee
	r.ReferenceLink = mod.ReferenceLink
	r.AttendeeRef = mod.AttendeeRef
	r.Status = defaultSessionStatus
	r.StartTime = formatTime(mod.StartTime)
	r.EndTime = formatTime(mod.EndTime)

	if mod.Status != nil {
		r.Status = *mod.Status
	}
}

func FromCompanyModels(models []model.CompanyBooking) []CompanyBookingResponse {
	res := make([]CompanyBookingResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}

type SlotAvailability struct {
	Slot  string          `json:"slot"`
	State model.SlotState `json:"state"`
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}

	formatted := timezone.Format(*t, constant.DateFormat)

	return &formatted
}
