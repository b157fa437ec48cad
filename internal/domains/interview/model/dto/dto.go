package dto

import (
	"time"

	bookingDto "careerday/internal/domains/booking/model/dto"
	"careerday/internal/domains/interview/model"
	"careerday/shared/constant"
	"careerday/shared/timezone"
)

// TransitionResponse reports the session after an action. Applied is false when the action was ignored.
type TransitionResponse struct {
	BookingID string       `json:"booking_id"`
	Status    model.Status `json:"status"`
	Applied   bool         `json:"applied"`
	StartTime *string      `json:"start_time"`
	EndTime   *string      `json:"end_time"`
	Notified  int          `json:"notified"`
}

func (r *TransitionResponse) FromModel(session model.Session) {
	r.BookingID = session.BookingID
	r.Status = session.Status
	r.StartTime = formatTime(session.StartTime)
	r.EndTime = formatTime(session.EndTime)
}

// CurrentInterview is the booking a company should be seeing now, nil when the queue is empty.
type CurrentInterview struct {
	Booking  *bookingDto.CompanyBookingResponse `json:"booking"`
	Notified int                                `json:"notified"`
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}

	formatted := timezone.Format(*t, constant.DateFormat)

	return &formatted
}
