package model

import (
	"time"

	"careerday/shared/model"
)

const (
	TableName  = "interview_sessions"
	EntityName = "interview_session"

	FieldID        = "id"
	FieldBookingID = "booking_id"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusActive    Status = "active"
	StatusDone      Status = "done"
	StatusCancelled Status = "cancelled"
	StatusNoShow    Status = "no-show"
)

// Terminal statuses accept no further action.
func (s Status) Terminal() bool {
	return s == StatusDone || s == StatusCancelled || s == StatusNoShow
}

type Action string

const (
	ActionStart  Action = "start"
	ActionEnd    Action = "end"
	ActionCancel Action = "cancel"
	ActionNoShow Action = "no_show"
)

// Transition applies action to current. An empty current means no session exists yet.
// It reports false, with current unchanged, when the action is not allowed.
func Transition(current Status, action Action) (Status, bool) {
	if current == "" {
		current = StatusPending
	}

	if current.Terminal() {
		return current, false
	}

	switch action {
	case ActionStart:
		return StatusActive, true
	case ActionEnd:
		if current != StatusActive {
			return current, false
		}

		return StatusDone, true
	case ActionCancel:
		return StatusCancelled, true
	case ActionNoShow:
		return StatusNoShow, true
	}

	return current, false
}

type Session struct {
	ID        string     `db:"id"`
	BookingID string     `db:"booking_id"`
	Status    Status     `db:"status"`
	StartTime *time.Time `db:"start_time"`
	EndTime   *time.Time `db:"end_time"`
	model.Metadata
}

// Apply stamps the times that belong to the new status.
func (s *Session) Apply(action Action, status Status, now time.Time, user string) {
	s.Status = status
	s.ModifiedAt = now
	s.ModifiedBy = user

	switch action {
	case ActionStart:
		s.StartTime = &now
		s.EndTime = nil
	case ActionEnd, ActionCancel:
		s.EndTime = &now
	case ActionNoShow:
	}
}
