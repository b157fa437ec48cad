// Package identity carries who is acting on a request. Handlers build an Actor
// from the authenticated context and pass it explicitly to services.
package identity

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"careerday/shared/constant"
)

var (
	ErrInvalidAttendee = errors.New("invalid attendee identifier")
	ErrNoAttendee      = errors.New("request has no attendee identity")
)

// AttendeeID is the canonical form of an attendee address: bare and lower case.
type AttendeeID string

func (a AttendeeID) String() string {
	return string(a)
}

// NormalizeAttendee accepts "Name <addr>" or a bare address and returns the canonical id.
func NormalizeAttendee(raw string) (AttendeeID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrInvalidAttendee
	}

	addr, err := mail.ParseAddress(raw)
	if err != nil {
		return "", ErrInvalidAttendee
	}

	return AttendeeID(strings.ToLower(addr.Address)), nil
}

type Actor struct {
	Subject   string
	Role      string
	Attendee  AttendeeID
	CompanyID string
}

func (a Actor) IsOrganizer() bool {
	return a.Role == constant.RoleOrganizer
}

func (a Actor) IsCompany() bool {
	return a.Role == constant.RoleCompany
}

// CanOperateCompany reports whether the actor may drive the sessions of companyID.
func (a Actor) CanOperateCompany(companyID string) bool {
	if a.IsOrganizer() {
		return true
	}

	return a.IsCompany() && a.CompanyID != "" && a.CompanyID == companyID
}

// OnBehalfOf returns the attendee an operation applies to. Only organizers may name someone else.
func (a Actor) OnBehalfOf(raw string) (AttendeeID, error) {
	if raw != "" && a.IsOrganizer() {
		return NormalizeAttendee(raw)
	}

	if a.Attendee == "" {
		return "", ErrNoAttendee
	}

	return a.Attendee, nil
}

// FromContext reads the values stored by the auth middleware.
func FromContext(ctx context.Context) Actor {
	subject, _ := ctx.Value(constant.ContextKeyUserID).(string)
	email, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
	companyID, _ := ctx.Value(constant.ContextKeyCompanyID).(string)

	actor := Actor{
		Subject:   subject,
		Role:      role,
		CompanyID: companyID,
	}

	if attendee, err := NormalizeAttendee(email); err == nil {
		actor.Attendee = attendee
	}

	return actor
}
