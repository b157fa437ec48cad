package identity_test

import (
	"context"
	"testing"

	"careerday/shared/constant"
	"careerday/shared/identity"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAttendee(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    identity.AttendeeID
		wantErr bool
	}{
		{name: "bare address", raw: "ada@example.com", want: "ada@example.com"},
		{name: "display form", raw: "Ada Lovelace <Ada@Example.com>", want: "ada@example.com"},
		{name: "surrounding spaces", raw: "  ADA@example.com ", want: "ada@example.com"},
		{name: "empty", raw: "", wantErr: true},
		{name: "garbage", raw: "ada at example", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := identity.NormalizeAttendee(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, identity.ErrInvalidAttendee)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBothFormsCollapse(t *testing.T) {
	a, _ := identity.NormalizeAttendee("Grace Hopper <grace@navy.mil>")
	b, _ := identity.NormalizeAttendee("grace@navy.mil")

	assert.Equal(t, a, b)
}

func TestFromContext(t *testing.T) {
	ctx := context.Background()
	ctx = context.WithValue(ctx, constant.ContextKeyUserID, "sub-1")
	ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, "Ops <ops@acme.io>")
	ctx = context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleCompany)
	ctx = context.WithValue(ctx, constant.ContextKeyCompanyID, "acme")

	actor := identity.FromContext(ctx)

	assert.Equal(t, "sub-1", actor.Subject)
	assert.Equal(t, identity.AttendeeID("ops@acme.io"), actor.Attendee)
	assert.True(t, actor.IsCompany())
	assert.True(t, actor.CanOperateCompany("acme"))
	assert.False(t, actor.CanOperateCompany("globex"))
}

func TestCanOperateCompany(t *testing.T) {
	organizer := identity.Actor{Role: constant.RoleOrganizer}
	attendee := identity.Actor{Role: constant.RoleAttendee, Attendee: "ada@example.com"}
	unbound := identity.Actor{Role: constant.RoleCompany}

	assert.True(t, organizer.CanOperateCompany("anything"))
	assert.False(t, attendee.CanOperateCompany("acme"))
	assert.False(t, unbound.CanOperateCompany(""))
}

func TestOnBehalfOf(t *testing.T) {
	organizer := identity.Actor{Role: constant.RoleOrganizer, Attendee: "staff@example.com"}
	attendee := identity.Actor{Role: constant.RoleAttendee, Attendee: "ada@example.com"}
	anonymous := identity.Actor{Role: constant.RoleCompany}

	got, err := organizer.OnBehalfOf("Ada <ADA@example.com>")
	assert.NoError(t, err)
	assert.Equal(t, identity.AttendeeID("ada@example.com"), got)

	got, err = attendee.OnBehalfOf("someone@else.org")
	assert.NoError(t, err)
	assert.Equal(t, identity.AttendeeID("ada@example.com"), got)

	_, err = anonymous.OnBehalfOf("")
	assert.ErrorIs(t, err, identity.ErrNoAttendee)

	_, err = organizer.OnBehalfOf("not an address")
	assert.ErrorIs(t, err, identity.ErrInvalidAttendee)
}
