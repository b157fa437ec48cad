package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"careerday/infras/otel/mocks"
	attendeeMocks "careerday/internal/domains/attendee/mocks"
	"careerday/internal/domains/attendee/model"
	"careerday/internal/domains/attendee/model/dto"
	"careerday/internal/domains/attendee/service"
	"careerday/shared/clock"
	"careerday/shared/constant"
	"careerday/shared/failure"
	"careerday/shared/identity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAttendeeService(t *testing.T) {
	now := time.Date(2026, time.March, 12, 9, 0, 0, 0, time.UTC)
	ada := identity.Actor{Role: constant.RoleAttendee, Attendee: "ada@example.com"}

	tests := []struct {
		name      string
		actor     identity.Actor
		setupMock func(repo *attendeeMocks.MockAttendee)
		wantCode  int
	}{
		{
			name:  "stores the reference for the caller",
			actor: ada,
			setupMock: func(repo *attendeeMocks.MockAttendee) {
				repo.EXPECT().Upsert(gomock.Any(), model.Profile{Attendee: "ada@example.com", Reference: "S123", ModifiedAt: now}).Return(nil)
			},
		},
		{
			name:      "needs an attendee identity",
			actor:     identity.Actor{Role: constant.RoleCompany},
			setupMock: func(_ *attendeeMocks.MockAttendee) {},
			wantCode:  403,
		},
		{
			name:  "storage failure",
			actor: ada,
			setupMock: func(repo *attendeeMocks.MockAttendee) {
				repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
			},
			wantCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := attendeeMocks.NewMockAttendee(ctrl)
			tt.setupMock(repo)

			svc := service.New(repo, clock.Fixed(now), mocks.NewOtel())

			res, err := svc.SetReference(context.Background(), tt.actor, dto.SetReferenceRequest{Reference: "S123"})
			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "S123", res.Reference)
		})
	}
}

func TestAttendeeService_GetWithoutProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := attendeeMocks.NewMockAttendee(ctrl)
	repo.EXPECT().Find(gomock.Any(), "ada@example.com").Return(model.Profile{}, nil)

	svc := service.New(repo, clock.New(), mocks.NewOtel())

	res, err := svc.Get(context.Background(), identity.Actor{Attendee: "ada@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", res.Attendee)
	assert.Empty(t, res.Reference)
	assert.Empty(t, res.ModifiedAt)
}
