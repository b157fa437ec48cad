package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"careerday/config"
	"careerday/infras/otel/mocks"
	txMocks "careerday/infras/postgres/mocks"
	bookingMocks "careerday/internal/domains/booking/mocks"
	bookingModel "careerday/internal/domains/booking/model"
	notificationMocks "careerday/internal/domains/notification/mocks"
	"careerday/internal/domains/notification/model"
	"careerday/internal/domains/notification/service"
	"careerday/internal/schedule"
	"careerday/shared/clock"
	"careerday/shared/constant"
	"careerday/shared/failure"
	"careerday/shared/identity"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var day = time.Date(2026, time.March, 12, 0, 0, 0, 0, time.UTC)

type recordingSink struct {
	published chan model.Notification
}

func (r *recordingSink) Publish(_ context.Context, _ string, value any) error {
	if n, ok := value.(model.Notification); ok {
		r.published <- n
	}

	return nil
}

type fixture struct {
	svc      service.Notification
	repo     *notificationMocks.MockNotification
	bookings *bookingMocks.MockBooking
	sink     *recordingSink
	tx       *txMocks.Transactor
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	morning, err := schedule.ParseRange("11:30-13:00")
	require.NoError(t, err)

	afternoon, err := schedule.ParseRange("14:30-16:30")
	require.NoError(t, err)

	cal, err := schedule.New(15*time.Minute, morning, afternoon)
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.Schedule.RunningLateCooldownSeconds = 60

	f := fixture{
		repo:     notificationMocks.NewMockNotification(ctrl),
		bookings: bookingMocks.NewMockBooking(ctrl),
		sink:     &recordingSink{published: make(chan model.Notification, 4)},
		tx:       txMocks.NewTransactor(),
	}

	f.svc = service.New(f.repo, f.bookings, f.tx, cal, f.sink, clock.Fixed(day.Add(11*time.Hour)), cfg, mocks.NewOtel())

	return f
}

func current(slot string) bookingModel.Booking {
	return bookingModel.Booking{ID: "b-" + slot, EventID: "e1", CompanyID: "c1", Attendee: "ada@uni.it", Slot: slot}
}

func (f fixture) nextSlotHeldBy(attendee, slot string) {
	next := bookingModel.Booking{}
	if attendee != "" {
		next = bookingModel.Booking{ID: "b-" + slot, EventID: "e1", CompanyID: "c1", Attendee: attendee, Slot: slot}
	}

	f.bookings.EXPECT().GetLiveBySlotTx(gomock.Any(), gomock.Any(), "e1", "c1", slot).Return(next, nil)
}

func TestNotificationService_NotifyEarlyFinish(t *testing.T) {
	tests := []struct {
		name     string
		endedAt  time.Time
		setup    func(f fixture)
		expected int
	}{
		{
			name:    "ended before the slot end with a next attendee",
			endedAt: day.Add(11*time.Hour + 40*time.Minute),
			setup: func(f fixture) {
				f.nextSlotHeldBy("bob@uni.it", "11:45")
				f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, n model.Notification) error {
						assert.Equal(t, "bob@uni.it", n.Attendee)
						assert.Equal(t, model.KindEarlyFinish, n.Kind)
						assert.Equal(t, "11:30", n.SlotFrom)
						assert.Equal(t, "The previous slot (11:30) ended early. You may come now.", n.Message)

						return nil
					})
			},
			expected: 1,
		},
		{
			name:     "ended exactly at the slot end",
			endedAt:  day.Add(11*time.Hour + 45*time.Minute),
			expected: 0,
		},
		{
			name:     "ended late",
			endedAt:  day.Add(11*time.Hour + 50*time.Minute),
			expected: 0,
		},
		{
			name:    "nobody booked next",
			endedAt: day.Add(11*time.Hour + 35*time.Minute),
			setup: func(f fixture) {
				f.nextSlotHeldBy("", "11:45")
			},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			if tt.setup != nil {
				tt.setup(f)
			}

			res, err := f.svc.NotifyEarlyFinish(context.Background(), nil, day, current("11:30"), tt.endedAt)
			require.NoError(t, err)
			assert.Len(t, res, tt.expected)
		})
	}
}

func TestNotificationService_NotifyCancelledPrev(t *testing.T) {
	f := newFixture(t)

	f.nextSlotHeldBy("bob@uni.it", "15:15")
	f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	res, err := f.svc.NotifyCancelledPrev(context.Background(), nil, current("15:00"))
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, model.KindCancelledPrev, res[0].Kind)
	assert.Equal(t, "The previous slot (15:00) was cancelled. You may come now.", res[0].Message)
}

func TestNotificationService_NotifyCancelledPrevAtRangeEnd(t *testing.T) {
	f := newFixture(t)

	f.nextSlotHeldBy("", "13:00")

	res, err := f.svc.NotifyCancelledPrev(context.Background(), nil, current("12:45"))
	require.NoError(t, err)
	assert.Empty(t, res)
}

func TestNotificationService_UpsertRunningLate(t *testing.T) {
	slotEnd := day.Add(11*time.Hour + 45*time.Minute)

	tests := []struct {
		name     string
		now      time.Time
		setup    func(t *testing.T, f fixture)
		expected int
	}{
		{
			name:     "still inside the slot",
			now:      slotEnd,
			expected: 0,
		},
		{
			name: "first tick inserts with at least one minute",
			now:  slotEnd.Add(20 * time.Second),
			setup: func(t *testing.T, f fixture) {
				f.nextSlotHeldBy("bob@uni.it", "11:45")
				f.repo.EXPECT().FindUnreadTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Notification{}, nil)
				f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, n model.Notification) error {
						assert.Equal(t, "The previous slot (11:30) is running 1 min late.", n.Message)
						assert.Equal(t, model.KindRunningLate, n.Kind)

						return nil
					})
			},
			expected: 1,
		},
		{
			name: "same text inside the cooldown is left alone",
			now:  slotEnd.Add(90 * time.Second),
			setup: func(t *testing.T, f fixture) {
				f.nextSlotHeldBy("bob@uni.it", "11:45")
				f.repo.EXPECT().FindUnreadTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Notification{
					ID:        "n1",
					Message:   "The previous slot (11:30) is running 1 min late.",
					CreatedAt: slotEnd.Add(40 * time.Second),
				}, nil)
			},
			expected: 0,
		},
		{
			name: "changed text refreshes the existing row",
			now:  slotEnd.Add(3*time.Minute + 5*time.Second),
			setup: func(t *testing.T, f fixture) {
				f.nextSlotHeldBy("bob@uni.it", "11:45")
				f.repo.EXPECT().FindUnreadTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Notification{
					ID:        "n1",
					Message:   "The previous slot (11:30) is running 2 min late.",
					CreatedAt: slotEnd.Add(2*time.Minute + 50*time.Second),
				}, nil)
				f.repo.EXPECT().UpdateMessageTx(gomock.Any(), gomock.Any(), "n1", "The previous slot (11:30) is running 3 min late.", gomock.Any()).Return(nil)
			},
			expected: 1,
		},
		{
			name: "same text past the cooldown refreshes",
			now:  slotEnd.Add(2*time.Minute + 30*time.Second),
			setup: func(t *testing.T, f fixture) {
				f.nextSlotHeldBy("bob@uni.it", "11:45")
				f.repo.EXPECT().FindUnreadTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Notification{
					ID:        "n1",
					Message:   "The previous slot (11:30) is running 2 min late.",
					CreatedAt: slotEnd.Add(time.Minute),
				}, nil)
				f.repo.EXPECT().UpdateMessageTx(gomock.Any(), gomock.Any(), "n1", gomock.Any(), gomock.Any()).Return(nil)
			},
			expected: 1,
		},
		{
			name: "nobody waiting",
			now:  slotEnd.Add(5 * time.Minute),
			setup: func(t *testing.T, f fixture) {
				f.nextSlotHeldBy("", "11:45")
			},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			if tt.setup != nil {
				tt.setup(t, f)
			}

			res, err := f.svc.UpsertRunningLate(context.Background(), nil, day, current("11:30"), tt.now)
			require.NoError(t, err)
			assert.Len(t, res, tt.expected)
		})
	}
}

func TestNotificationService_UpsertRunningLateLocksTheKey(t *testing.T) {
	f := newFixture(t)

	f.nextSlotHeldBy("bob@uni.it", "11:45")
	f.repo.EXPECT().FindUnreadTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Notification{}, nil)
	f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	_, err := f.svc.UpsertRunningLate(context.Background(), nil, day, current("11:30"), day.Add(12*time.Hour))
	require.NoError(t, err)

	assert.Equal(t, []string{"notification:e1:c1:bob@uni.it:11:30:running_late"}, f.tx.Locks)
}

func TestNotificationService_MarkRead(t *testing.T) {
	bob := identity.Actor{Subject: "bob", Role: constant.RoleAttendee, Attendee: "bob@uni.it"}
	readAt := day

	tests := []struct {
		name  string
		actor identity.Actor
		setup func(f fixture)
		code  int
	}{
		{
			name:  "addressee marks it",
			actor: bob,
			setup: func(f fixture) {
				f.repo.EXPECT().Find(gomock.Any(), "n1").Return(model.Notification{ID: "n1", Attendee: "bob@uni.it"}, nil)
				f.repo.EXPECT().MarkRead(gomock.Any(), "n1", gomock.Any()).Return(true, nil)
			},
		},
		{
			name:  "already read is a no-op",
			actor: bob,
			setup: func(f fixture) {
				f.repo.EXPECT().Find(gomock.Any(), "n1").Return(model.Notification{ID: "n1", Attendee: "bob@uni.it", ReadAt: &readAt}, nil)
			},
		},
		{
			name:  "someone else's notification",
			actor: identity.Actor{Subject: "ada", Role: constant.RoleAttendee, Attendee: "ada@uni.it"},
			setup: func(f fixture) {
				f.repo.EXPECT().Find(gomock.Any(), "n1").Return(model.Notification{ID: "n1", Attendee: "bob@uni.it"}, nil)
			},
			code: 404,
		},
		{
			name:  "missing",
			actor: bob,
			setup: func(f fixture) {
				f.repo.EXPECT().Find(gomock.Any(), "n1").Return(model.Notification{}, nil)
			},
			code: 404,
		},
		{
			name:  "storage failure",
			actor: bob,
			setup: func(f fixture) {
				f.repo.EXPECT().Find(gomock.Any(), "n1").Return(model.Notification{}, errors.New("db down"))
			},
			code: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			err := f.svc.MarkRead(context.Background(), tt.actor, "n1")
			if tt.code == 0 {
				assert.NoError(t, err)

				return
			}

			assert.Equal(t, tt.code, failure.GetCode(err))
		})
	}
}

func TestNotificationService_Unread(t *testing.T) {
	f := newFixture(t)
	bob := identity.Actor{Subject: "bob", Role: constant.RoleAttendee, Attendee: "bob@uni.it"}

	f.repo.EXPECT().ListUnread(gomock.Any(), "e1", "bob@uni.it").Return([]model.Notification{
		{ID: "n2", Kind: model.KindRunningLate, Message: "late", CreatedAt: day},
		{ID: "n1", Kind: model.KindEarlyFinish, Message: "early", CreatedAt: day},
	}, nil)

	res, err := f.svc.Unread(context.Background(), bob, "e1", "")
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "n2", res[0].ID)
}

func TestNotificationService_Publish(t *testing.T) {
	f := newFixture(t)

	f.svc.Publish(context.Background(), model.Notification{ID: "n1", Attendee: "bob@uni.it"})

	select {
	case n := <-f.sink.published:
		assert.Equal(t, "n1", n.ID)
	case <-time.After(time.Second):
		t.Fatal("notification was not published")
	}
}
