package service_test

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"sync"
	"testing"
	"time"

	"careerday/config"
	"careerday/infras/otel/mocks"
	txMocks "careerday/infras/postgres/mocks"
	attendeeMocks "careerday/internal/domains/attendee/mocks"
	attendeeModel "careerday/internal/domains/attendee/model"
	eventMocks "careerday/internal/domains/event/mocks"
	eventModel "careerday/internal/domains/event/model"
	"careerday/internal/domains/roundtable/model"
	"careerday/internal/domains/roundtable/model/dto"
	"careerday/internal/domains/roundtable/service"
	"careerday/shared/clock"
	"careerday/shared/constant"
	"careerday/shared/failure"
	"careerday/shared/identity"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const eventID = "e1"

var now = time.Date(2026, time.March, 12, 9, 0, 0, 0, time.UTC)

type memoryTables struct {
	mu       sync.Mutex
	tables   []model.RoundTable
	bookings []model.Booking
}

func (m *memoryTables) Insert(_ context.Context, table model.RoundTable) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.tables = append(m.tables, table)

	return nil
}

func (m *memoryTables) Find(_ context.Context, id string) (model.RoundTable, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, t := range m.tables {
		if t.ID == id {
			return t, nil
		}
	}

	return model.RoundTable{}, nil
}

func (m *memoryTables) Loads(ctx context.Context, eventID string) ([]model.TableLoad, error) {
	return m.LoadsTx(ctx, nil, eventID)
}

func (m *memoryTables) LoadsTx(_ context.Context, _ *sqlx.Tx, eventID string) ([]model.TableLoad, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	loads := []model.TableLoad{}

	for _, t := range m.tables {
		if t.EventID != eventID {
			continue
		}

		load := model.TableLoad{ID: t.ID, Name: t.Name, Room: t.Room, Capacity: t.Capacity}

		for _, b := range m.bookings {
			if b.RoundTableID == t.ID {
				load.Booked++
			}
		}

		loads = append(loads, load)
	}

	sort.Slice(loads, func(i, j int) bool { return loads[i].Name < loads[j].Name })

	return loads, nil
}

func (m *memoryTables) FindBookingTx(_ context.Context, _ *sqlx.Tx, eventID, attendee string) (model.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, b := range m.bookings {
		if b.EventID == eventID && b.Attendee == attendee {
			return b, nil
		}
	}

	return model.Booking{}, nil
}

func (m *memoryTables) InsertBookingTx(_ context.Context, _ *sqlx.Tx, booking model.Booking) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, b := range m.bookings {
		if b.EventID == booking.EventID && b.RoundTableID == booking.RoundTableID && b.Attendee == booking.Attendee {
			return false, nil
		}
	}

	m.bookings = append(m.bookings, booking)

	return true, nil
}

func (m *memoryTables) Roster(_ context.Context, tableID string) ([]model.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	res := []model.Booking{}

	for _, b := range m.bookings {
		if b.RoundTableID == tableID {
			res = append(res, b)
		}
	}

	return res, nil
}

func (m *memoryTables) SetAttended(_ context.Context, bookingID string, attended bool) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.bookings {
		if m.bookings[i].ID == bookingID {
			m.bookings[i].Attended = attended

			return true, nil
		}
	}

	return false, nil
}

func (m *memoryTables) ListByAttendee(_ context.Context, eventID, attendee string) ([]model.AttendeeTable, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	res := []model.AttendeeTable{}

	for _, b := range m.bookings {
		if b.EventID != eventID || b.Attendee != attendee {
			continue
		}

		row := model.AttendeeTable{ID: b.ID, EventID: b.EventID, RoundTableID: b.RoundTableID, Attendee: b.Attendee}

		for _, t := range m.tables {
			if t.ID == b.RoundTableID {
				row.Name = t.Name
				row.Room = t.Room
			}
		}

		res = append(res, row)
	}

	return res, nil
}

type fixture struct {
	svc   service.RoundTable
	store *memoryTables
	tx    *txMocks.Transactor
}

func newFixture(t *testing.T, active string) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.RoundTable.DefaultCapacity = 10

	events := eventMocks.NewMockEvent(ctrl)
	events.EXPECT().ActiveTx(gomock.Any(), gomock.Any()).
		Return(eventModel.Event{ID: active, IsActive: active != constant.Empty}, nil).AnyTimes()

	profiles := attendeeMocks.NewMockAttendee(ctrl)
	profiles.EXPECT().FindTx(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(attendeeModel.Profile{Reference: "S-1"}, nil).AnyTimes()

	f := fixture{
		store: &memoryTables{},
		tx:    txMocks.NewTransactor(),
	}

	for _, name := range []string{"A", "B", "C"} {
		f.store.tables = append(f.store.tables, model.RoundTable{ID: name, EventID: eventID, Name: name, Capacity: 10})
	}

	f.svc = service.New(f.store, events, profiles, f.tx, clock.Fixed(now), cfg, mocks.NewOtel())

	return f
}

func attendee(t *testing.T, addr string) identity.Actor {
	t.Helper()

	id, err := identity.NormalizeAttendee(addr)
	require.NoError(t, err)

	return identity.Actor{Subject: addr, Role: constant.RoleAttendee, Attendee: id}
}

func bookAs(t *testing.T, f fixture, addr, table string) dto.BookRoundTableResult {
	t.Helper()

	res, err := f.svc.Book(context.Background(), attendee(t, addr), dto.BookRoundTableRequest{EventID: eventID, TableID: table})
	require.NoError(t, err)

	return res
}

func fill(t *testing.T, f fixture, table string, n int) {
	t.Helper()

	for i := 0; i < n; i++ {
		res := bookAs(t, f, fmt.Sprintf("%s%d@uni.it", table, i), table)
		require.Equal(t, model.OutcomeBooked, res.Outcome)
	}
}

func TestRoundTableService_BookPhases(t *testing.T) {
	f := newFixture(t, eventID)

	fill(t, f, "A", 5)

	res := bookAs(t, f, "late@uni.it", "A")
	assert.Equal(t, model.OutcomeTableFull, res.Outcome)
	assert.Equal(t, model.PhaseOne, res.Phase)
	assert.Equal(t, 5, res.Cap)

	fill(t, f, "B", 5)
	fill(t, f, "C", 5)

	res = bookAs(t, f, "late@uni.it", "A")
	assert.Equal(t, model.OutcomeBooked, res.Outcome)
	assert.Equal(t, model.PhaseTwo, res.Phase)
	assert.Equal(t, 10, res.Cap)
	assert.Contains(t, f.tx.Locks, service.LockKey(eventID))
}

func TestRoundTableService_BookConcurrently(t *testing.T) {
	f := newFixture(t, eventID)

	var wg sync.WaitGroup

	results := make([]dto.BookRoundTableResult, 40)

	for i := range results {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			table := []string{"A", "B", "C", "A"}[i%4]
			res, err := f.svc.Book(context.Background(), attendee(t, fmt.Sprintf("s%d@uni.it", i)), dto.BookRoundTableRequest{EventID: eventID, TableID: table})
			assert.NoError(t, err)

			results[i] = res
		}(i)
	}

	wg.Wait()

	loads, err := f.store.Loads(context.Background(), eventID)
	require.NoError(t, err)

	seated := 0

	for _, load := range loads {
		assert.LessOrEqual(t, load.Booked, load.Capacity, load.Name)

		seated += load.Booked
	}

	booked := 0
	full := 0

	for _, res := range results {
		switch res.Outcome {
		case model.OutcomeBooked:
			booked++
		case model.OutcomeTableFull:
			full++
		}
	}

	assert.Equal(t, len(results), booked+full)
	assert.Equal(t, seated, booked)
}

func TestRoundTableService_BookOneTablePerAttendee(t *testing.T) {
	f := newFixture(t, eventID)

	first := bookAs(t, f, "ada@uni.it", "A")
	require.Equal(t, model.OutcomeBooked, first.Outcome)

	again := bookAs(t, f, "Ada <ADA@uni.it>", "A")
	assert.Equal(t, model.OutcomeAlreadyBooked, again.Outcome)
	assert.Equal(t, first.BookingID, again.BookingID)

	other := bookAs(t, f, "ada@uni.it", "B")
	assert.Equal(t, model.OutcomeAlreadyHoldsTable, other.Outcome)

	loads, err := f.store.Loads(context.Background(), eventID)
	require.NoError(t, err)
	assert.Equal(t, 1, loads[0].Booked)
	assert.Equal(t, 0, loads[1].Booked)

	require.Len(t, f.store.bookings, 1)
	require.NotNil(t, f.store.bookings[0].AttendeeRef)
	assert.Equal(t, "S-1", *f.store.bookings[0].AttendeeRef)
}

func TestRoundTableService_BookRejects(t *testing.T) {
	t.Run("unknown table", func(t *testing.T) {
		f := newFixture(t, eventID)

		_, err := f.svc.Book(context.Background(), attendee(t, "ada@uni.it"), dto.BookRoundTableRequest{EventID: eventID, TableID: "Z"})
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("event not active", func(t *testing.T) {
		f := newFixture(t, constant.Empty)

		_, err := f.svc.Book(context.Background(), attendee(t, "ada@uni.it"), dto.BookRoundTableRequest{EventID: eventID, TableID: "A"})
		assert.Equal(t, http.StatusUnprocessableEntity, failure.GetCode(err))
		assert.Equal(t, failure.ReasonEventNotActive, failure.GetReason(err))
	})

	t.Run("no attendee identity", func(t *testing.T) {
		f := newFixture(t, eventID)

		_, err := f.svc.Book(context.Background(), identity.Actor{Role: constant.RoleCompany}, dto.BookRoundTableRequest{EventID: eventID, TableID: "A"})
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.Zero(t, f.tx.Runs)
	})
}

func TestRoundTableService_ListAndRoster(t *testing.T) {
	f := newFixture(t, eventID)

	fill(t, f, "A", 5)
	fill(t, f, "B", 5)
	fill(t, f, "C", 4)

	list, err := f.svc.List(context.Background(), eventID)
	require.NoError(t, err)
	assert.Equal(t, model.PhaseOne, list.Phase)
	require.Len(t, list.Tables, 3)
	assert.False(t, list.Tables[0].Open)
	assert.True(t, list.Tables[2].Open)

	roster, err := f.svc.Roster(context.Background(), "A")
	require.NoError(t, err)
	require.Len(t, roster, 5)

	require.NoError(t, f.svc.MarkAttended(context.Background(), roster[0].BookingID, dto.MarkAttendedRequest{Attended: true}))

	roster, err = f.svc.Roster(context.Background(), "A")
	require.NoError(t, err)
	assert.True(t, roster[0].Attended)

	err = f.svc.MarkAttended(context.Background(), "missing", dto.MarkAttendedRequest{Attended: true})
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))

	_, err = f.svc.Roster(context.Background(), "Z")
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))

	mine, err := f.svc.ListForAttendee(context.Background(), attendee(t, "A0@uni.it"), eventID, constant.Empty)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "A", mine[0].Name)
}

func TestRoundTableService_Create(t *testing.T) {
	f := newFixture(t, eventID)
	organizer := identity.Actor{Subject: "org", Role: constant.RoleOrganizer}

	res, err := f.svc.Create(context.Background(), organizer, eventID, dto.CreateRoundTableRequest{Name: "D", Room: "R1"})
	require.NoError(t, err)
	assert.Equal(t, 10, res.Capacity)
	assert.NotEmpty(t, res.ID)

	res, err = f.svc.Create(context.Background(), organizer, eventID, dto.CreateRoundTableRequest{Name: "E", Capacity: 4})
	require.NoError(t, err)
	assert.Equal(t, 4, res.Capacity)

	list, err := f.svc.List(context.Background(), eventID)
	require.NoError(t, err)
	assert.Len(t, list.Tables, 5)
}
