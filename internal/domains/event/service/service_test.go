package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"careerday/config"
	"careerday/infras/otel/mocks"
	txMocks "careerday/infras/postgres/mocks"
	eventMocks "careerday/internal/domains/event/mocks"
	"careerday/internal/domains/event/model"
	"careerday/internal/domains/event/model/dto"
	"careerday/internal/domains/event/service"
	cacheMocks "careerday/shared/cache/mocks"
	gDto "careerday/shared/dto"
	"careerday/shared/failure"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	svc   service.Event
	repo  *eventMocks.MockEvent
	cache *cacheMocks.MockRedisCache
	tx    *txMocks.Transactor
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		repo:  eventMocks.NewMockEvent(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
		tx:    txMocks.NewTransactor(),
	}

	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 300

	f.svc = service.New(f.repo, f.tx, cfg, f.cache, mocks.NewOtel())

	return f
}

func TestEventService_Create(t *testing.T) {
	t.Run("parses the date", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e model.Event) error {
				assert.Equal(t, time.Date(2026, time.March, 12, 0, 0, 0, 0, time.UTC), e.Date)
				assert.False(t, e.IsActive)

				return nil
			})

		res, err := f.svc.Create(context.Background(), dto.CreateEventRequest{Name: "Career Day", Date: "2026-03-12"})
		require.NoError(t, err)
		assert.Equal(t, "2026-03-12", res.Date)
	})

	t.Run("bad date", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Create(context.Background(), dto.CreateEventRequest{Name: "Career Day", Date: "12/03/2026"})
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestEventService_Active(t *testing.T) {
	t.Run("none active", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		f.repo.EXPECT().Active(gomock.Any()).Return(model.Event{}, nil)

		_, err := f.svc.Active(context.Background())
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("active from db", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		f.repo.EXPECT().Active(gomock.Any()).Return(model.Event{ID: "e1", Name: "Career Day", IsActive: true}, nil)

		res, err := f.svc.Active(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "e1", res.ID)
		assert.True(t, res.IsActive)
	})
}

func TestEventService_Activate(t *testing.T) {
	t.Run("activates inside a transaction", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().ActivateTx(gomock.Any(), gomock.Any(), "e1", gomock.Any()).Return(true, nil)

		require.NoError(t, f.svc.Activate(context.Background(), "e1"))
		assert.Equal(t, 1, f.tx.Runs)
	})

	t.Run("unknown event", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().ActivateTx(gomock.Any(), gomock.Any(), "nope", gomock.Any()).Return(false, nil)

		err := f.svc.Activate(context.Background(), "nope")
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("storage failure", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().ActivateTx(gomock.Any(), gomock.Any(), "e1", gomock.Any()).Return(false, errors.New("db down"))

		err := f.svc.Activate(context.Background(), "e1")
		assert.Equal(t, 500, failure.GetCode(err))
	})
}

func TestEventService_Companies(t *testing.T) {
	t.Run("attach unknown company", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().AttachCompany(gomock.Any(), "e1", "c1").Return(&pq.Error{Code: "23503"})

		err := f.svc.AttachCompany(context.Background(), "e1", dto.AttachCompanyRequest{CompanyID: "c1"})
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("attach", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().AttachCompany(gomock.Any(), "e1", "c1").Return(nil)

		assert.NoError(t, f.svc.AttachCompany(context.Background(), "e1", dto.AttachCompanyRequest{CompanyID: "c1"}))
	})

	t.Run("detach missing", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().DetachCompany(gomock.Any(), "e1", "c1").Return(false, nil)

		err := f.svc.DetachCompany(context.Background(), "e1", "c1")
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestEventService_GetAllDefaultsToDateOrder(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
	f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
	f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Event, error) {
			assert.Equal(t, "events.event_date", params.SortBy)
			assert.Equal(t, gDto.SortDirDesc, params.SortDir)

			return []model.Event{{ID: "e1"}}, nil
		})

	res, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
}

func TestEvent_Day(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	e := model.Event{Date: time.Date(2026, time.March, 12, 0, 0, 0, 0, time.UTC)}

	assert.Equal(t, time.Date(2026, time.March, 12, 0, 0, 0, 0, loc), e.Day(loc))
}
