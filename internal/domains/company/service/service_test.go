package service_test

import (
	"context"
	"errors"
	"testing"

	"careerday/config"
	"careerday/infras/otel/mocks"
	companyMocks "careerday/internal/domains/company/mocks"
	"careerday/internal/domains/company/model"
	"careerday/internal/domains/company/model/dto"
	"careerday/internal/domains/company/service"
	cacheMocks "careerday/shared/cache/mocks"
	gDto "careerday/shared/dto"
	"careerday/shared/failure"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T) (service.Company, *companyMocks.MockCompany, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := companyMocks.NewMockCompany(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 300

	return service.New(mockRepo, cfg, mockCache, mocks.NewOtel()), mockRepo, mockCache
}

func TestCompanyService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateCompanyRequest
		setupMock func(repo *companyMocks.MockCompany)
		wantCode  int
		wantSlug  string
	}{
		{
			name: "creates with derived slug",
			req:  dto.CreateCompanyRequest{Name: "Acme Robotics"},
			setupMock: func(repo *companyMocks.MockCompany) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c model.Company) error {
						assert.NotEmpty(t, c.ID)
						assert.Equal(t, "acme-robotics", c.Slug)

						return nil
					})
			},
			wantSlug: "acme-robotics",
		},
		{
			name: "duplicate slug",
			req:  dto.CreateCompanyRequest{Name: "Acme"},
			setupMock: func(repo *companyMocks.MockCompany) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantCode: 409,
		},
		{
			name: "unique violation on insert",
			req:  dto.CreateCompanyRequest{Name: "Acme"},
			setupMock: func(repo *companyMocks.MockCompany) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(&pq.Error{Code: "23505"})
			},
			wantCode: 409,
		},
		{
			name:      "name without letters",
			req:       dto.CreateCompanyRequest{Name: "!!!"},
			setupMock: func(_ *companyMocks.MockCompany) {},
			wantCode:  400,
		},
		{
			name: "repository failure",
			req:  dto.CreateCompanyRequest{Name: "Acme"},
			setupMock: func(repo *companyMocks.MockCompany) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, errors.New("db down"))
			},
			wantCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newService(t)
			tt.setupMock(repo)

			res, err := svc.Create(context.Background(), tt.req)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantSlug, res.Slug)
		})
	}
}

func TestCompanyService_Get(t *testing.T) {
	t.Run("cache hit", func(t *testing.T) {
		svc, _, cache := newService(t)

		cache.EXPECT().Get(gomock.Any(), "company:get:c1", gomock.Any()).Return(nil)

		_, err := svc.Get(context.Background(), "c1")
		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		svc, repo, cache := newService(t)

		cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Company{}, nil)

		_, err := svc.Get(context.Background(), "c1")
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("from db", func(t *testing.T) {
		svc, repo, cache := newService(t)

		cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Company{ID: "c1", Name: "Acme", Slug: "acme"}, nil)

		res, err := svc.Get(context.Background(), "c1")
		require.NoError(t, err)
		assert.Equal(t, "Acme", res.Name)
	})
}

func TestCompanyService_GetAll(t *testing.T) {
	svc, repo, cache := newService(t)

	cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(2)
	repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(3, nil)
	repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Company{{ID: "a"}, {ID: "b"}}, nil)

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 2}, gDto.FilterGroup{})
	require.NoError(t, err)
	assert.Equal(t, 3, res.TotalData)
	assert.Equal(t, 2, res.TotalPage)
	assert.Len(t, res.Companies, 2)
}

func TestCompanyService_Update(t *testing.T) {
	t.Run("empty request", func(t *testing.T) {
		svc, _, _ := newService(t)

		err := svc.Update(context.Background(), dto.UpdateCompanyRequest{}, "c1")
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("renames and reslugs", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, "new-name", fields[model.FieldSlug])
				assert.Equal(t, "New Name", fields[model.FieldName])

				return nil
			})

		err := svc.Update(context.Background(), dto.UpdateCompanyRequest{Name: "New Name"}, "c1")
		assert.NoError(t, err)
	})

	t.Run("missing company", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.Update(context.Background(), dto.UpdateCompanyRequest{Description: "x"}, "c1")
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestCompanyService_Delete(t *testing.T) {
	t.Run("still referenced", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(&pq.Error{Code: "23503"})

		err := svc.Delete(context.Background(), "c1")
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("deleted", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		assert.NoError(t, svc.Delete(context.Background(), "c1"))
	})
}

func TestCompanyService_ListByEvent(t *testing.T) {
	svc, repo, cache := newService(t)

	cache.EXPECT().Get(gomock.Any(), "company:event:e1", gomock.Any()).Return(errors.New("cache miss"))
	repo.EXPECT().ListByEvent(gomock.Any(), "e1").Return([]model.Company{{ID: "c1", Name: "Acme", Slug: "acme"}}, nil)

	res, err := svc.ListByEvent(context.Background(), "e1")
	require.NoError(t, err)
	assert.Equal(t, []dto.EventCompanyResponse{{ID: "c1", Name: "Acme", Slug: "acme"}}, res)
}
