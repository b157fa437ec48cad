package dto_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"careerday/shared/constant"
	"careerday/shared/dto"
	"careerday/shared/model"
	"careerday/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func TestNewMetadata(t *testing.T) {
	createdAt := time.Date(2025, 3, 12, 8, 0, 0, 0, time.UTC)

	metadata := dto.NewMetadata(model.NewMetadata(createdAt, "organizer@example.com"))

	assert.Equal(t, timezone.Format(createdAt, constant.DateFormat), metadata.CreatedAt)
	assert.Equal(t, metadata.CreatedAt, metadata.ModifiedAt)
	assert.Equal(t, "organizer@example.com", metadata.CreatedBy)
	assert.Equal(t, "organizer@example.com", metadata.ModifiedBy)
}

func TestQueryParamsFromRequest(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		paginate bool
		expected dto.QueryParams
	}{
		{
			name:     "all parameters",
			query:    "page=2&limit=20&sort_by=name&sort_dir=asc",
			expected: dto.QueryParams{Page: 2, Limit: 20, SortBy: "name", SortDir: dto.SortDirAsc},
		},
		{
			name:     "defaults when paginating",
			paginate: true,
			expected: dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:     "nothing without pagination",
			expected: dto.QueryParams{},
		},
		{
			name:     "invalid numbers fall back",
			query:    "page=x&limit=-10",
			paginate: true,
			expected: dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:     "limit is capped",
			query:    "limit=5000",
			expected: dto.QueryParams{Limit: constant.MaxValueLimit},
		},
		{
			name:     "unknown sort direction is ignored",
			query:    "sort_by=event_date&sort_dir=sideways",
			expected: dto.QueryParams{SortBy: "event_date"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/v1/companies?"+tt.query, nil)

			params := dto.QueryParams{}
			params.FromRequest(req, tt.paginate)

			assert.Equal(t, tt.expected, params)
		})
	}
}

func TestQueryParamsPagination(t *testing.T) {
	args := map[string]any{}

	assert.Empty(t, dto.QueryParams{}.Pagination(args))
	assert.Empty(t, args)

	assert.Equal(t, "LIMIT :limit", dto.QueryParams{Page: 1, Limit: 10}.Pagination(args))
	assert.Equal(t, 10, args["limit"])
	assert.NotContains(t, args, "offset")

	assert.Equal(t, "LIMIT :limit OFFSET :offset", dto.QueryParams{Page: 3, Limit: 10}.Pagination(args))
	assert.Equal(t, 20, args["offset"])
}

func TestFilterWhereClause(t *testing.T) {
	tests := []struct {
		name   string
		filter dto.Filter
		where  string
		args   map[string]any
	}{
		{
			name:   "equality is table qualified",
			filter: dto.Filter{Field: "slot", Value: "09:30", Operator: dto.FilterOperatorEq, Table: "bookings"},
			where:  "bookings.slot = :bookings_slot",
			args:   map[string]any{"bookings_slot": "09:30"},
		},
		{
			name:   "like is case insensitive",
			filter: dto.Filter{Field: "name", Value: "acme", Operator: dto.FilterOperatorLike},
			where:  "LOWER(name) LIKE LOWER(:name)",
			args:   map[string]any{"name": "%acme%"},
		},
		{
			name:   "in expands slices",
			filter: dto.Filter{Field: "status", Value: []string{"pending", "active"}, Operator: dto.FilterOperatorIn},
			where:  "status IN (:status_0, :status_1)",
			args:   map[string]any{"status_0": "pending", "status_1": "active"},
		},
		{
			name:   "empty in matches nothing",
			filter: dto.Filter{Field: "status", Value: []string{}, Operator: dto.FilterOperatorIn},
			where:  "FALSE",
			args:   map[string]any{},
		},
		{
			name:   "null check",
			filter: dto.Filter{Field: "cancelled_at", Operator: dto.FilterIsNull, Table: "bookings"},
			where:  "bookings.cancelled_at IS NULL",
			args:   map[string]any{},
		},
		{
			name:   "unknown operator renders nothing",
			filter: dto.Filter{Field: "id", Value: "1", Operator: "drop"},
			where:  "",
			args:   map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.where, where)
			assert.Equal(t, tt.args, args)
		})
	}
}

func TestFilterGroupNests(t *testing.T) {
	group := dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "event_id", Value: "e1", Operator: dto.FilterOperatorEq, Table: "bookings"},
			dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Filter{Field: "status", Operator: dto.FilterIsNull, Table: "interview_sessions"},
					dto.Filter{Field: "status", Value: "active", Operator: dto.FilterOperatorEq, Table: "interview_sessions"},
				},
			},
			"ignored",
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(bookings.event_id = :bookings_event_id AND (interview_sessions.status IS NULL OR interview_sessions.status = :interview_sessions_status))", where)
	assert.Equal(t, map[string]any{"bookings_event_id": "e1", "interview_sessions_status": "active"}, args)
}

func TestEmptyFilterGroup(t *testing.T) {
	where, args := (&dto.FilterGroup{}).GetWhereClause()

	assert.Empty(t, where)
	assert.Empty(t, args)
}
