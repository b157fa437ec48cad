package shared_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"careerday/shared"
	cacheMocks "careerday/shared/cache/mocks"
	"careerday/shared/constant"
	"careerday/shared/dto"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestConvertStringToBool(t *testing.T) {
	assert.Nil(t, shared.ConvertStringToBool(""))
	assert.Nil(t, shared.ConvertStringToBool("maybe"))
	assert.True(t, *shared.ConvertStringToBool("true"))
	assert.False(t, *shared.ConvertStringToBool("0"))
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "zero total", total: 0, limit: 10, expected: 1},
		{name: "zero limit", total: 100, limit: 0, expected: 1},
		{name: "exact division", total: 100, limit: 10, expected: 10},
		{name: "remainder", total: 101, limit: 10, expected: 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestTransformFields(t *testing.T) {
	type update struct {
		Name    string `db:"name"`
		Slug    string `db:"slug"`
		Skipped string `db:"-"`
		NoTag   string
	}

	result := shared.TransformFields(update{Name: "Acme", Skipped: "x", NoTag: "y"}, "organizer@example.com")

	assert.Equal(t, "Acme", result["name"])
	assert.NotContains(t, result, "slug")
	assert.NotContains(t, result, "-")
	assert.Equal(t, "organizer@example.com", result[constant.FieldModifiedBy])
	assert.IsType(t, time.Time{}, result[constant.FieldModifiedAt])
}

func TestFilterEq(t *testing.T) {
	group := shared.FilterEq("bookings", "event_id", "e1", "attendee", "a@example.com")

	where, args := group.GetWhereClause()

	assert.Equal(t, "(bookings.event_id = :bookings_event_id AND bookings.attendee = :bookings_attendee)", where)
	assert.Equal(t, "e1", args["bookings_event_id"])
	assert.Equal(t, "a@example.com", args["bookings_attendee"])
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID("123", "id", "companies")

	filter, ok := group.Filters[0].(dto.Filter)
	assert.True(t, ok)
	assert.Equal(t, "123", filter.Value)
	assert.Equal(t, dto.FilterOperatorEq, filter.Operator)
	assert.Equal(t, "companies", filter.Table)
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "company:get:42", shared.BuildCacheKey("company:get", "42"))
	assert.Equal(t, "limiter", shared.BuildCacheKey("limiter"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10}
	first := shared.FilterEq("companies", "name", "acme", "slug", "acme")
	second := shared.FilterEq("companies", "name", "acme", "slug", "acme")
	other := shared.FilterEq("companies", "name", "globex")

	keyA := shared.BuildCacheKeyWithQuery("company:gets", params, first)
	keyB := shared.BuildCacheKeyWithQuery("company:gets", params, second)
	keyC := shared.BuildCacheKeyWithQuery("company:gets", params, other)

	assert.Equal(t, keyA, keyB)
	assert.NotEqual(t, keyA, keyC)
	assert.True(t, strings.HasPrefix(keyA, "company:gets:"))
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().Clear(gomock.Any(), "company:gets:*").Return(nil)
	shared.InvalidateCaches(context.Background(), mockCache, "company:gets")

	mockCache.EXPECT().Clear(gomock.Any(), "event:companies:*").Return(errors.New("redis down"))
	shared.InvalidateCaches(context.Background(), mockCache, "event:companies")
}
