package dto

import (
	"net/http"
	"strconv"
	"strings"

	"careerday/shared/constant"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty"`
	Limit   int    `json:"limit"    validate:"omitempty"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

func positive(raw string) int {
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return 0
	}

	return value
}

// FromRequest reads page, limit, sort_by and sort_dir from the query string.
// With paginate set, missing page and limit fall back to the defaults. Limit is always capped.
func (q *QueryParams) FromRequest(r *http.Request, paginate bool) {
	query := r.URL.Query()

	if page := positive(query.Get(constant.RequestParamPage)); page > 0 {
		q.Page = page
	}

	if limit := positive(query.Get(constant.RequestParamLimit)); limit > 0 {
		q.Limit = min(limit, constant.MaxValueLimit)
	}

	if sortBy := strings.TrimSpace(query.Get(constant.RequestParamSortBy)); sortBy != "" {
		q.SortBy = sortBy
	}

	switch dir := strings.ToUpper(query.Get(constant.RequestParamSortDir)); dir {
	case SortDirAsc, SortDirDesc:
		q.SortDir = dir
	}

	if paginate {
		if q.Page == 0 {
			q.Page = constant.DefaultValuePage
		}

		if q.Limit == 0 {
			q.Limit = constant.DefaultValueLimit
		}
	}
}

// Pagination renders the LIMIT/OFFSET clause and stores its named arguments in args.
func (q QueryParams) Pagination(args map[string]any) string {
	if q.Limit <= 0 {
		return ""
	}

	args["limit"] = q.Limit

	if q.Page <= 1 {
		return "LIMIT :limit"
	}

	args["offset"] = (q.Page - 1) * q.Limit

	return "LIMIT :limit OFFSET :offset"
}
