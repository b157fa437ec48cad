package model

import "careerday/shared/model"

const (
	TableName  = "companies"
	EntityName = "company"

	FieldID          = "id"
	FieldName        = "name"
	FieldSlug        = "slug"
	FieldDescription = "description"

	EventCompanyTableName = "event_companies"
	FieldEventID          = "event_id"
	FieldCompanyID        = "company_id"
)

type Company struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Slug        string `db:"slug"`
	Description string `db:"description"`
	model.Metadata
}
