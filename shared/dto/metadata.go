package dto

import (
	"careerday/shared/constant"
	"careerday/shared/model"
	"careerday/shared/timezone"
)

// Metadata is the audit trail of a record as rendered in responses.
type Metadata struct {
	CreatedAt  string `json:"created_at"`
	ModifiedAt string `json:"modified_at"`
	CreatedBy  string `json:"created_by,omitempty"`
	ModifiedBy string `json:"modified_by,omitempty"`
}

func NewMetadata(mod model.Metadata) Metadata {
	return Metadata{
		CreatedAt:  timezone.Format(mod.CreatedAt, constant.DateFormat),
		ModifiedAt: timezone.Format(mod.ModifiedAt, constant.DateFormat),
		CreatedBy:  mod.CreatedBy,
		ModifiedBy: mod.ModifiedBy,
	}
}
