package dto

import (
	"careerday/internal/domains/company/model"
	"careerday/shared"
	gDto "careerday/shared/dto"
	gModel "careerday/shared/model"
	"careerday/shared/timezone"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

type CreateCompanyRequest struct {
	Name        string `json:"name"        validate:"required,max=200"`
	Description string `json:"description" validate:"omitempty,max=2000"`
}

func (c *CreateCompanyRequest) ToModel(user string) model.Company {
	return model.Company{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Slug:        slug.Make(c.Name),
		Description: c.Description,
		Metadata:    gModel.NewMetadata(timezone.Now(), user),
	}
}

type UpdateCompanyRequest struct {
	Name        string `db:"name"        json:"name"        validate:"omitempty,max=200"`
	Slug        string `db:"slug"        json:"-"`
	Description string `db:"description" json:"description" validate:"omitempty,max=2000"`
}

// Normalize derives the slug whenever the name changes.
func (u *UpdateCompanyRequest) Normalize() {
	if u.Name != "" {
		u.Slug = slug.Make(u.Name)
	}
}

type CompanyResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	gDto.Metadata
}

func (r *CompanyResponse) FromModel(model model.Company) {
	r.ID = model.ID
	r.Name = model.Name
	r.Slug = model.Slug
	r.Description = model.Description
	r.Metadata = gDto.NewMetadata(model.Metadata)
}

type GetCompaniesResponse struct {
	Companies []CompanyResponse `json:"companies"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetCompaniesResponse) FromModels(models []model.Company, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Companies = make([]CompanyResponse, len(models))
	for i, mod := range models {
		r.Companies[i].FromModel(mod)
	}
}

type EventCompanyResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func FromEventModels(models []model.Company) []EventCompanyResponse {
	res := make([]EventCompanyResponse, len(models))
	for i, mod := range models {
		res[i] = EventCompanyResponse{ID: mod.ID, Name: mod.Name, Slug: mod.Slug}
	}

	return res
}
