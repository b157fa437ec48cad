package company

import (
	"net/http"

	"careerday/infras/otel"
	"careerday/internal/domains/company/model"
	"careerday/internal/domains/company/model/dto"
	"careerday/internal/domains/company/service"
	"careerday/shared/constant"
	gDto "careerday/shared/dto"
	"careerday/shared/validator"
	"careerday/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Company
	otel    otel.Otel
}

func New(service service.Company, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/companies", handler.CreateCompany)
	router.Get("/companies", handler.GetCompanies)
	router.Get("/companies/{id}", handler.GetCompanyByID)
	router.Patch("/companies/{id}", handler.UpdateCompany)
	router.Delete("/companies/{id}", handler.DeleteCompany)
	router.Get("/events/{eventID}/companies", handler.GetEventCompanies)
}

// CreateCompany handles the creation of a new company.
// @Summary Create a new company
// @Tags Company
// @Accept json
// @Produce json
// @Param request body dto.CreateCompanyRequest true "Create Company Request"
// @Success 201 {object} response.Data[dto.CompanyResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/companies [post]
// @Security BearerAuth
func (handler *Handler) CreateCompany(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCompany")
	defer scope.End()

	req := dto.CreateCompanyRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create company")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Company created successfully by user " + user)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetCompanies retrieves all companies based on query parameters.
// @Summary Get all companies
// @Tags Company
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Success 200 {object} response.Data[dto.GetCompaniesResponse]
// @Router /v1/companies [get]
// @Security BearerAuth
func (handler *Handler) GetCompanies(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCompanies")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldName,
				Operator: gDto.FilterOperatorLike,
				Value:    r.URL.Query().Get(model.FieldName),
				Table:    model.TableName,
			},
		},
	}

	companies, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get companies")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, companies)
}

func (handler *Handler) GetCompanyByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCompanyByID")
	defer scope.End()

	company, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get company")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, company)
}

func (handler *Handler) UpdateCompany(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCompany")
	defer scope.End()

	req := dto.UpdateCompanyRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update company")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Company updated successfully")
}

func (handler *Handler) DeleteCompany(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteCompany")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete company")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Company deleted successfully")
}

// GetEventCompanies lists the companies taking part in an event.
func (handler *Handler) GetEventCompanies(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEventCompanies")
	defer scope.End()

	companies, err := handler.service.ListByEvent(ctx, chi.URLParam(r, constant.RequestParamEventID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get event companies")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, companies)
}
