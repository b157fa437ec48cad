package event

import (
	"net/http"

	"careerday/infras/otel"
	"careerday/internal/domains/event/model/dto"
	"careerday/internal/domains/event/service"
	"careerday/shared/constant"
	gDto "careerday/shared/dto"
	"careerday/shared/validator"
	"careerday/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Event
	otel    otel.Otel
}

func New(service service.Event, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/events", handler.CreateEvent)
	router.Get("/events", handler.GetEvents)
	router.Get("/events/active", handler.GetActiveEvent)
	router.Get("/events/{eventID}", handler.GetEventByID)
	router.Post("/events/{eventID}/activate", handler.ActivateEvent)
	router.Post("/events/{eventID}/companies", handler.AttachCompany)
	router.Delete("/events/{eventID}/companies/{companyID}", handler.DetachCompany)
}

// CreateEvent handles the creation of a new event.
// @Summary Create a new event
// @Tags Event
// @Accept json
// @Produce json
// @Param request body dto.CreateEventRequest true "Create Event Request"
// @Success 201 {object} response.Data[dto.EventResponse]
// @Failure 400 {object} response.Error
// @Router /v1/events [post]
// @Security BearerAuth
func (handler *Handler) CreateEvent(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateEvent")
	defer scope.End()

	req := dto.CreateEventRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create event")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}

func (handler *Handler) GetEvents(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEvents")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	events, err := handler.service.GetAll(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get events")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, events)
}

// GetActiveEvent returns the one event open for bookings.
// @Summary Get the active event
// @Tags Event
// @Produce json
// @Success 200 {object} response.Data[dto.EventResponse]
// @Failure 404 {object} response.Error
// @Router /v1/events/active [get]
func (handler *Handler) GetActiveEvent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetActiveEvent")
	defer scope.End()

	event, err := handler.service.Active(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get active event")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, event)
}

func (handler *Handler) GetEventByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEventByID")
	defer scope.End()

	event, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamEventID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get event")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, event)
}

// ActivateEvent opens an event for bookings and closes every other one.
func (handler *Handler) ActivateEvent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ActivateEvent")
	defer scope.End()

	if err := handler.service.Activate(ctx, chi.URLParam(r, constant.RequestParamEventID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to activate event")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Event activated successfully")
}

func (handler *Handler) AttachCompany(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AttachCompany")
	defer scope.End()

	req := dto.AttachCompanyRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.AttachCompany(ctx, chi.URLParam(r, constant.RequestParamEventID), req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to attach company")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Company attached successfully")
}

func (handler *Handler) DetachCompany(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DetachCompany")
	defer scope.End()

	eventID := chi.URLParam(r, constant.RequestParamEventID)
	companyID := chi.URLParam(r, constant.RequestParamCompanyID)

	if err := handler.service.DetachCompany(ctx, eventID, companyID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to detach company")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Company detached successfully")
}
