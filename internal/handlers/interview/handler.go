package interview

import (
	"context"
	"net/http"

	"careerday/infras/otel"
	"careerday/internal/domains/interview/model/dto"
	"careerday/internal/domains/interview/service"
	"careerday/shared/constant"
	"careerday/shared/identity"
	"careerday/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type transition func(ctx context.Context, op identity.Actor, bookingID string) (dto.TransitionResponse, error)

type Handler struct {
	service service.Interview
	otel    otel.Otel
}

func New(service service.Interview, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/interviews/{bookingID}", func(routerGroup chi.Router) {
		routerGroup.Post("/start", handler.Start)
		routerGroup.Post("/end", handler.End)
		routerGroup.Post("/cancel", handler.Cancel)
		routerGroup.Post("/no-show", handler.NoShow)
	})
	router.Get("/events/{eventID}/companies/{companyID}/interviews/current", handler.Current)
}

// Start marks the interview of a booking as running.
// @Summary Start an interview
// @Tags Interview
// @Produce json
// @Param bookingID path string true "Booking ID"
// @Success 200 {object} response.Data[dto.TransitionResponse]
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/interviews/{bookingID}/start [post]
// @Security BearerAuth
func (handler *Handler) Start(writer http.ResponseWriter, request *http.Request) {
	handler.apply(writer, request, "Start", handler.service.Start)
}

// End closes a running interview and tells the next attendee when it finished early.
// @Summary End an interview
// @Tags Interview
// @Produce json
// @Param bookingID path string true "Booking ID"
// @Success 200 {object} response.Data[dto.TransitionResponse]
// @Router /v1/interviews/{bookingID}/end [post]
// @Security BearerAuth
func (handler *Handler) End(writer http.ResponseWriter, request *http.Request) {
	handler.apply(writer, request, "End", handler.service.End)
}

func (handler *Handler) Cancel(writer http.ResponseWriter, request *http.Request) {
	handler.apply(writer, request, "Cancel", handler.service.Cancel)
}

func (handler *Handler) NoShow(writer http.ResponseWriter, request *http.Request) {
	handler.apply(writer, request, "NoShow", handler.service.NoShow)
}

func (handler *Handler) apply(writer http.ResponseWriter, request *http.Request, name string, fn transition) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Interview"+name)
	defer scope.End()

	bookingID := chi.URLParam(request, constant.RequestParamBookingID)

	res, err := fn(ctx, identity.FromContext(ctx), bookingID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to apply interview transition")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Interview is now " + string(res.Status))

	response.WithJSON(writer, http.StatusOK, res)
}

// Current returns the interview a company should run now, refreshing running-late notices.
func (handler *Handler) Current(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CurrentInterview")
	defer scope.End()

	eventID := chi.URLParam(request, constant.RequestParamEventID)
	companyID := chi.URLParam(request, constant.RequestParamCompanyID)

	res, err := handler.service.Current(ctx, identity.FromContext(ctx), eventID, companyID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get current interview")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
