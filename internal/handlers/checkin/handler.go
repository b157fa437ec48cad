package checkin

import (
	"net/http"

	"careerday/infras/otel"
	"careerday/internal/domains/checkin/model"
	"careerday/internal/domains/checkin/model/dto"
	"careerday/internal/domains/checkin/service"
	"careerday/shared/constant"
	"careerday/shared/identity"
	"careerday/shared/validator"
	"careerday/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Checkin
	otel    otel.Otel
}

func New(service service.Checkin, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/events/{eventID}/checkins", handler.Toggle)
	router.Get("/events/{eventID}/checkins", handler.List)
	router.Get("/events/{eventID}/checkins/me", handler.Status)
}

// Toggle flips the check-in state of an attendee.
// @Summary Toggle check-in
// @Tags Checkin
// @Accept json
// @Produce json
// @Param eventID path string true "Event ID"
// @Param request body dto.ToggleRequest true "Toggle Request"
// @Success 200 {object} response.Data[dto.ToggleResponse]
// @Router /v1/events/{eventID}/checkins [post]
// @Security BearerAuth
func (handler *Handler) Toggle(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ToggleCheckin")
	defer scope.End()

	req := dto.ToggleRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Toggle(ctx, identity.FromContext(ctx), chi.URLParam(request, constant.RequestParamEventID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to toggle checkin")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

func (handler *Handler) Status(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckinStatus")
	defer scope.End()

	eventID := chi.URLParam(request, constant.RequestParamEventID)
	attendee := request.URL.Query().Get(model.FieldAttendee)

	res, err := handler.service.IsCheckedIn(ctx, identity.FromContext(ctx), eventID, attendee)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get checkin status")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

func (handler *Handler) List(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListCheckins")
	defer scope.End()

	res, err := handler.service.List(ctx, chi.URLParam(request, constant.RequestParamEventID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list checkins")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
