package notification

import (
	"net/http"

	"careerday/infras/otel"
	"careerday/internal/domains/notification/model"
	"careerday/internal/domains/notification/service"
	"careerday/shared/constant"
	"careerday/shared/identity"
	"careerday/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Notification
	otel    otel.Otel
}

func New(service service.Notification, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/events/{eventID}/notifications", handler.Unread)
	router.Post("/notifications/{id}/read", handler.MarkRead)
}

// Unread lists the caller's unread notifications, newest first.
// @Summary Unread notifications
// @Tags Notification
// @Produce json
// @Param eventID path string true "Event ID"
// @Success 200 {object} response.Data[[]dto.NotificationResponse]
// @Router /v1/events/{eventID}/notifications [get]
// @Security BearerAuth
func (handler *Handler) Unread(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UnreadNotifications")
	defer scope.End()

	eventID := chi.URLParam(request, constant.RequestParamEventID)
	attendee := request.URL.Query().Get(model.FieldAttendee)

	res, err := handler.service.Unread(ctx, identity.FromContext(ctx), eventID, attendee)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list unread notifications")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

func (handler *Handler) MarkRead(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MarkNotificationRead")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.service.MarkRead(ctx, identity.FromContext(ctx), id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to mark notification as read")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Notification marked as read")
}
