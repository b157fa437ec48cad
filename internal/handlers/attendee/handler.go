package attendee

import (
	"net/http"

	"careerday/infras/otel"
	"careerday/internal/domains/attendee/model/dto"
	"careerday/internal/domains/attendee/service"
	"careerday/shared/constant"
	"careerday/shared/identity"
	"careerday/shared/validator"
	"careerday/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Attendee
	otel    otel.Otel
}

func New(service service.Attendee, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/attendees/me/reference", handler.GetReference)
	router.Put("/attendees/me/reference", handler.SetReference)
}

func (handler *Handler) GetReference(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAttendeeReference")
	defer scope.End()

	res, err := handler.service.Get(ctx, identity.FromContext(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get attendee reference")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// SetReference stores the matriculation number later bookings default to.
// @Summary Set attendee reference
// @Tags Attendee
// @Accept json
// @Produce json
// @Param request body dto.SetReferenceRequest true "Reference"
// @Success 200 {object} response.Data[dto.ProfileResponse]
// @Router /v1/attendees/me/reference [put]
// @Security BearerAuth
func (handler *Handler) SetReference(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetAttendeeReference")
	defer scope.End()

	req := dto.SetReferenceRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.SetReference(ctx, identity.FromContext(ctx), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to set attendee reference")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
