package booking

import (
	"net/http"

	"careerday/infras/otel"
	"careerday/internal/domains/booking/model"
	"careerday/internal/domains/booking/model/dto"
	"careerday/internal/domains/booking/service"
	"careerday/shared/constant"
	"careerday/shared/identity"
	"careerday/shared/validator"
	"careerday/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/events/{eventID}/bookings", handler.Book)
	router.Post("/events/{eventID}/bookings/cancel", handler.Cancel)
	router.Get("/events/{eventID}/bookings/mine", handler.Mine)
	router.Get("/events/{eventID}/companies/{companyID}/bookings", handler.CompanyBookings)
	router.Get("/events/{eventID}/companies/{companyID}/availability", handler.Availability)
}

// StatusCode maps a booking outcome to the HTTP status it is rendered with.
func StatusCode(outcome model.Outcome) int {
	switch outcome {
	case model.OutcomeBooked:
		return http.StatusCreated
	case model.OutcomeSlotTaken, model.OutcomeConflict:
		return http.StatusConflict
	default:
		return http.StatusOK
	}
}

// Book reserves a company interview slot for the caller.
// @Summary Book an interview slot
// @Tags Booking
// @Accept json
// @Produce json
// @Param eventID path string true "Event ID"
// @Param request body dto.BookRequest true "Book Request"
// @Success 201 {object} response.Data[dto.BookResult] "Slot booked"
// @Success 200 {object} response.Data[dto.BookResult] "Slot already held by the caller"
// @Failure 409 {object} response.Data[dto.BookResult] "Slot taken or conflicting"
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/events/{eventID}/bookings [post]
// @Security BearerAuth
func (handler *Handler) Book(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Book")
	defer scope.End()

	req := dto.BookRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	req.EventID = chi.URLParam(request, constant.RequestParamEventID)

	res, err := handler.service.Book(ctx, identity.FromContext(ctx), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to book slot")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking attempt finished with " + string(res.Outcome))

	response.WithJSON(writer, StatusCode(res.Outcome), res)
}

// Cancel releases a slot the caller holds.
// @Summary Cancel an interview booking
// @Tags Booking
// @Accept json
// @Produce json
// @Param eventID path string true "Event ID"
// @Param request body dto.CancelRequest true "Cancel Request"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error "Too late to cancel"
// @Router /v1/events/{eventID}/bookings/cancel [post]
// @Security BearerAuth
func (handler *Handler) Cancel(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Cancel")
	defer scope.End()

	req := dto.CancelRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	req.EventID = chi.URLParam(request, constant.RequestParamEventID)

	if err := handler.service.Cancel(ctx, identity.FromContext(ctx), req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel booking")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Booking cancelled successfully")
}

// Mine lists the caller's live bookings of the event.
func (handler *Handler) Mine(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MyBookings")
	defer scope.End()

	eventID := chi.URLParam(request, constant.RequestParamEventID)
	attendee := request.URL.Query().Get(model.FieldAttendee)

	res, err := handler.service.ListForAttendee(ctx, identity.FromContext(ctx), eventID, attendee)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list attendee bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// CompanyBookings lists a company's bookings with their interview status.
// @Summary List company bookings
// @Tags Booking
// @Produce json
// @Param eventID path string true "Event ID"
// @Param companyID path string true "Company ID"
// @Success 200 {object} response.Data[[]dto.CompanyBookingResponse]
// @Failure 403 {object} response.Error
// @Router /v1/events/{eventID}/companies/{companyID}/bookings [get]
// @Security BearerAuth
func (handler *Handler) CompanyBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CompanyBookings")
	defer scope.End()

	eventID := chi.URLParam(request, constant.RequestParamEventID)
	companyID := chi.URLParam(request, constant.RequestParamCompanyID)

	res, err := handler.service.ListForCompany(ctx, identity.FromContext(ctx), eventID, companyID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list company bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// Availability shows every calendar slot of a company as seen by the caller.
func (handler *Handler) Availability(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Availability")
	defer scope.End()

	eventID := chi.URLParam(request, constant.RequestParamEventID)
	companyID := chi.URLParam(request, constant.RequestParamCompanyID)
	attendee := request.URL.Query().Get(model.FieldAttendee)

	res, err := handler.service.Availability(ctx, identity.FromContext(ctx), eventID, companyID, attendee)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get slot availability")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
