package roundtable

import (
	"net/http"

	"careerday/infras/otel"
	"careerday/internal/domains/roundtable/model"
	"careerday/internal/domains/roundtable/model/dto"
	"careerday/internal/domains/roundtable/service"
	"careerday/shared/constant"
	"careerday/shared/identity"
	"careerday/shared/validator"
	"careerday/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.RoundTable
	otel    otel.Otel
}

func New(service service.RoundTable, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/events/{eventID}/roundtables", handler.List)
	router.Post("/events/{eventID}/roundtables", handler.Create)
	router.Get("/events/{eventID}/roundtables/mine", handler.Mine)
	router.Post("/events/{eventID}/roundtables/{tableID}/bookings", handler.Book)
	router.Get("/roundtables/{tableID}/roster", handler.Roster)
	router.Put("/roundtables/bookings/{bookingID}/attended", handler.MarkAttended)
}

// StatusCode maps a round-table outcome to the HTTP status it is rendered with.
func StatusCode(outcome model.Outcome) int {
	switch outcome {
	case model.OutcomeBooked:
		return http.StatusCreated
	case model.OutcomeTableFull, model.OutcomeAlreadyHoldsTable:
		return http.StatusConflict
	default:
		return http.StatusOK
	}
}

// Book asks for a seat at a round table.
// @Summary Book a round table seat
// @Tags RoundTable
// @Accept json
// @Produce json
// @Param eventID path string true "Event ID"
// @Param tableID path string true "Round table ID"
// @Param request body dto.BookRoundTableRequest false "Book Request"
// @Success 201 {object} response.Data[dto.BookRoundTableResult] "Seat booked"
// @Failure 409 {object} response.Data[dto.BookRoundTableResult] "Table full or another table held"
// @Router /v1/events/{eventID}/roundtables/{tableID}/bookings [post]
// @Security BearerAuth
func (handler *Handler) Book(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BookRoundTable")
	defer scope.End()

	req := dto.BookRoundTableRequest{}

	if request.ContentLength != 0 {
		if err := validator.Validate(request.Body, &req); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to validate request body")

			response.WithError(writer, err)

			return
		}
	}

	req.EventID = chi.URLParam(request, constant.RequestParamEventID)
	req.TableID = chi.URLParam(request, constant.RequestParamTableID)

	res, err := handler.service.Book(ctx, identity.FromContext(ctx), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to book round table")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Round table request finished with " + string(res.Outcome))

	response.WithJSON(writer, StatusCode(res.Outcome), res)
}

func (handler *Handler) Mine(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MyRoundTables")
	defer scope.End()

	eventID := chi.URLParam(request, constant.RequestParamEventID)
	attendee := request.URL.Query().Get(model.FieldAttendee)

	res, err := handler.service.ListForAttendee(ctx, identity.FromContext(ctx), eventID, attendee)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list attendee round tables")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// List shows every table with its seats and the current admission phase.
func (handler *Handler) List(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListRoundTables")
	defer scope.End()

	res, err := handler.service.List(ctx, chi.URLParam(request, constant.RequestParamEventID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list round tables")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

func (handler *Handler) Create(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoundTable")
	defer scope.End()

	req := dto.CreateRoundTableRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	eventID := chi.URLParam(request, constant.RequestParamEventID)

	res, err := handler.service.Create(ctx, identity.FromContext(ctx), eventID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create round table")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}

func (handler *Handler) Roster(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RoundTableRoster")
	defer scope.End()

	res, err := handler.service.Roster(ctx, chi.URLParam(request, constant.RequestParamTableID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get round table roster")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

func (handler *Handler) MarkAttended(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MarkRoundTableAttended")
	defer scope.End()

	req := dto.MarkAttendedRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.MarkAttended(ctx, chi.URLParam(request, constant.RequestParamBookingID), req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update round table attendance")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Attendance updated successfully")
}
