package schedule

import (
	"net/http"

	"careerday/infras/otel"
	"careerday/internal/schedule"
	"careerday/shared/constant"
	"careerday/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type SlotsResponse struct {
	StepMinutes int      `json:"step_minutes"`
	Ranges      []string `json:"ranges"`
	Slots       []string `json:"slots"`
}

type Handler struct {
	calendar *schedule.Calendar
	otel     otel.Otel
}

func New(calendar *schedule.Calendar, otel otel.Otel) Handler {
	return Handler{
		calendar: calendar,
		otel:     otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/slots", handler.Slots)
}

// Slots returns the bookable slot start times of the event day.
// @Summary List calendar slots
// @Tags Schedule
// @Produce json
// @Success 200 {object} response.Data[SlotsResponse]
// @Router /v1/slots [get]
func (handler *Handler) Slots(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Slots")
	defer scope.End()

	ranges := handler.calendar.Ranges()

	res := SlotsResponse{
		StepMinutes: int(handler.calendar.Step().Minutes()),
		Ranges:      make([]string, len(ranges)),
		Slots:       handler.calendar.Slots(),
	}

	for i, r := range ranges {
		res.Ranges[i] = r.String()
	}

	response.WithJSON(writer, http.StatusOK, res)
}
