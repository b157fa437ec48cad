package router

import (
	"careerday/internal/handlers/attendee"
	"careerday/internal/handlers/booking"
	"careerday/internal/handlers/checkin"
	"careerday/internal/handlers/company"
	"careerday/internal/handlers/event"
	"careerday/internal/handlers/interview"
	"careerday/internal/handlers/notification"
	"careerday/internal/handlers/roundtable"
	"careerday/internal/handlers/schedule"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Schedule     schedule.Handler
	Event        event.Handler
	Company      company.Handler
	Attendee     attendee.Handler
	Booking      booking.Handler
	Interview    interview.Handler
	Notification notification.Handler
	RoundTable   roundtable.Handler
	Checkin      checkin.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Schedule.Router(routerGroup)
		r.DomainHandlers.Event.Router(routerGroup)
		r.DomainHandlers.Company.Router(routerGroup)
		r.DomainHandlers.Attendee.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Interview.Router(routerGroup)
		r.DomainHandlers.Notification.Router(routerGroup)
		r.DomainHandlers.RoundTable.Router(routerGroup)
		r.DomainHandlers.Checkin.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
