package controllers

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"campusnavigator/internal/delivery/http/middleware"
	"campusnavigator/internal/session"
)

// Controllers bundles every handler group the router mounts.
type Controllers struct {
	Auth      *AuthController
	Rooms     *RoomsController
	Events    *EventsController
	Faculty   *FacultyController
	Resources *ResourcesController
	Dashboard *DashboardController
	Streams   *StreamsController
}

// NewRouter initializes the HTTP router with all application routes.
// Auth entry points are public; everything under /views and /streams
// requires a resolved session.
func NewRouter(c Controllers, sessions *session.Manager, logger *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireSession(sessions, logger)

	// Auth
	mux.HandleFunc("POST /auth/login", c.Auth.Login)
	mux.HandleFunc("POST /auth/register", c.Auth.Register)
	mux.HandleFunc("POST /auth/google", c.Auth.Google)
	mux.HandleFunc("GET /auth/me", auth(c.Auth.Me))
	mux.HandleFunc("POST /auth/logout", auth(c.Auth.Logout))

	// Rooms
	mux.HandleFunc("GET /views/rooms", auth(c.Rooms.List))
	mux.HandleFunc("POST /views/rooms", auth(c.Rooms.Create))
	mux.HandleFunc("GET /views/rooms/{id}", auth(c.Rooms.Get))
	mux.HandleFunc("PUT /views/rooms/{id}", auth(c.Rooms.Update))
	mux.HandleFunc("DELETE /views/rooms/{id}", auth(c.Rooms.Delete))
	mux.HandleFunc("PUT /views/rooms/{id}/availability", auth(c.Rooms.Availability))
	mux.HandleFunc("PUT /views/rooms/{id}/schedule", auth(c.Rooms.Schedule))
	mux.HandleFunc("POST /views/rooms/{id}/book", auth(c.Rooms.Book))
	mux.HandleFunc("GET /views/rooms/{id}/bookings", auth(c.Rooms.Bookings))

	// Events
	mux.HandleFunc("GET /views/events", auth(c.Events.List))
	mux.HandleFunc("POST /views/events", auth(c.Events.Create))
	mux.HandleFunc("GET /views/events/{id}", auth(c.Events.Get))
	mux.HandleFunc("PUT /views/events/{id}", auth(c.Events.Update))
	mux.HandleFunc("DELETE /views/events/{id}", auth(c.Events.Delete))
	mux.HandleFunc("POST /views/events/{id}/register", auth(c.Events.Register))

	// Faculty
	mux.HandleFunc("GET /views/faculty", auth(c.Faculty.List))
	mux.HandleFunc("POST /views/faculty", auth(c.Faculty.Create))
	mux.HandleFunc("GET /views/faculty/{id}", auth(c.Faculty.Get))
	mux.HandleFunc("PUT /views/faculty/{id}", auth(c.Faculty.Update))
	mux.HandleFunc("PUT /views/faculty/{id}/availability", auth(c.Faculty.Availability))

	// Resources
	mux.HandleFunc("GET /views/resources", auth(c.Resources.List))
	mux.HandleFunc("POST /views/resources", auth(c.Resources.Create))
	mux.HandleFunc("GET /views/resources/{id}", auth(c.Resources.Get))
	mux.HandleFunc("PUT /views/resources/{id}", auth(c.Resources.Update))
	mux.HandleFunc("DELETE /views/resources/{id}", auth(c.Resources.Delete))
	mux.HandleFunc("POST /views/resources/{id}/reserve", auth(c.Resources.Reserve))
	mux.HandleFunc("PUT /views/resources/{id}/status", auth(c.Resources.Status))

	// Dashboard
	mux.HandleFunc("GET /views/dashboard", auth(c.Dashboard.Summary))

	// Live refresh
	mux.HandleFunc("GET /streams/rooms", auth(c.Streams.RoomList))
	mux.HandleFunc("GET /streams/rooms/{id}", auth(c.Streams.RoomDetail))
	mux.HandleFunc("GET /streams/events", auth(c.Streams.EventList))
	mux.HandleFunc("GET /streams/events/{id}", auth(c.Streams.EventDetail))
	mux.HandleFunc("GET /streams/faculty", auth(c.Streams.FacultyList))
	mux.HandleFunc("GET /streams/faculty/{id}", auth(c.Streams.FacultyDetail))
	mux.HandleFunc("GET /streams/resources", auth(c.Streams.ResourceList))
	mux.HandleFunc("GET /streams/resources/{id}", auth(c.Streams.ResourceDetail))
	mux.HandleFunc("GET /streams/dashboard", auth(c.Streams.DashboardSummary))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
