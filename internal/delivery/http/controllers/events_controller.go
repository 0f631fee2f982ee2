package controllers

import (
	"log/slog"
	"net/http"

	h "campusnavigator/internal/delivery/http"
	"campusnavigator/internal/domain"
	"campusnavigator/internal/views"
)

// EventsController serves the event collection and detail views.
type EventsController struct {
	Logger *slog.Logger
	View   *views.Events
}

// NewEventsController returns an EventsController.
func NewEventsController(logger *slog.Logger, view *views.Events) *EventsController {
	return &EventsController{Logger: logger, View: view}
}

// List godoc
// @Summary List events
// @Description status=upcoming (or upcoming=true) selects upcoming events; category, date, and search filter further. An empty backend yields the flagged sample set.
// @Tags events
// @Produce json
// @Security CookieAuth
// @Param status query string false "upcoming, ongoing, completed, or all"
// @Param category query string false "Event category"
// @Param date query string false "Date (YYYY-MM-DD)"
// @Param search query string false "Free-text search"
// @Success 200 {object} http.APIResponse "data contains the event list view"
// @Router /views/events [get]
func (c *EventsController) List(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	list, err := c.View.List(r.Context(), sess, eventQuery(r.URL.Query()))
	if err != nil {
		h.WriteViewError(w, c.Logger, r, err, "Unable to load events")
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, list)
}

// Get godoc
// @Summary Get an event
// @Description Placeholder ids resolve locally without a network call.
// @Tags events
// @Produce json
// @Security CookieAuth
// @Param id path string true "Event id"
// @Success 200 {object} http.APIResponse "data contains the event detail view"
// @Failure 404 {object} http.APIResponse "error.code: not_found"
// @Router /views/events/{id} [get]
func (c *EventsController) Get(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	detail, err := c.View.Get(r.Context(), sess, r.PathValue("id"))
	if err != nil {
		h.WriteViewError(w, c.Logger, r, err, "Event not found")
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, detail)
}

// Create godoc
// @Summary Create an event
// @Tags events
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param event body domain.Event true "Event"
// @Success 201 {object} http.APIResponse "data contains the refreshed event list"
// @Router /views/events [post]
func (c *EventsController) Create(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	var event domain.Event
	if !h.DecodeAndValidate(w, r, &event) {
		return
	}
	list, err := c.View.Create(r.Context(), sess, event)
	if err != nil {
		h.WriteViewError(w, c.Logger, r, err, "Failed to create event")
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, list)
}

// Update godoc
// @Summary Update an event
// @Tags events
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param id path string true "Event id"
// @Param event body domain.Event true "Event"
// @Success 200 {object} http.APIResponse "data contains the refreshed event detail"
// @Router /views/events/{id} [put]
func (c *EventsController) Update(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	var event domain.Event
	if !h.DecodeAndValidate(w, r, &event) {
		return
	}
	detail, err := c.View.Update(r.Context(), sess, r.PathValue("id"), event)
	if err != nil {
		h.WriteViewError(w, c.Logger, r, err, "Failed to update event")
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, detail)
}

// Delete godoc
// @Summary Delete an event
// @Description Requires confirm=true; the UI asks for confirmation before calling.
// @Tags events
// @Produce json
// @Security CookieAuth
// @Param id path string true "Event id"
// @Param confirm query string true "Must be true"
// @Success 200 {object} http.APIResponse "data contains the refreshed event list"
// @Router /views/events/{id} [delete]
func (c *EventsController) Delete(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	if !requireConfirm(w, r) {
		return
	}
	list, err := c.View.Delete(r.Context(), sess, r.PathValue("id"))
	if err != nil {
		h.WriteViewError(w, c.Logger, r, err, "Failed to delete event")
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, list)
}

// Register godoc
// @Summary Register the current user for an event
// @Description After a successful registration the event is refetched, so the response's attendee roster includes the user.
// @Tags events
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param id path string true "Event id"
// @Param form body domain.RegistrationForm true "Registration form"
// @Success 200 {object} http.APIResponse "data contains the refreshed event detail"
// @Failure 400 {object} http.APIResponse "error.code: bad_request (sample events are read-only)"
// @Router /views/events/{id}/register [post]
func (c *EventsController) Register(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	var form domain.RegistrationForm
	if !h.DecodeAndValidate(w, r, &form) {
		return
	}
	detail, err := c.View.Register(r.Context(), sess, r.PathValue("id"), form)
	if err != nil {
		h.WriteViewError(w, c.Logger, r, err, "Unable to register right now")
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, detail)
}
