package controllers

import (
	"log/slog"
	"net/http"

	h "campusnavigator/internal/delivery/http"
	"campusnavigator/internal/domain"
	"campusnavigator/internal/views"
)

// RoomsController serves the room collection and detail views.
type RoomsController struct {
	Logger *slog.Logger
	View   *views.Rooms
}

// NewRoomsController returns a RoomsController.
func NewRoomsController(logger *slog.Logger, view *views.Rooms) *RoomsController {
	return &RoomsController{Logger: logger, View: view}
}

// List godoc
// @Summary List rooms
// @Description Structured filters (type, building, available) are forwarded to the campus API; search is additionally applied to the fetched list.
// @Tags rooms
// @Produce json
// @Security CookieAuth
// @Param type query string false "Room type"
// @Param building query string false "Building name"
// @Param available query string false "true or false"
// @Param search query string false "Free-text search"
// @Success 200 {object} http.APIResponse "data contains the room list view"
// @Failure 401 {object} http.APIResponse "error.code: unauthorized"
// @Failure 502 {object} http.APIResponse "error.code: upstream_error"
// @Router /views/rooms [get]
func (c *RoomsController) List(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	list, err := c.View.List(r.Context(), sess, roomQuery(r.URL.Query()))
	if err != nil {
		h.WriteViewError(w, c.Logger, r, err, "Unable to load rooms")
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, list)
}

// Get godoc
// @Summary Get a room
// @Tags rooms
// @Produce json
// @Security CookieAuth
// @Param id path string true "Room id"
// @Success 200 {object} http.APIResponse "data contains the room detail view"
// @Failure 404 {object} http.APIResponse "error.code: not_found"
// @Router /views/rooms/{id} [get]
func (c *RoomsController) Get(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	detail, err := c.View.Get(r.Context(), sess, r.PathValue("id"))
	if err != nil {
		h.WriteViewError(w, c.Logger, r, err, "Room not found")
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, detail)
}

// Create godoc
// @Summary Create a room
// @Tags rooms
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param room body domain.Room true "Room"
// @Success 201 {object} http.APIResponse "data contains the refreshed room list"
// @Router /views/rooms [post]
func (c *RoomsController) Create(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	var room domain.Room
	if !h.DecodeAndValidate(w, r, &room) {
		return
	}
	list, err := c.View.Create(r.Context(), sess, room)
	if err != nil {
		h.WriteViewError(w, c.Logger, r, err, "Failed to create room")
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, list)
}

// Update godoc
// @Summary Update a room
// @Tags rooms
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param id path string true "Room id"
// @Param room body domain.Room true "Room"
// @Success 200 {object} http.APIResponse "data contains the refreshed room detail"
// @Router /views/rooms/{id} [put]
func (c *RoomsController) Update(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	var room domain.Room
	if !h.DecodeAndValidate(w, r, &room) {
		return
	}
	detail, err := c.View.Update(r.Context(), sess, r.PathValue("id"), room)
	if err != nil {
		h.WriteViewError(w, c.Logger, r, err, "Failed to update room")
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, detail)
}

// Delete godoc
// @Summary Delete a room
// @Description Requires confirm=true; the UI asks for confirmation before calling.
// @Tags rooms
// @Produce json
// @Security CookieAuth
// @Param id path string true "Room id"
// @Param confirm query string true "Must be true"
// @Success 200 {object} http.APIResponse "data contains the refreshed room list"
// @Router /views/rooms/{id} [delete]
func (c *RoomsController) Delete(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	if !requireConfirm(w, r) {
		return
	}
	list, err := c.View.Delete(r.Context(), sess, r.PathValue("id"))
	if err != nil {
		h.WriteViewError(w, c.Logger, r, err, "Failed to delete room")
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, list)
}

// Availability godoc
// @Summary Suggest a room availability change
// @Tags rooms
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param id path string true "Room id"
// @Param update body domain.AvailabilityUpdate true "Availability"
// @Success 200 {object} http.APIResponse "data contains the refreshed room detail"
// @Router /views/rooms/{id}/availability [put]
func (c *RoomsController) Availability(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	var u domain.AvailabilityUpdate
	if !h.DecodeAndValidate(w, r, &u) {
		return
	}
	detail, err := c.View.ToggleAvailability(r.Context(), sess, r.PathValue("id"), u)
	if err != nil {
		h.WriteViewError(w, c.Logger, r, err, "Failed to update")
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, detail)
}

// ScheduleRequest is the request body for PUT /views/rooms/{id}/schedule.
type ScheduleRequest struct {
	Schedule []domain.DaySchedule `json:"schedule"`
}

// Schedule godoc
// @Summary Replace a room's weekly schedule
// @Tags rooms
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param id path string true "Room id"
// @Param schedule body ScheduleRequest true "Weekly schedule"
// @Success 200 {object} http.APIResponse "data contains the refreshed room detail"
// @Router /views/rooms/{id}/schedule [put]
func (c *RoomsController) Schedule(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	var req ScheduleRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	detail, err := c.View.UpdateSchedule(r.Context(), sess, r.PathValue("id"), req.Schedule)
	if err != nil {
		h.WriteViewError(w, c.Logger, r, err, "Failed to update schedule")
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, detail)
}

// Book godoc
// @Summary Book a room
// @Description The booking window is validated before any API call: both times required, end strictly after start.
// @Tags rooms
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param id path string true "Room id"
// @Param booking body domain.BookingRequest true "Booking window and purpose"
// @Success 200 {object} http.APIResponse "data contains the refreshed room detail"
// @Failure 400 {object} http.APIResponse "error.code: bad_request (validation)"
// @Router /views/rooms/{id}/book [post]
func (c *RoomsController) Book(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	var req domain.BookingRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	detail, err := c.View.Book(r.Context(), sess, r.PathValue("id"), req)
	if err != nil {
		h.WriteViewError(w, c.Logger, r, err, "Failed to book room")
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, detail)
}

// Bookings godoc
// @Summary List a room's bookings
// @Tags rooms
// @Produce json
// @Security CookieAuth
// @Param id path string true "Room id"
// @Success 200 {object} http.APIResponse "data contains the booking list"
// @Router /views/rooms/{id}/bookings [get]
func (c *RoomsController) Bookings(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	bookings, err := c.View.Bookings(r.Context(), sess, r.PathValue("id"))
	if err != nil {
		h.WriteViewError(w, c.Logger, r, err, "Unable to load bookings")
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, bookings)
}
