package controllers

import (
	"log/slog"
	"net/http"

	h "campusnavigator/internal/delivery/http"
	"campusnavigator/internal/domain"
	"campusnavigator/internal/views"
)

// FacultyController serves the faculty directory and detail views.
type FacultyController struct {
	Logger *slog.Logger
	View   *views.Faculty
}

// NewFacultyController returns a FacultyController.
func NewFacultyController(logger *slog.Logger, view *views.Faculty) *FacultyController {
	return &FacultyController{Logger: logger, View: view}
}

// List godoc
// @Summary List faculty profiles
// @Tags faculty
// @Produce json
// @Security CookieAuth
// @Param department query string false "Department"
// @Param available query string false "true to show only available faculty"
// @Param search query string false "Free-text search"
// @Success 200 {object} http.APIResponse "data contains the faculty list view"
// @Router /views/faculty [get]
func (c *FacultyController) List(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	list, err := c.View.List(r.Context(), sess, facultyQuery(r.URL.Query()))
	if err != nil {
		h.WriteViewError(w, c.Logger, r, err, "Unable to load faculty directory")
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, list)
}

// Get godoc
// @Summary Get a faculty profile
// @Tags faculty
// @Produce json
// @Security CookieAuth
// @Param id path string true "Faculty id"
// @Success 200 {object} http.APIResponse "data contains the faculty detail view"
// @Failure 404 {object} http.APIResponse "error.code: not_found"
// @Router /views/faculty/{id} [get]
func (c *FacultyController) Get(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	detail, err := c.View.Get(r.Context(), sess, r.PathValue("id"))
	if err != nil {
		h.WriteViewError(w, c.Logger, r, err, "Unable to load faculty details")
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, detail)
}

// Create godoc
// @Summary Create a faculty profile
// @Tags faculty
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param profile body domain.FacultyProfile true "Profile"
// @Success 201 {object} http.APIResponse "data contains the refreshed directory"
// @Router /views/faculty [post]
func (c *FacultyController) Create(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	var profile domain.FacultyProfile
	if !h.DecodeAndValidate(w, r, &profile) {
		return
	}
	list, err := c.View.Create(r.Context(), sess, profile)
	if err != nil {
		h.WriteViewError(w, c.Logger, r, err, "Failed to create profile")
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, list)
}

// Update godoc
// @Summary Update a faculty profile
// @Tags faculty
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param id path string true "Faculty id"
// @Param profile body domain.FacultyProfile true "Profile"
// @Success 200 {object} http.APIResponse "data contains the refreshed profile"
// @Router /views/faculty/{id} [put]
func (c *FacultyController) Update(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	var profile domain.FacultyProfile
	if !h.DecodeAndValidate(w, r, &profile) {
		return
	}
	detail, err := c.View.Update(r.Context(), sess, r.PathValue("id"), profile)
	if err != nil {
		h.WriteViewError(w, c.Logger, r, err, "Failed to update profile")
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, detail)
}

// Availability godoc
// @Summary Update a faculty member's availability status
// @Tags faculty
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param id path string true "Faculty id"
// @Param update body domain.FacultyAvailabilityUpdate true "Availability"
// @Success 200 {object} http.APIResponse "data contains the refreshed profile"
// @Router /views/faculty/{id}/availability [put]
func (c *FacultyController) Availability(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	var u domain.FacultyAvailabilityUpdate
	if !h.DecodeAndValidate(w, r, &u) {
		return
	}
	detail, err := c.View.UpdateAvailability(r.Context(), sess, r.PathValue("id"), u)
	if err != nil {
		h.WriteViewError(w, c.Logger, r, err, "Failed to update availability")
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, detail)
}
