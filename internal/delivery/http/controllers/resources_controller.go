package controllers

import (
	"log/slog"
	"net/http"

	h "campusnavigator/internal/delivery/http"
	"campusnavigator/internal/domain"
	"campusnavigator/internal/views"
)

// ResourcesController serves the shared-resource collection and detail views.
type ResourcesController struct {
	Logger *slog.Logger
	View   *views.Resources
}

// NewResourcesController returns a ResourcesController.
func NewResourcesController(logger *slog.Logger, view *views.Resources) *ResourcesController {
	return &ResourcesController{Logger: logger, View: view}
}

// List godoc
// @Summary List resources
// @Tags resources
// @Produce json
// @Security CookieAuth
// @Param type query string false "Resource type"
// @Param status query string false "Resource status"
// @Param search query string false "Free-text search"
// @Success 200 {object} http.APIResponse "data contains the resource list view"
// @Router /views/resources [get]
func (c *ResourcesController) List(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	list, err := c.View.List(r.Context(), sess, resourceQuery(r.URL.Query()))
	if err != nil {
		h.WriteViewError(w, c.Logger, r, err, "Unable to load resources")
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, list)
}

// Get godoc
// @Summary Get a resource
// @Tags resources
// @Produce json
// @Security CookieAuth
// @Param id path string true "Resource id"
// @Success 200 {object} http.APIResponse "data contains the resource detail view"
// @Failure 404 {object} http.APIResponse "error.code: not_found"
// @Router /views/resources/{id} [get]
func (c *ResourcesController) Get(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	detail, err := c.View.Get(r.Context(), sess, r.PathValue("id"))
	if err != nil {
		h.WriteViewError(w, c.Logger, r, err, "Unable to load resource details")
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, detail)
}

// Create godoc
// @Summary Create a resource
// @Tags resources
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param resource body domain.Resource true "Resource"
// @Success 201 {object} http.APIResponse "data contains the refreshed resource list"
// @Router /views/resources [post]
func (c *ResourcesController) Create(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	var resource domain.Resource
	if !h.DecodeAndValidate(w, r, &resource) {
		return
	}
	list, err := c.View.Create(r.Context(), sess, resource)
	if err != nil {
		h.WriteViewError(w, c.Logger, r, err, "Failed to create resource")
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, list)
}

// Update godoc
// @Summary Update a resource
// @Tags resources
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param id path string true "Resource id"
// @Param resource body domain.Resource true "Resource"
// @Success 200 {object} http.APIResponse "data contains the refreshed resource detail"
// @Router /views/resources/{id} [put]
func (c *ResourcesController) Update(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	var resource domain.Resource
	if !h.DecodeAndValidate(w, r, &resource) {
		return
	}
	detail, err := c.View.Update(r.Context(), sess, r.PathValue("id"), resource)
	if err != nil {
		h.WriteViewError(w, c.Logger, r, err, "Failed to update resource")
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, detail)
}

// Delete godoc
// @Summary Delete a resource
// @Description Requires confirm=true; the UI asks for confirmation before calling.
// @Tags resources
// @Produce json
// @Security CookieAuth
// @Param id path string true "Resource id"
// @Param confirm query string true "Must be true"
// @Success 200 {object} http.APIResponse "data contains the refreshed resource list"
// @Router /views/resources/{id} [delete]
func (c *ResourcesController) Delete(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	if !requireConfirm(w, r) {
		return
	}
	list, err := c.View.Delete(r.Context(), sess, r.PathValue("id"))
	if err != nil {
		h.WriteViewError(w, c.Logger, r, err, "Failed to delete resource")
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, list)
}

// Reserve godoc
// @Summary Reserve a resource
// @Description The reservation window is validated before any API call: both times required, end strictly after start.
// @Tags resources
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param id path string true "Resource id"
// @Param reservation body domain.ReservationRequest true "Reservation window"
// @Success 200 {object} http.APIResponse "data contains the refreshed resource detail"
// @Failure 400 {object} http.APIResponse "error.code: bad_request (validation)"
// @Router /views/resources/{id}/reserve [post]
func (c *ResourcesController) Reserve(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	var req domain.ReservationRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	detail, err := c.View.Reserve(r.Context(), sess, r.PathValue("id"), req)
	if err != nil {
		h.WriteViewError(w, c.Logger, r, err, "Unable to reserve resource")
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, detail)
}

// Status godoc
// @Summary Request a resource status transition
// @Tags resources
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param id path string true "Resource id"
// @Param status body domain.StatusUpdate true "New status"
// @Success 200 {object} http.APIResponse "data contains the refreshed resource detail"
// @Router /views/resources/{id}/status [put]
func (c *ResourcesController) Status(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	var u domain.StatusUpdate
	if !h.DecodeAndValidate(w, r, &u) {
		return
	}
	detail, err := c.View.UpdateStatus(r.Context(), sess, r.PathValue("id"), u)
	if err != nil {
		h.WriteViewError(w, c.Logger, r, err, "Unable to update status")
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, detail)
}
