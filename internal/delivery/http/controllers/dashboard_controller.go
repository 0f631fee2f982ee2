package controllers

import (
	"log/slog"
	"net/http"

	h "campusnavigator/internal/delivery/http"
	"campusnavigator/internal/views"
)

// DashboardController serves the aggregated campus summary.
type DashboardController struct {
	Logger *slog.Logger
	View   *views.Dashboard
}

// NewDashboardController returns a DashboardController.
func NewDashboardController(logger *slog.Logger, view *views.Dashboard) *DashboardController {
	return &DashboardController{Logger: logger, View: view}
}

// Summary godoc
// @Summary Campus dashboard summary
// @Description Counts are best-effort; an unreachable upstream section reports zero rather than failing the page.
// @Tags dashboard
// @Produce json
// @Security CookieAuth
// @Success 200 {object} http.APIResponse "data contains the summary counters"
// @Router /views/dashboard [get]
func (c *DashboardController) Summary(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	summary := c.View.Summarize(r.Context(), sess)
	h.WriteJSONSuccess(w, http.StatusOK, summary)
}
