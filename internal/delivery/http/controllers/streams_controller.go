package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	h "campusnavigator/internal/delivery/http"
	"campusnavigator/internal/views"
)

// StreamsController serves the live-refresh streams. Each stream sends
// the view payload once on connect, then again whenever one of the
// view's bound push events arrives, as server-sent events.
type StreamsController struct {
	Logger    *slog.Logger
	Rooms     *views.Rooms
	Events    *views.Events
	Faculty   *views.Faculty
	Resources *views.Resources
	Dashboard *views.Dashboard
}

// sseWriter serializes writes to a server-sent-events response. Push
// callbacks run on their own goroutines and may fire while the request
// is being torn down; once closed it drops writes instead of touching
// the dead ResponseWriter.
type sseWriter struct {
	mu     sync.Mutex
	w      http.ResponseWriter
	fl     http.Flusher
	closed bool
}

func (s *sseWriter) send(payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	fmt.Fprintf(s.w, "data: %s\n\n", body)
	s.fl.Flush()
}

func (s *sseWriter) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

// stream runs one SSE connection: initial fetch-and-send, rebind on
// every push event, until the client disconnects. fetch failures after
// the initial send are logged and skipped so a transient upstream blip
// does not kill the stream.
func (c *StreamsController) stream(w http.ResponseWriter, r *http.Request, watch func(fn func()) (unbind func()), fetch func(context.Context) (any, error)) {
	fl, ok := w.(http.Flusher)
	if !ok {
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "streaming unsupported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	sw := &sseWriter{w: w, fl: fl}
	defer sw.close()

	ctx := r.Context()
	push := func() {
		payload, err := fetch(ctx)
		if err != nil {
			c.Logger.DebugContext(ctx, "stream refetch failed", "path", r.URL.Path, "error", err)
			return
		}
		sw.send(payload)
	}

	unbind := watch(push)
	defer unbind()

	push()
	<-ctx.Done()
}

// RoomList godoc
// @Summary Live rooms collection stream
// @Tags streams
// @Produce text/event-stream
// @Security CookieAuth
// @Param building query string false "Building filter"
// @Param type query string false "Room type"
// @Param search query string false "Free-text search"
// @Success 200 {string} string "SSE stream of room list views"
// @Router /streams/rooms [get]
func (c *StreamsController) RoomList(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	q := roomQuery(r.URL.Query())
	c.stream(w, r,
		func(fn func()) func() { return c.Rooms.Watch(sess, fn) },
		func(ctx context.Context) (any, error) { return c.Rooms.List(ctx, sess, q) })
}

// RoomDetail godoc
// @Summary Live room detail stream
// @Tags streams
// @Produce text/event-stream
// @Security CookieAuth
// @Param id path string true "Room id"
// @Success 200 {string} string "SSE stream of room detail views"
// @Router /streams/rooms/{id} [get]
func (c *StreamsController) RoomDetail(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	id := r.PathValue("id")
	c.stream(w, r,
		func(fn func()) func() { return c.Rooms.WatchDetail(sess, fn) },
		func(ctx context.Context) (any, error) { return c.Rooms.Get(ctx, sess, id) })
}

// EventList godoc
// @Summary Live events collection stream
// @Tags streams
// @Produce text/event-stream
// @Security CookieAuth
// @Param category query string false "Event category"
// @Param status query string false "Event status"
// @Param search query string false "Free-text search"
// @Success 200 {string} string "SSE stream of event list views"
// @Router /streams/events [get]
func (c *StreamsController) EventList(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	q := eventQuery(r.URL.Query())
	c.stream(w, r,
		func(fn func()) func() { return c.Events.Watch(sess, fn) },
		func(ctx context.Context) (any, error) { return c.Events.List(ctx, sess, q) })
}

// EventDetail godoc
// @Summary Live event detail stream
// @Tags streams
// @Produce text/event-stream
// @Security CookieAuth
// @Param id path string true "Event id"
// @Success 200 {string} string "SSE stream of event detail views"
// @Router /streams/events/{id} [get]
func (c *StreamsController) EventDetail(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	id := r.PathValue("id")
	c.stream(w, r,
		func(fn func()) func() { return c.Events.WatchDetail(sess, fn) },
		func(ctx context.Context) (any, error) { return c.Events.Get(ctx, sess, id) })
}

// FacultyList godoc
// @Summary Live faculty directory stream
// @Tags streams
// @Produce text/event-stream
// @Security CookieAuth
// @Param department query string false "Department filter"
// @Param search query string false "Free-text search"
// @Success 200 {string} string "SSE stream of faculty list views"
// @Router /streams/faculty [get]
func (c *StreamsController) FacultyList(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	q := facultyQuery(r.URL.Query())
	c.stream(w, r,
		func(fn func()) func() { return c.Faculty.Watch(sess, fn) },
		func(ctx context.Context) (any, error) { return c.Faculty.List(ctx, sess, q) })
}

// FacultyDetail godoc
// @Summary Live faculty detail stream
// @Tags streams
// @Produce text/event-stream
// @Security CookieAuth
// @Param id path string true "Faculty id"
// @Success 200 {string} string "SSE stream of faculty detail views"
// @Router /streams/faculty/{id} [get]
func (c *StreamsController) FacultyDetail(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	id := r.PathValue("id")
	c.stream(w, r,
		func(fn func()) func() { return c.Faculty.WatchDetail(sess, fn) },
		func(ctx context.Context) (any, error) { return c.Faculty.Get(ctx, sess, id) })
}

// ResourceList godoc
// @Summary Live resources collection stream
// @Tags streams
// @Produce text/event-stream
// @Security CookieAuth
// @Param type query string false "Resource type"
// @Param status query string false "Resource status"
// @Param search query string false "Free-text search"
// @Success 200 {string} string "SSE stream of resource list views"
// @Router /streams/resources [get]
func (c *StreamsController) ResourceList(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	q := resourceQuery(r.URL.Query())
	c.stream(w, r,
		func(fn func()) func() { return c.Resources.Watch(sess, fn) },
		func(ctx context.Context) (any, error) { return c.Resources.List(ctx, sess, q) })
}

// ResourceDetail godoc
// @Summary Live resource detail stream
// @Tags streams
// @Produce text/event-stream
// @Security CookieAuth
// @Param id path string true "Resource id"
// @Success 200 {string} string "SSE stream of resource detail views"
// @Router /streams/resources/{id} [get]
func (c *StreamsController) ResourceDetail(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	id := r.PathValue("id")
	c.stream(w, r,
		func(fn func()) func() { return c.Resources.WatchDetail(sess, fn) },
		func(ctx context.Context) (any, error) { return c.Resources.Get(ctx, sess, id) })
}

// DashboardSummary godoc
// @Summary Live dashboard summary stream
// @Tags streams
// @Produce text/event-stream
// @Security CookieAuth
// @Success 200 {string} string "SSE stream of summary counters"
// @Router /streams/dashboard [get]
func (c *StreamsController) DashboardSummary(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	c.stream(w, r,
		func(fn func()) func() { return c.Dashboard.Watch(sess, fn) },
		func(ctx context.Context) (any, error) { return c.Dashboard.Summarize(ctx, sess), nil })
}
