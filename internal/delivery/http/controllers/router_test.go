package controllers

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusnavigator/internal/adapters/campus"
	"campusnavigator/internal/adapters/push"
	h "campusnavigator/internal/delivery/http"
	"campusnavigator/internal/session"
	"campusnavigator/internal/views"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// upstream is a fake campus API covering auth plus whatever canned data
// the test registers. Mutations respond with an empty envelope.
type upstream struct {
	srv  *httptest.Server
	mux  *http.ServeMux
	hits map[string]int
}

func newUpstream(t *testing.T) *upstream {
	t.Helper()
	u := &upstream{mux: http.NewServeMux(), hits: map[string]int{}}
	u.mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		if body.Password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message":"invalid credentials"}`))
			return
		}
		w.Write([]byte(`{"token":"tok-live","user":{"id":"u1","name":"Asha","email":"asha@campus.edu","role":"admin"}}`))
	})
	u.mux.HandleFunc("GET /auth/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-live" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message":"token rejected"}`))
			return
		}
		w.Write([]byte(`{"user":{"id":"u1","name":"Asha","role":"admin"}}`))
	})
	wrapped := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u.hits[r.Method+" "+r.URL.Path]++
		u.mux.ServeHTTP(w, r)
	})
	u.srv = httptest.NewServer(wrapped)
	t.Cleanup(u.srv.Close)
	return u
}

func (u *upstream) serve(pattern, body string) {
	u.mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	})
}

// newGateway wires the full router against the fake upstream. The push
// URL is dead on purpose; sessions run without live connections here.
func newGateway(t *testing.T, u *upstream) (*http.ServeMux, *session.Manager) {
	t.Helper()
	return newGatewayWithPush(t, u, "ws://127.0.0.1:1")
}

func newGatewayWithPush(t *testing.T, u *upstream, pushURL string) (*http.ServeMux, *session.Manager) {
	t.Helper()
	api := campus.NewClient(u.srv.URL, nil)
	sessions := session.NewManager(api, push.NewDialer(pushURL, testLogger), testLogger)

	rooms := views.NewRooms(api)
	events := views.NewEvents(api)
	faculty := views.NewFaculty(api)
	resources := views.NewResources(api)
	dashboard := views.NewDashboard(api)

	mux := NewRouter(Controllers{
		Auth:      NewAuthController(testLogger, sessions),
		Rooms:     NewRoomsController(testLogger, rooms),
		Events:    NewEventsController(testLogger, events),
		Faculty:   NewFacultyController(testLogger, faculty),
		Resources: NewResourcesController(testLogger, resources),
		Dashboard: NewDashboardController(testLogger, dashboard),
		Streams: &StreamsController{
			Logger: testLogger, Rooms: rooms, Events: events,
			Faculty: faculty, Resources: resources, Dashboard: dashboard,
		},
	}, sessions, testLogger)
	return mux, sessions
}

func decodeEnvelope(t *testing.T, body io.Reader) h.APIResponse {
	t.Helper()
	var env h.APIResponse
	require.NoError(t, json.NewDecoder(body).Decode(&env))
	return env
}

func TestLogin_SetsCookieAndReturnsUser(t *testing.T) {
	mux, _ := newGateway(t, newUpstream(t))

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"asha@campus.edu","password":"secret"}`))
	mux.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, session.CookieName, cookies[0].Name)
	assert.Equal(t, "tok-live", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)

	env := decodeEnvelope(t, w.Body)
	require.Nil(t, env.Error)
	user := env.Data.(map[string]any)["user"].(map[string]any)
	assert.Equal(t, "Asha", user["name"])
}

func TestLogin_RejectedCredentialsSurfaceAPIMessage(t *testing.T) {
	mux, _ := newGateway(t, newUpstream(t))

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"asha@campus.edu","password":"wrong"}`))
	mux.ServeHTTP(w, r)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	env := decodeEnvelope(t, w.Body)
	require.NotNil(t, env.Error)
	assert.Equal(t, h.ErrCodeUnauthorized, env.Error.Code)
	assert.Equal(t, "invalid credentials", env.Error.Message)
	assert.Empty(t, w.Result().Cookies())
}

func TestLogin_ValidationBeforeUpstream(t *testing.T) {
	u := newUpstream(t)
	mux, _ := newGateway(t, u)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"not-an-email","password":""}`))
	mux.ServeHTTP(w, r)

	require.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w.Body)
	assert.Contains(t, env.Error.Message, "invalid email format")
	assert.Contains(t, env.Error.Message, "password is required")
	assert.Zero(t, u.hits["POST /auth/login"])
}

func TestViews_RequireAuthentication(t *testing.T) {
	mux, _ := newGateway(t, newUpstream(t))

	for _, path := range []string{"/views/rooms", "/views/events/e1", "/views/dashboard", "/streams/rooms"} {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestViews_StaleCookieClearedQuietly(t *testing.T) {
	mux, _ := newGateway(t, newUpstream(t))

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/views/rooms", nil)
	r.AddCookie(&http.Cookie{Name: session.CookieName, Value: "tok-stale"})
	mux.ServeHTTP(w, r)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	env := decodeEnvelope(t, w.Body)
	assert.Equal(t, "authentication required", env.Error.Message)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, -1, cookies[0].MaxAge)
}

func TestRoomsList_WithCookie(t *testing.T) {
	u := newUpstream(t)
	u.serve("GET /rooms", `{"data":[{"_id":"r1","name":"Lecture Hall 1","isAvailable":true,"capacity":120}]}`)
	mux, _ := newGateway(t, u)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/views/rooms", nil)
	r.AddCookie(&http.Cookie{Name: session.CookieName, Value: "tok-live"})
	mux.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w.Body)
	data := env.Data.(map[string]any)
	assert.Equal(t, float64(1), data["available"])
	assert.Equal(t, true, data["canManage"])
}

func TestDelete_RequiresConfirmation(t *testing.T) {
	u := newUpstream(t)
	mux, _ := newGateway(t, u)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodDelete, "/views/rooms/r1", nil)
	r.AddCookie(&http.Cookie{Name: session.CookieName, Value: "tok-live"})
	mux.ServeHTTP(w, r)

	require.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w.Body)
	assert.Contains(t, env.Error.Message, "confirm=true")
	assert.Zero(t, u.hits["DELETE /rooms/r1"])
}

func TestDelete_WithConfirmation(t *testing.T) {
	u := newUpstream(t)
	u.serve("DELETE /rooms/r1", `{"data":null}`)
	u.serve("GET /rooms", `{"data":[]}`)
	mux, _ := newGateway(t, u)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodDelete, "/views/rooms/r1?confirm=true", nil)
	r.AddCookie(&http.Cookie{Name: session.CookieName, Value: "tok-live"})
	mux.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, u.hits["DELETE /rooms/r1"])
}

func TestEventsList_UpstreamDownStillRenders(t *testing.T) {
	u := newUpstream(t)
	u.mux.HandleFunc("GET /events", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"message":"events service down"}`))
	})
	mux, _ := newGateway(t, u)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/views/events", nil)
	r.AddCookie(&http.Cookie{Name: session.CookieName, Value: "tok-live"})
	mux.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w.Body)
	data := env.Data.(map[string]any)
	assert.Equal(t, true, data["sample"])
	assert.Equal(t, "events service down", data["notice"])
}

func TestLogout_ClearsCookieAndSession(t *testing.T) {
	mux, _ := newGateway(t, newUpstream(t))

	login := httptest.NewRecorder()
	mux.ServeHTTP(login, httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"asha@campus.edu","password":"secret"}`)))
	require.Equal(t, http.StatusOK, login.Code)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	r.AddCookie(&http.Cookie{Name: session.CookieName, Value: "tok-live"})
	mux.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, -1, cookies[0].MaxAge)
}

func TestStream_SendsInitialPayload(t *testing.T) {
	u := newUpstream(t)
	u.serve("GET /rooms", `{"data":[{"_id":"r1","name":"Lecture Hall 1","isAvailable":true}]}`)
	mux, _ := newGateway(t, u)

	srv := httptest.NewServer(mux)
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/streams/rooms", nil)
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "tok-live"})

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	lineCh := make(chan string, 1)
	go func() {
		line, _ := reader.ReadString('\n')
		lineCh <- line
	}()

	select {
	case line := <-lineCh:
		require.True(t, strings.HasPrefix(line, "data: "))
		var payload views.RoomList
		require.NoError(t, json.Unmarshal(bytes.TrimPrefix([]byte(strings.TrimSpace(line)), []byte("data: ")), &payload))
		require.Len(t, payload.Rooms, 1)
		assert.Equal(t, "Lecture Hall 1", payload.Rooms[0].Name)
	case <-time.After(2 * time.Second):
		t.Fatal("no SSE frame received")
	}
}

// readDataFrame drains stream lines until a data line arrives and
// returns its JSON payload.
func readDataFrame(t *testing.T, lines <-chan string) string {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case line, ok := <-lines:
			if !ok {
				t.Fatal("stream closed before a data frame arrived")
			}
			if strings.HasPrefix(line, "data: ") {
				return strings.TrimSpace(strings.TrimPrefix(line, "data: "))
			}
		case <-deadline:
			t.Fatal("no SSE frame received")
		}
	}
}

func TestStream_PushDeliversOneRefreshFrame(t *testing.T) {
	u := newUpstream(t)
	u.serve("GET /rooms", `{"data":[{"_id":"r1","name":"Lecture Hall 1","isAvailable":true}]}`)

	serverConns := make(chan *websocket.Conn, 1)
	upgrader := websocket.Upgrader{}
	pushSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		serverConns <- ws
	}))
	defer pushSrv.Close()

	mux, _ := newGatewayWithPush(t, u, "ws"+strings.TrimPrefix(pushSrv.URL, "http"))
	srv := httptest.NewServer(mux)
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/streams/rooms", nil)
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "tok-live"})

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	lines := make(chan string, 16)
	go func() {
		reader := bufio.NewReader(resp.Body)
		for {
			line, err := reader.ReadString('\n')
			if err != nil {
				close(lines)
				return
			}
			lines <- line
		}
	}()

	readDataFrame(t, lines) // initial snapshot

	var ws *websocket.Conn
	select {
	case ws = <-serverConns:
	case <-time.After(2 * time.Second):
		t.Fatal("push server never dialed")
	}
	defer ws.Close()
	require.NoError(t, ws.WriteMessage(websocket.TextMessage, []byte(`{"event":"room-updated"}`)))

	frame := readDataFrame(t, lines)
	var payload views.RoomList
	require.NoError(t, json.Unmarshal([]byte(frame), &payload))
	require.Len(t, payload.Rooms, 1)
	assert.Equal(t, "Lecture Hall 1", payload.Rooms[0].Name)

	// One push yields one refresh frame; nothing else trickles in.
	select {
	case line := <-lines:
		assert.False(t, strings.HasPrefix(line, "data: "), "unexpected extra frame: %q", line)
	case <-time.After(150 * time.Millisecond):
	}
}
