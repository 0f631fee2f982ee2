package views

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"campusnavigator/internal/adapters/campus"
	"campusnavigator/internal/domain"
	"campusnavigator/internal/session"
)

// fakeNotifier records what the view subscribed to.
type fakeNotifier struct {
	names   []string
	fn      func()
	unbound bool
}

func (f *fakeNotifier) Subscribe(names []string, fn func()) (unbind func()) {
	f.names = names
	f.fn = fn
	return func() { f.unbound = true }
}

func studentSession() *session.Session {
	return &session.Session{ID: "s1", Token: "tok", User: domain.User{ID: "u1", Name: "Asha", Role: domain.RoleStudent}}
}

func adminSession() *session.Session {
	return &session.Session{ID: "s2", Token: "tok-admin", User: domain.User{ID: "a1", Name: "Root", Role: domain.RoleAdmin}}
}

// apiStub serves canned envelope responses keyed by method and path and
// counts the requests it sees.
type apiStub struct {
	srv   *httptest.Server
	hits  map[string]int
	data  map[string]any
	fails map[string]int // method+path -> status to fail with
	msgs  map[string]string
}

func newAPIStub(t *testing.T) *apiStub {
	t.Helper()
	s := &apiStub{
		hits:  map[string]int{},
		data:  map[string]any{},
		fails: map[string]int{},
		msgs:  map[string]string{},
	}
	s.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path
		s.hits[key]++
		if status, ok := s.fails[key]; ok {
			w.WriteHeader(status)
			json.NewEncoder(w).Encode(map[string]any{"message": s.msgs[key]})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"data": s.data[key]})
	}))
	t.Cleanup(s.srv.Close)
	return s
}

func (s *apiStub) client() *campus.Client {
	return campus.NewClient(s.srv.URL, nil)
}

func (s *apiStub) serve(key string, data any) { s.data[key] = data }

func (s *apiStub) fail(key string, status int, msg string) {
	s.fails[key] = status
	s.msgs[key] = msg
}

func TestMatchesSearch(t *testing.T) {
	assert.True(t, matchesSearch("", "anything"))
	assert.True(t, matchesSearch("hall", "Lecture Hall 1", "LH-101", "Block A"))
	assert.True(t, matchesSearch("BLOCK a", "Lecture Hall 1", "LH-101", "Block A"))
	assert.True(t, matchesSearch("lh-101", "Lecture Hall 1", "LH-101", "Block A"))
	assert.False(t, matchesSearch("gym", "Lecture Hall 1", "LH-101", "Block A"))
}

func TestWatch_EventNameSets(t *testing.T) {
	tests := []struct {
		name  string
		watch func(Notifier, func()) func()
		want  []string
	}{
		{"rooms collection", NewRooms(nil).Watch,
			[]string{"room-updated", "room-availability-updated", "room-deleted"}},
		{"room detail", NewRooms(nil).WatchDetail,
			[]string{"room-updated", "room-availability-updated"}},
		{"events collection", NewEvents(nil).Watch,
			[]string{"event-created", "event-updated", "event-deleted", "event-registration-updated"}},
		{"event detail", NewEvents(nil).WatchDetail,
			[]string{"event-updated", "event-deleted", "event-registration-updated"}},
		{"faculty collection", NewFaculty(nil).Watch,
			[]string{"faculty-updated", "faculty-availability-updated"}},
		{"faculty detail", NewFaculty(nil).WatchDetail,
			[]string{"faculty-updated", "faculty-availability-updated"}},
		{"resources collection", NewResources(nil).Watch,
			[]string{"resource-created", "resource-updated", "resource-deleted", "resource-status-updated", "resource-reserved"}},
		{"resource detail", NewResources(nil).WatchDetail,
			[]string{"resource-updated", "resource-status-updated", "resource-reserved"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n := &fakeNotifier{}
			unbind := tc.watch(n, func() {})
			assert.Equal(t, tc.want, n.names)
			unbind()
			assert.True(t, n.unbound)
		})
	}
}

func TestDashboardWatch_CoversAllDomains(t *testing.T) {
	n := &fakeNotifier{}
	NewDashboard(nil).Watch(n, func() {})
	assert.Contains(t, n.names, "room-updated")
	assert.Contains(t, n.names, "event-created")
	assert.Contains(t, n.names, "faculty-availability-updated")
	assert.Contains(t, n.names, "resource-reserved")
}
