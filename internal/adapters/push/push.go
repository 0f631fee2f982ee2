// Package push maintains the persistent connection to the campus push
// server. The server emits named change notifications ("room-updated",
// "event-created", ...); payloads are ignored, receipt alone is the
// signal. One connection exists per authenticated session, owned by the
// session store; views subscribe and unsubscribe against it.
package push

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// notification is a frame from the push server. Data is carried but
// never inspected; a refetch reloads authoritative state instead.
type notification struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// Dialer opens push connections against a fixed websocket URL.
type Dialer struct {
	url    string
	logger *slog.Logger
	ws     websocket.Dialer
}

// NewDialer returns a Dialer for the given ws:// or wss:// URL.
func NewDialer(url string, logger *slog.Logger) *Dialer {
	return &Dialer{url: url, logger: logger}
}

// Dial connects and authenticates with the bearer token. The returned
// connection reads frames until it is closed or the server drops it;
// there is no automatic reconnect.
func (d *Dialer) Dial(ctx context.Context, token string) (*Conn, error) {
	header := http.Header{}
	header.Set("Authorization", "Bearer "+token)
	ws, _, err := d.ws.DialContext(ctx, d.url, header)
	if err != nil {
		return nil, err
	}
	c := &Conn{
		ws:     ws,
		logger: d.logger,
		subs:   make(map[string]map[string]func()),
		done:   make(chan struct{}),
	}
	go c.readLoop()
	return c, nil
}

// Conn is a live push-channel connection. Safe for concurrent use.
type Conn struct {
	ws     *websocket.Conn
	logger *slog.Logger

	mu   sync.RWMutex
	subs map[string]map[string]func() // event name -> subscription id -> handler

	closeOnce sync.Once
	done      chan struct{}
}

// Subscribe binds fn to each named event. Every receipt of a bound
// event fires fn once; nothing is coalesced or debounced. The returned
// handle removes all of the bindings; calling it more than once is fine.
func (c *Conn) Subscribe(names []string, fn func()) (unbind func()) {
	id := uuid.NewString()
	c.mu.Lock()
	for _, name := range names {
		if c.subs[name] == nil {
			c.subs[name] = make(map[string]func())
		}
		c.subs[name][id] = fn
	}
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		for _, name := range names {
			delete(c.subs[name], id)
		}
		c.mu.Unlock()
	}
}

// Close tears the connection down and drops every subscription. Only
// the session store calls this, on logout or session teardown.
func (c *Conn) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
		c.mu.Lock()
		c.subs = make(map[string]map[string]func())
		c.mu.Unlock()
		_ = c.ws.Close()
	})
}

// Done is closed once the connection is gone, whichever side ended it.
func (c *Conn) Done() <-chan struct{} {
	return c.done
}

func (c *Conn) readLoop() {
	defer c.Close()
	for {
		_, data, err := c.ws.ReadMessage()
		if err != nil {
			select {
			case <-c.done:
			default:
				c.logger.Warn("push connection lost", "err", err)
			}
			return
		}
		var n notification
		if err := json.Unmarshal(data, &n); err != nil || n.Event == "" {
			c.logger.Debug("ignoring malformed push frame")
			continue
		}
		c.dispatch(n.Event)
	}
}

// dispatch fires every handler bound to name. Handlers run on their own
// goroutines so a slow refetch never stalls the read loop; overlapping
// refetches are acceptable.
func (c *Conn) dispatch(name string) {
	c.mu.RLock()
	handlers := make([]func(), 0, len(c.subs[name]))
	for _, fn := range c.subs[name] {
		handlers = append(handlers, fn)
	}
	c.mu.RUnlock()
	for _, fn := range handlers {
		go fn()
	}
}
