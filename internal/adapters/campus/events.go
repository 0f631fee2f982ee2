package campus

import (
	"context"
	"net/http"

	"campusnavigator/internal/domain"
)

// ListEvents fetches events matching the query.
func (c *Client) ListEvents(ctx context.Context, token string, q domain.EventQuery) ([]domain.Event, error) {
	var events []domain.Event
	if err := c.get(ctx, token, "/events", q.Values(), &events); err != nil {
		return nil, err
	}
	return events, nil
}

// GetEvent fetches one event by id.
func (c *Client) GetEvent(ctx context.Context, token, id string) (*domain.Event, error) {
	var event domain.Event
	if err := c.get(ctx, token, "/events/"+id, nil, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// CreateEvent creates an event.
func (c *Client) CreateEvent(ctx context.Context, token string, event domain.Event) (*domain.Event, error) {
	var created domain.Event
	if err := c.send(ctx, token, http.MethodPost, "/events", event, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateEvent replaces an event's editable fields.
func (c *Client) UpdateEvent(ctx context.Context, token, id string, event domain.Event) (*domain.Event, error) {
	var updated domain.Event
	if err := c.send(ctx, token, http.MethodPut, "/events/"+id, event, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteEvent deletes an event.
func (c *Client) DeleteEvent(ctx context.Context, token, id string) error {
	return c.send(ctx, token, http.MethodDelete, "/events/"+id, nil, nil)
}

// RegisterForEvent submits the registration form for the authenticated
// user. The API adds the user to the attendee roster.
func (c *Client) RegisterForEvent(ctx context.Context, token, id string, form domain.RegistrationForm) error {
	return c.send(ctx, token, http.MethodPost, "/events/"+id+"/register", form, nil)
}
