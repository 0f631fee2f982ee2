package campus

import (
	"context"
	"net/http"

	"campusnavigator/internal/domain"
)

// ListResources fetches resources matching the query.
func (c *Client) ListResources(ctx context.Context, token string, q domain.ResourceQuery) ([]domain.Resource, error) {
	var resources []domain.Resource
	if err := c.get(ctx, token, "/resources", q.Values(), &resources); err != nil {
		return nil, err
	}
	return resources, nil
}

// GetResource fetches one resource by id.
func (c *Client) GetResource(ctx context.Context, token, id string) (*domain.Resource, error) {
	var resource domain.Resource
	if err := c.get(ctx, token, "/resources/"+id, nil, &resource); err != nil {
		return nil, err
	}
	return &resource, nil
}

// CreateResource creates a resource.
func (c *Client) CreateResource(ctx context.Context, token string, resource domain.Resource) (*domain.Resource, error) {
	var created domain.Resource
	if err := c.send(ctx, token, http.MethodPost, "/resources", resource, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateResource replaces a resource's editable fields.
func (c *Client) UpdateResource(ctx context.Context, token, id string, resource domain.Resource) (*domain.Resource, error) {
	var updated domain.Resource
	if err := c.send(ctx, token, http.MethodPut, "/resources/"+id, resource, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteResource deletes a resource.
func (c *Client) DeleteResource(ctx context.Context, token, id string) error {
	return c.send(ctx, token, http.MethodDelete, "/resources/"+id, nil, nil)
}

// ReserveResource reserves a resource for the authenticated user.
func (c *Client) ReserveResource(ctx context.Context, token, id string, req domain.ReservationRequest) error {
	return c.send(ctx, token, http.MethodPost, "/resources/"+id+"/reserve", req, nil)
}

// UpdateResourceStatus requests a status transition. The API decides
// whether the transition is legal.
func (c *Client) UpdateResourceStatus(ctx context.Context, token, id string, u domain.StatusUpdate) error {
	return c.send(ctx, token, http.MethodPut, "/resources/"+id+"/status", u, nil)
}
