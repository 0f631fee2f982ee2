package campus

import (
	"context"
	"net/http"

	"campusnavigator/internal/domain"
)

// ListFaculty fetches faculty profiles matching the query.
func (c *Client) ListFaculty(ctx context.Context, token string, q domain.FacultyQuery) ([]domain.FacultyProfile, error) {
	var profiles []domain.FacultyProfile
	if err := c.get(ctx, token, "/faculty", q.Values(), &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

// GetFaculty fetches one faculty profile by id.
func (c *Client) GetFaculty(ctx context.Context, token, id string) (*domain.FacultyProfile, error) {
	var profile domain.FacultyProfile
	if err := c.get(ctx, token, "/faculty/"+id, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// CreateFaculty creates a faculty profile.
func (c *Client) CreateFaculty(ctx context.Context, token string, profile domain.FacultyProfile) (*domain.FacultyProfile, error) {
	var created domain.FacultyProfile
	if err := c.send(ctx, token, http.MethodPost, "/faculty", profile, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateFaculty replaces a faculty profile's editable fields.
func (c *Client) UpdateFaculty(ctx context.Context, token, id string, profile domain.FacultyProfile) (*domain.FacultyProfile, error) {
	var updated domain.FacultyProfile
	if err := c.send(ctx, token, http.MethodPut, "/faculty/"+id, profile, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// UpdateFacultyAvailability updates a faculty member's availability status.
func (c *Client) UpdateFacultyAvailability(ctx context.Context, token, id string, u domain.FacultyAvailabilityUpdate) error {
	return c.send(ctx, token, http.MethodPut, "/faculty/"+id+"/availability", u, nil)
}
