package views

import (
	"context"

	"campusnavigator/internal/adapters/campus"
	"campusnavigator/internal/domain"
	"campusnavigator/internal/session"
)

var (
	resourceCollectionEvents = []string{"resource-created", "resource-updated", "resource-deleted", "resource-status-updated", "resource-reserved"}
	resourceDetailEvents     = []string{"resource-updated", "resource-status-updated", "resource-reserved"}
)

// ResourceList is the resources collection view payload. The counters
// describe the unfiltered fetch, matching the stat cards on the page.
type ResourceList struct {
	Resources   []domain.Resource `json:"resources"`
	Available   int               `json:"available"`
	Maintenance int               `json:"maintenance"`
	Total       int               `json:"total"`
	CanManage   bool              `json:"canManage"`
}

// ResourceDetail is the resource detail view payload.
type ResourceDetail struct {
	Resource  domain.Resource `json:"resource"`
	CanManage bool            `json:"canManage"`
}

// Resources is the resource view service. The resources domain carries
// no placeholder set; an empty backend shows an empty list.
type Resources struct {
	api *campus.Client
}

// NewResources returns the resource view service.
func NewResources(api *campus.Client) *Resources {
	return &Resources{api: api}
}

// Watch binds the collection's push events to fn.
func (v *Resources) Watch(n Notifier, fn func()) (unbind func()) {
	return n.Subscribe(resourceCollectionEvents, fn)
}

// WatchDetail binds the detail page's push events to fn.
func (v *Resources) WatchDetail(n Notifier, fn func()) (unbind func()) {
	return n.Subscribe(resourceDetailEvents, fn)
}

// List fetches resources with type and status filters applied upstream
// and search applied client-side over name, building, and room id.
func (v *Resources) List(ctx context.Context, sess *session.Session, q domain.ResourceQuery) (*ResourceList, error) {
	resources, err := v.api.ListResources(ctx, sess.Token, q)
	if err != nil {
		return nil, err
	}

	list := &ResourceList{
		Resources: make([]domain.Resource, 0, len(resources)),
		Total:     len(resources),
		CanManage: sess.User.Role.CanManage(),
	}
	for _, r := range resources {
		switch r.Status {
		case domain.ResourceAvailable:
			list.Available++
		case domain.ResourceMaintenance:
			list.Maintenance++
		}
		if matchesSearch(q.Search, r.Name, r.Location.Building, r.Location.RoomID) {
			list.Resources = append(list.Resources, r)
		}
	}
	return list, nil
}

// Get fetches one resource by id.
func (v *Resources) Get(ctx context.Context, sess *session.Session, id string) (*ResourceDetail, error) {
	resource, err := v.api.GetResource(ctx, sess.Token, id)
	if err != nil {
		return nil, err
	}
	return &ResourceDetail{Resource: *resource, CanManage: sess.User.Role.CanManage()}, nil
}

// Create creates a resource, then refetches the collection.
func (v *Resources) Create(ctx context.Context, sess *session.Session, resource domain.Resource) (*ResourceList, error) {
	if _, err := v.api.CreateResource(ctx, sess.Token, resource); err != nil {
		return nil, err
	}
	return v.List(ctx, sess, domain.ResourceQuery{})
}

// Update replaces a resource's editable fields, then refetches it.
func (v *Resources) Update(ctx context.Context, sess *session.Session, id string, resource domain.Resource) (*ResourceDetail, error) {
	if _, err := v.api.UpdateResource(ctx, sess.Token, id, resource); err != nil {
		return nil, err
	}
	return v.Get(ctx, sess, id)
}

// Delete deletes a resource, then refetches the collection.
func (v *Resources) Delete(ctx context.Context, sess *session.Session, id string) (*ResourceList, error) {
	if err := v.api.DeleteResource(ctx, sess.Token, id); err != nil {
		return nil, err
	}
	return v.List(ctx, sess, domain.ResourceQuery{})
}

// Reserve validates the reservation window locally, submits it, then
// refetches the resource. Invalid windows never reach the API.
func (v *Resources) Reserve(ctx context.Context, sess *session.Session, id string, req domain.ReservationRequest) (*ResourceDetail, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := v.api.ReserveResource(ctx, sess.Token, id, req); err != nil {
		return nil, err
	}
	return v.Get(ctx, sess, id)
}

// UpdateStatus requests a status transition, then refetches the
// resource. The API decides whether the transition is legal.
func (v *Resources) UpdateStatus(ctx context.Context, sess *session.Session, id string, u domain.StatusUpdate) (*ResourceDetail, error) {
	if err := u.Validate(); err != nil {
		return nil, err
	}
	if err := v.api.UpdateResourceStatus(ctx, sess.Token, id, u); err != nil {
		return nil, err
	}
	return v.Get(ctx, sess, id)
}
