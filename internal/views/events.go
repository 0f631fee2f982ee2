package views

import (
	"context"
	"time"

	"campusnavigator/internal/adapters/campus"
	"campusnavigator/internal/domain"
	"campusnavigator/internal/sampledata"
	"campusnavigator/internal/session"
)

var (
	eventCollectionEvents = []string{"event-created", "event-updated", "event-deleted", "event-registration-updated"}
	eventDetailEvents     = []string{"event-updated", "event-deleted", "event-registration-updated"}
)

// EventList is the events collection view payload. Sample marks the
// placeholder set shown when the backend has no events (or could not be
// reached); Notice carries the failure message in the latter case.
type EventList struct {
	Events    []domain.Event `json:"events"`
	Sample    bool           `json:"sample"`
	Notice    string         `json:"notice,omitempty"`
	CanManage bool           `json:"canManage"`
}

// EventDetail is the event detail view payload. Registered drives the
// "Fill registration form" versus "View registration" branch.
type EventDetail struct {
	Event      domain.Event `json:"event"`
	Sample     bool         `json:"sample"`
	Registered bool         `json:"registered"`
	CanManage  bool         `json:"canManage"`
}

// Events is the event view service.
type Events struct {
	api *campus.Client
	now func() time.Time
}

// NewEvents returns the event view service.
func NewEvents(api *campus.Client) *Events {
	return &Events{api: api, now: time.Now}
}

// Watch binds the collection's push events to fn.
func (v *Events) Watch(n Notifier, fn func()) (unbind func()) {
	return n.Subscribe(eventCollectionEvents, fn)
}

// WatchDetail binds the detail page's push events to fn.
func (v *Events) WatchDetail(n Notifier, fn func()) (unbind func()) {
	return n.Subscribe(eventDetailEvents, fn)
}

// List fetches events with the structured filters applied upstream and
// the free-text search applied client-side over title, description, and
// venue building. An empty result shows the placeholder set; a failed
// fetch shows it too, with the failure message attached. Placeholders
// never appear when the API returned data.
func (v *Events) List(ctx context.Context, sess *session.Session, q domain.EventQuery) (*EventList, error) {
	canManage := sess.User.Role.CanManage()

	events, err := v.api.ListEvents(ctx, sess.Token, q)
	if err != nil {
		return &EventList{
			Events:    sampledata.Events(v.now()),
			Sample:    true,
			Notice:    domain.UpstreamMessage(err, "Unable to load events"),
			CanManage: canManage,
		}, nil
	}
	if len(events) == 0 {
		return &EventList{Events: sampledata.Events(v.now()), Sample: true, CanManage: canManage}, nil
	}

	filtered := make([]domain.Event, 0, len(events))
	for _, e := range events {
		if matchesSearch(q.Search, e.Title, e.Description, e.Venue.Building) {
			filtered = append(filtered, e)
		}
	}
	return &EventList{Events: filtered, CanManage: canManage}, nil
}

// Get resolves an event by id. Placeholder ids resolve locally with no
// network call; everything else hits the API.
func (v *Events) Get(ctx context.Context, sess *session.Session, id string) (*EventDetail, error) {
	if sample, ok := sampledata.EventByID(id, v.now()); ok {
		return &EventDetail{
			Event:      sample,
			Sample:     true,
			Registered: sample.Registered(sess.User.ID),
			CanManage:  sess.User.Role.CanManage(),
		}, nil
	}
	event, err := v.api.GetEvent(ctx, sess.Token, id)
	if err != nil {
		return nil, err
	}
	return &EventDetail{
		Event:      *event,
		Registered: event.Registered(sess.User.ID),
		CanManage:  sess.User.Role.CanManage(),
	}, nil
}

// Create creates an event, then refetches the collection.
func (v *Events) Create(ctx context.Context, sess *session.Session, event domain.Event) (*EventList, error) {
	if _, err := v.api.CreateEvent(ctx, sess.Token, event); err != nil {
		return nil, err
	}
	return v.List(ctx, sess, domain.EventQuery{})
}

// Update replaces an event's editable fields, then refetches it.
func (v *Events) Update(ctx context.Context, sess *session.Session, id string, event domain.Event) (*EventDetail, error) {
	if sampledata.IsSampleID(id) {
		return nil, domain.ErrSampleReadOnly
	}
	if _, err := v.api.UpdateEvent(ctx, sess.Token, id, event); err != nil {
		return nil, err
	}
	return v.Get(ctx, sess, id)
}

// Delete deletes an event, then refetches the collection.
func (v *Events) Delete(ctx context.Context, sess *session.Session, id string) (*EventList, error) {
	if sampledata.IsSampleID(id) {
		return nil, domain.ErrSampleReadOnly
	}
	if err := v.api.DeleteEvent(ctx, sess.Token, id); err != nil {
		return nil, err
	}
	return v.List(ctx, sess, domain.EventQuery{})
}

// Register submits the registration form for the session's user, then
// refetches the event so the attendee roster reflects the registration.
// Sample events never accept registrations.
func (v *Events) Register(ctx context.Context, sess *session.Session, id string, form domain.RegistrationForm) (*EventDetail, error) {
	if sampledata.IsSampleID(id) {
		return nil, domain.ErrSampleReadOnly
	}
	if err := v.api.RegisterForEvent(ctx, sess.Token, id, form); err != nil {
		return nil, err
	}
	return v.Get(ctx, sess, id)
}
