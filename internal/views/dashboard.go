package views

import (
	"context"

	"campusnavigator/internal/adapters/campus"
	"campusnavigator/internal/domain"
	"campusnavigator/internal/session"
)

// Summary is the dashboard's quick-stats payload.
type Summary struct {
	TotalRooms         int `json:"totalRooms"`
	AvailableRooms     int `json:"availableRooms"`
	UpcomingEvents     int `json:"upcomingEvents"`
	AvailableResources int `json:"availableResources"`
	FacultyAvailable   int `json:"facultyAvailable"`
}

// Dashboard aggregates counts across the live collections. It performs
// one fetch per domain; a failed domain degrades to zero without
// failing the whole summary.
type Dashboard struct {
	api *campus.Client
}

// NewDashboard returns the dashboard view service.
func NewDashboard(api *campus.Client) *Dashboard {
	return &Dashboard{api: api}
}

// Watch binds every domain's change events to fn so the stat cards stay
// current.
func (v *Dashboard) Watch(n Notifier, fn func()) (unbind func()) {
	names := make([]string, 0, len(roomCollectionEvents)+len(eventCollectionEvents)+len(facultyEvents)+len(resourceCollectionEvents))
	names = append(names, roomCollectionEvents...)
	names = append(names, eventCollectionEvents...)
	names = append(names, facultyEvents...)
	names = append(names, resourceCollectionEvents...)
	return n.Subscribe(names, fn)
}

// Summarize fetches each collection and counts.
func (v *Dashboard) Summarize(ctx context.Context, sess *session.Session) *Summary {
	s := &Summary{}

	if rooms, err := v.api.ListRooms(ctx, sess.Token, domain.RoomQuery{}); err == nil {
		s.TotalRooms = len(rooms)
		for _, r := range rooms {
			if r.IsAvailable {
				s.AvailableRooms++
			}
		}
	}
	if events, err := v.api.ListEvents(ctx, sess.Token, domain.EventQuery{Upcoming: true}); err == nil {
		s.UpcomingEvents = len(events)
	}
	if resources, err := v.api.ListResources(ctx, sess.Token, domain.ResourceQuery{Status: domain.ResourceAvailable}); err == nil {
		s.AvailableResources = len(resources)
	}
	if profiles, err := v.api.ListFaculty(ctx, sess.Token, domain.FacultyQuery{}); err == nil {
		for _, f := range profiles {
			if f.Availability.IsAvailable {
				s.FacultyAvailable++
			}
		}
	}
	return s
}
