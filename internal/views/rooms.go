package views

import (
	"context"
	"time"

	"campusnavigator/internal/adapters/campus"
	"campusnavigator/internal/domain"
	"campusnavigator/internal/sampledata"
	"campusnavigator/internal/session"
)

// Push events bound by the room views. The collection additionally
// cares about deletions; the detail page only about the one record
// changing under it.
var (
	roomCollectionEvents = []string{"room-updated", "room-availability-updated", "room-deleted"}
	roomDetailEvents     = []string{"room-updated", "room-availability-updated"}
)

// RoomList is the rooms collection view payload.
type RoomList struct {
	Rooms     []domain.Room `json:"rooms"`
	Buildings []string      `json:"buildings"`
	Available int           `json:"available"`
	Capacity  int           `json:"capacity"`
	CanManage bool          `json:"canManage"`
}

// RoomDetail is the room detail view payload.
type RoomDetail struct {
	Room          domain.Room         `json:"room"`
	TodaySchedule *domain.DaySchedule `json:"todaySchedule,omitempty"`
	CanManage     bool                `json:"canManage"`
}

// Rooms is the room view service.
type Rooms struct {
	api *campus.Client
	now func() time.Time
}

// NewRooms returns the room view service.
func NewRooms(api *campus.Client) *Rooms {
	return &Rooms{api: api, now: time.Now}
}

// Watch binds the collection's push events to fn.
func (v *Rooms) Watch(n Notifier, fn func()) (unbind func()) {
	return n.Subscribe(roomCollectionEvents, fn)
}

// WatchDetail binds the detail page's push events to fn.
func (v *Rooms) WatchDetail(n Notifier, fn func()) (unbind func()) {
	return n.Subscribe(roomDetailEvents, fn)
}

// List fetches rooms with the structured filters applied upstream, then
// applies the free-text search client-side over name, room id, and
// building. Summary numbers are computed from the unfiltered fetch,
// matching the category pages.
func (v *Rooms) List(ctx context.Context, sess *session.Session, q domain.RoomQuery) (*RoomList, error) {
	rooms, err := v.api.ListRooms(ctx, sess.Token, q)
	if err != nil {
		return nil, err
	}

	list := &RoomList{
		Rooms:     make([]domain.Room, 0, len(rooms)),
		CanManage: sess.User.Role.CanManage(),
	}
	seen := map[string]bool{}
	for _, r := range rooms {
		if r.IsAvailable {
			list.Available++
		}
		list.Capacity += r.Capacity
		if !seen[r.Building] {
			seen[r.Building] = true
			list.Buildings = append(list.Buildings, r.Building)
		}
		if matchesSearch(q.Search, r.Name, r.RoomID, r.Building) {
			list.Rooms = append(list.Rooms, r)
		}
	}
	return list, nil
}

// Get fetches one room and derives today's schedule entry.
func (v *Rooms) Get(ctx context.Context, sess *session.Session, id string) (*RoomDetail, error) {
	room, err := v.api.GetRoom(ctx, sess.Token, id)
	if err != nil {
		return nil, err
	}
	return &RoomDetail{
		Room:          *room,
		TodaySchedule: room.TodaySchedule(v.now()),
		CanManage:     sess.User.Role.CanManage(),
	}, nil
}

// Create creates a room, then refetches the collection.
func (v *Rooms) Create(ctx context.Context, sess *session.Session, room domain.Room) (*RoomList, error) {
	if _, err := v.api.CreateRoom(ctx, sess.Token, room); err != nil {
		return nil, err
	}
	return v.List(ctx, sess, domain.RoomQuery{})
}

// Update replaces a room's editable fields, then refetches it.
func (v *Rooms) Update(ctx context.Context, sess *session.Session, id string, room domain.Room) (*RoomDetail, error) {
	if _, err := v.api.UpdateRoom(ctx, sess.Token, id, room); err != nil {
		return nil, err
	}
	return v.Get(ctx, sess, id)
}

// Delete deletes a room, then refetches the collection.
func (v *Rooms) Delete(ctx context.Context, sess *session.Session, id string) (*RoomList, error) {
	if err := v.api.DeleteRoom(ctx, sess.Token, id); err != nil {
		return nil, err
	}
	return v.List(ctx, sess, domain.RoomQuery{})
}

// ToggleAvailability suggests the new availability flag, then refetches
// the room. The API stays authoritative for the flag itself.
func (v *Rooms) ToggleAvailability(ctx context.Context, sess *session.Session, id string, u domain.AvailabilityUpdate) (*RoomDetail, error) {
	if err := v.api.UpdateRoomAvailability(ctx, sess.Token, id, u); err != nil {
		return nil, err
	}
	return v.Get(ctx, sess, id)
}

// UpdateSchedule replaces the weekly schedule, then refetches the room.
func (v *Rooms) UpdateSchedule(ctx context.Context, sess *session.Session, id string, schedule []domain.DaySchedule) (*RoomDetail, error) {
	if err := v.api.UpdateRoomSchedule(ctx, sess.Token, id, schedule); err != nil {
		return nil, err
	}
	return v.Get(ctx, sess, id)
}

// Book validates the booking form locally, submits it, then refetches
// the room. Invalid forms never reach the API.
func (v *Rooms) Book(ctx context.Context, sess *session.Session, id string, req domain.BookingRequest) (*RoomDetail, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if sampledata.IsSampleID(id) {
		return nil, domain.ErrSampleReadOnly
	}
	if _, err := v.api.BookRoom(ctx, sess.Token, id, req); err != nil {
		return nil, err
	}
	return v.Get(ctx, sess, id)
}

// Bookings fetches a room's booking records.
func (v *Rooms) Bookings(ctx context.Context, sess *session.Session, id string) ([]domain.Booking, error) {
	return v.api.ListRoomBookings(ctx, sess.Token, id)
}
