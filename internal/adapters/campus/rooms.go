package campus

import (
	"context"
	"net/http"

	"campusnavigator/internal/domain"
)

// ListRooms fetches rooms matching the query.
func (c *Client) ListRooms(ctx context.Context, token string, q domain.RoomQuery) ([]domain.Room, error) {
	var rooms []domain.Room
	if err := c.get(ctx, token, "/rooms", q.Values(), &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// GetRoom fetches one room by id.
func (c *Client) GetRoom(ctx context.Context, token, id string) (*domain.Room, error) {
	var room domain.Room
	if err := c.get(ctx, token, "/rooms/"+id, nil, &room); err != nil {
		return nil, err
	}
	return &room, nil
}

// CreateRoom creates a room and returns the API's copy of it.
func (c *Client) CreateRoom(ctx context.Context, token string, room domain.Room) (*domain.Room, error) {
	var created domain.Room
	if err := c.send(ctx, token, http.MethodPost, "/rooms", room, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateRoom replaces a room's editable fields.
func (c *Client) UpdateRoom(ctx context.Context, token, id string, room domain.Room) (*domain.Room, error) {
	var updated domain.Room
	if err := c.send(ctx, token, http.MethodPut, "/rooms/"+id, room, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteRoom deletes a room.
func (c *Client) DeleteRoom(ctx context.Context, token, id string) error {
	return c.send(ctx, token, http.MethodDelete, "/rooms/"+id, nil, nil)
}

// UpdateRoomAvailability suggests a new availability flag and occupancy.
// The API remains authoritative for the flag.
func (c *Client) UpdateRoomAvailability(ctx context.Context, token, id string, u domain.AvailabilityUpdate) error {
	return c.send(ctx, token, http.MethodPut, "/rooms/"+id+"/availability", u, nil)
}

// UpdateRoomSchedule replaces a room's weekly schedule.
func (c *Client) UpdateRoomSchedule(ctx context.Context, token, id string, schedule []domain.DaySchedule) error {
	body := struct {
		Schedule []domain.DaySchedule `json:"schedule"`
	}{Schedule: schedule}
	return c.send(ctx, token, http.MethodPut, "/rooms/"+id+"/schedule", body, nil)
}

// BookRoom books a room for the authenticated user.
func (c *Client) BookRoom(ctx context.Context, token, id string, req domain.BookingRequest) (*domain.Booking, error) {
	var booking domain.Booking
	if err := c.send(ctx, token, http.MethodPost, "/rooms/"+id+"/book", req, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// ListRoomBookings fetches a room's bookings.
func (c *Client) ListRoomBookings(ctx context.Context, token, id string) ([]domain.Booking, error) {
	var bookings []domain.Booking
	if err := c.get(ctx, token, "/rooms/"+id+"/bookings", nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}
