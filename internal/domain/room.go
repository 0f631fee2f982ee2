package domain

import "time"

// Room types known to the campus API. The list mirrors the category
// pages (classrooms, labs, and so on); unknown types pass through.
const (
	RoomTypeClassroom  = "classroom"
	RoomTypeLab        = "lab"
	RoomTypeOffice     = "office"
	RoomTypeLibrary    = "library"
	RoomTypeSeminar    = "seminar"
	RoomTypeAuditorium = "auditorium"
)

// Coordinates is a room's position on the campus map overlay.
type Coordinates struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// TimeSlot is one scheduled block within a day. Times are display
// strings owned by the API ("09:00 AM"); no local time math is done on them.
type TimeSlot struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Subject   string `json:"subject,omitempty"`
	Faculty   string `json:"faculty,omitempty"`
}

// DaySchedule is the schedule for one weekday, keyed by the weekday's
// English name exactly as the API sends it.
type DaySchedule struct {
	Day   string     `json:"day"`
	Slots []TimeSlot `json:"timeSlots"`
}

// Room is a campus room as returned by the API.
type Room struct {
	ID               string        `json:"_id"`
	RoomID           string        `json:"roomId"`
	Name             string        `json:"name"`
	Building         string        `json:"building"`
	Floor            int           `json:"floor"`
	Type             string        `json:"type"`
	Capacity         int           `json:"capacity"`
	CurrentOccupancy int           `json:"currentOccupancy"`
	IsAvailable      bool          `json:"isAvailable"`
	Coordinates      Coordinates   `json:"coordinates"`
	Schedule         []DaySchedule `json:"schedule,omitempty"`
	Facilities       []string      `json:"facilities,omitempty"`
	Description      string        `json:"description,omitempty"`
}

// TodaySchedule returns the schedule entry whose day matches now's
// weekday name, or nil when the room has none. Matching is string
// equality on the English weekday name only.
func (r *Room) TodaySchedule(now time.Time) *DaySchedule {
	day := now.Weekday().String()
	for i := range r.Schedule {
		if r.Schedule[i].Day == day {
			return &r.Schedule[i]
		}
	}
	return nil
}

// Booking is a room booking record returned by the API.
type Booking struct {
	ID        string    `json:"_id"`
	RoomID    string    `json:"roomId"`
	UserID    string    `json:"userId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Purpose   string    `json:"purpose,omitempty"`
	Status    string    `json:"status,omitempty"`
}

// BookingRequest is the payload for booking a room.
type BookingRequest struct {
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Purpose   string    `json:"purpose,omitempty"`
}

// Validate checks the fields the UI validates before any API call is
// made: both times set and the end strictly after the start.
func (b BookingRequest) Validate() error {
	if b.StartTime.IsZero() || b.EndTime.IsZero() {
		return NewValidationError("please fill in all required fields")
	}
	if !b.EndTime.After(b.StartTime) {
		return NewValidationError("end time must be after start time")
	}
	return nil
}

// AvailabilityUpdate toggles a room's availability flag. The flag is
// authoritative only via the API; this is a suggestion sent as a mutation.
type AvailabilityUpdate struct {
	IsAvailable      bool `json:"isAvailable"`
	CurrentOccupancy int  `json:"currentOccupancy"`
}
