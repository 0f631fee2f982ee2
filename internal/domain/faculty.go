package domain

import "time"

// Cabin locates a faculty member's cabin on campus.
type Cabin struct {
	RoomID   string `json:"roomId"`
	Building string `json:"building"`
	Floor    int    `json:"floor"`
}

// FacultyAvailability is the availability block of a faculty profile.
type FacultyAvailability struct {
	IsAvailable   bool          `json:"isAvailable"`
	CurrentStatus string        `json:"currentStatus,omitempty"`
	Schedule      []DaySchedule `json:"schedule,omitempty"`
}

// Contact holds a faculty member's contact details.
type Contact struct {
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Extension string `json:"extension,omitempty"`
}

// FacultyProfile is a faculty member as returned by the API. Profiles
// are read-mostly in the gateway; only admins push updates.
type FacultyProfile struct {
	ID           string              `json:"_id"`
	Name         string              `json:"name"`
	Department   string              `json:"department"`
	Designation  string              `json:"designation,omitempty"`
	Cabin        Cabin               `json:"cabin"`
	Availability FacultyAvailability `json:"availability"`
	Contact      Contact             `json:"contact"`
}

// TodaySlots returns the consultation slots whose day matches now's
// weekday name, or nil when there are none.
func (f *FacultyProfile) TodaySlots(now time.Time) []TimeSlot {
	day := now.Weekday().String()
	for _, s := range f.Availability.Schedule {
		if s.Day == day {
			return s.Slots
		}
	}
	return nil
}

// FacultyAvailabilityUpdate is the payload for PUT /faculty/{id}/availability.
type FacultyAvailabilityUpdate struct {
	IsAvailable   bool   `json:"isAvailable"`
	CurrentStatus string `json:"currentStatus,omitempty"`
}
