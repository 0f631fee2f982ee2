package domain

import "time"

// Event lifecycle statuses.
const (
	EventUpcoming  = "upcoming"
	EventOngoing   = "ongoing"
	EventCompleted = "completed"
	EventCancelled = "cancelled"
)

// Event categories accepted by the API's category filter.
const (
	EventCategorySeminar  = "seminar"
	EventCategoryWorkshop = "workshop"
	EventCategoryFest     = "fest"
	EventCategoryExam     = "exam"
	EventCategoryMeeting  = "meeting"
	EventCategoryOther    = "other"
)

// Venue locates an event inside a building.
type Venue struct {
	Building string `json:"building"`
	RoomID   string `json:"roomId"`
	Floor    int    `json:"floor,omitempty"`
}

// Attendee is a user listed on an event's attendee roster.
type Attendee struct {
	ID    string `json:"_id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// Registration is one submitted registration form for an event.
type Registration struct {
	User       Attendee `json:"userId"`
	Phone      string   `json:"phone,omitempty"`
	Department string   `json:"department,omitempty"`
	Notes      string   `json:"notes,omitempty"`
}

// Event is a campus event as returned by the API.
type Event struct {
	ID            string         `json:"_id"`
	Title         string         `json:"title"`
	Description   string         `json:"description,omitempty"`
	Venue         Venue          `json:"venue"`
	Date          time.Time      `json:"date"`
	StartTime     string         `json:"startTime"`
	EndTime       string         `json:"endTime"`
	Organizer     string         `json:"organizer,omitempty"`
	Category      string         `json:"category"`
	Status        string         `json:"status"`
	Attendees     []Attendee     `json:"attendees,omitempty"`
	Registrations []Registration `json:"registrations,omitempty"`
	MaxAttendees  int            `json:"maxAttendees,omitempty"`
}

// Registered reports whether the user appears on the attendee roster.
// It drives the "Fill registration form" versus "View registration"
// branch in the UI and nothing else.
func (e *Event) Registered(userID string) bool {
	for _, a := range e.Attendees {
		if a.ID == userID {
			return true
		}
	}
	return false
}

// RegistrationForm is the payload submitted with an event registration.
type RegistrationForm struct {
	Phone      string `json:"phone,omitempty"`
	Department string `json:"department,omitempty"`
	Notes      string `json:"notes,omitempty"`
}
