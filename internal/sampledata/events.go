package sampledata

import (
	"time"

	"campusnavigator/internal/domain"
)

// Events returns the placeholder event set: one ongoing and one upcoming
// event, dated relative to now so the list always looks current.
func Events(now time.Time) []domain.Event {
	return []domain.Event{
		{
			ID:          "sample-event-ongoing",
			Title:       "AI Innovation Sprint",
			Description: "Hands-on build sprint where cross-functional teams prototype AI-powered campus tools.",
			Venue: domain.Venue{
				Building: "Innovation Lab",
				RoomID:   "LAB-204",
				Floor:    2,
			},
			Date:      now,
			StartTime: "09:00 AM",
			EndTime:   "05:00 PM",
			Organizer: "Center for Emerging Technologies",
			Category:  domain.EventCategoryWorkshop,
			Status:    domain.EventOngoing,
			Attendees: []domain.Attendee{
				{ID: "sample-user-1", Name: "Priya Sharma", Email: "priya@students.campus.edu"},
				{ID: "sample-user-2", Name: "Rahul Nair", Email: "rahul@students.campus.edu"},
			},
			Registrations: []domain.Registration{
				{
					User:       domain.Attendee{ID: "sample-user-1", Name: "Priya Sharma", Email: "priya@students.campus.edu"},
					Phone:      "+91 98765 11111",
					Department: "Computer Science",
					Notes:      "Working on campus assistant bot demo.",
				},
				{
					User:       domain.Attendee{ID: "sample-user-2", Name: "Rahul Nair", Email: "rahul@students.campus.edu"},
					Phone:      "+91 91234 56789",
					Department: "Electronics",
					Notes:      "Building hardware interface for the sprint.",
				},
			},
			MaxAttendees: 30,
		},
		{
			ID:          "sample-event-upcoming",
			Title:       "Green Campus Community Meetup",
			Description: "Monthly meetup to share sustainability ideas and campus improvements.",
			Venue: domain.Venue{
				Building: "Community Hall",
				RoomID:   "HALL-1",
				Floor:    1,
			},
			Date:      now.Add(7 * 24 * time.Hour),
			StartTime: "04:00 PM",
			EndTime:   "06:00 PM",
			Organizer: "Student Affairs Council",
			Category:  domain.EventCategoryMeeting,
			Status:    domain.EventUpcoming,
		},
	}
}

// EventByID returns the placeholder event matching id, if any.
func EventByID(id string, now time.Time) (domain.Event, bool) {
	for _, e := range Events(now) {
		if e.ID == id {
			return e, true
		}
	}
	return domain.Event{}, false
}
