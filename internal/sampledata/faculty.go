package sampledata

import "campusnavigator/internal/domain"

// Faculty returns the placeholder faculty directory.
func Faculty() []domain.FacultyProfile {
	return []domain.FacultyProfile{
		{
			ID:          "sample-1",
			Name:        "Dr. Ananya Rao",
			Department:  "Computer Science",
			Designation: "Associate Professor",
			Cabin:       domain.Cabin{RoomID: "CAB-301", Building: "Academic Block A", Floor: 3},
			Availability: domain.FacultyAvailability{
				IsAvailable:   true,
				CurrentStatus: "Available in cabin",
				Schedule: []domain.DaySchedule{
					{Day: "Monday", Slots: []domain.TimeSlot{{StartTime: "10:00 AM", EndTime: "1:00 PM"}}},
					{Day: "Wednesday", Slots: []domain.TimeSlot{{StartTime: "2:00 PM", EndTime: "5:00 PM"}}},
				},
			},
			Contact: domain.Contact{
				Email:     "ananya.rao@campus.edu",
				Phone:     "+91 98765 43210",
				Extension: "2211",
			},
		},
		{
			ID:          "sample-2",
			Name:        "Prof. Karthik Menon",
			Department:  "Electronics",
			Designation: "HOD, ECE",
			Cabin:       domain.Cabin{RoomID: "CAB-215", Building: "Innovation Tower", Floor: 2},
			Availability: domain.FacultyAvailability{
				IsAvailable:   false,
				CurrentStatus: "In class",
				Schedule: []domain.DaySchedule{
					{Day: "Tuesday", Slots: []domain.TimeSlot{{StartTime: "11:00 AM", EndTime: "1:00 PM"}}},
					{Day: "Thursday", Slots: []domain.TimeSlot{{StartTime: "3:00 PM", EndTime: "6:00 PM"}}},
				},
			},
			Contact: domain.Contact{
				Email:     "karthik.menon@campus.edu",
				Phone:     "+91 98500 12345",
				Extension: "2105",
			},
		},
		{
			ID:          "sample-3",
			Name:        "Dr. Saira Khan",
			Department:  "Mechanical",
			Designation: "Assistant Professor",
			Cabin:       domain.Cabin{RoomID: "CAB-118", Building: "Main Admin Block", Floor: 1},
			Availability: domain.FacultyAvailability{
				IsAvailable:   true,
				CurrentStatus: "Available for consultation",
				Schedule: []domain.DaySchedule{
					{Day: "Monday", Slots: []domain.TimeSlot{{StartTime: "9:00 AM", EndTime: "11:00 AM"}}},
					{Day: "Friday", Slots: []domain.TimeSlot{{StartTime: "1:00 PM", EndTime: "4:00 PM"}}},
				},
			},
			Contact: domain.Contact{
				Email:     "saira.khan@campus.edu",
				Phone:     "+91 98111 22334",
				Extension: "2330",
			},
		},
	}
}

// FacultyByID returns the placeholder profile matching id, if any.
func FacultyByID(id string) (domain.FacultyProfile, bool) {
	for _, f := range Faculty() {
		if f.ID == id {
			return f, true
		}
	}
	return domain.FacultyProfile{}, false
}
