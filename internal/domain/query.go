package domain

import "net/url"

// List queries map UI filter state onto the campus API's query-parameter
// bag. Zero values are omitted; the free-text Search field is forwarded
// to the API and additionally applied client-side by the view layer.

// RoomQuery filters GET /rooms.
type RoomQuery struct {
	Type      string
	Building  string
	Available *bool
	Search    string
}

func (q RoomQuery) Values() url.Values {
	v := url.Values{}
	setNonEmpty(v, "type", q.Type)
	setNonEmpty(v, "building", q.Building)
	if q.Available != nil {
		if *q.Available {
			v.Set("available", "true")
		} else {
			v.Set("available", "false")
		}
	}
	setNonEmpty(v, "search", q.Search)
	return v
}

// EventQuery filters GET /events. Upcoming takes precedence over Status,
// matching the status filter's behavior in the UI.
type EventQuery struct {
	Status   string
	Category string
	Date     string
	Upcoming bool
	Search   string
}

func (q EventQuery) Values() url.Values {
	v := url.Values{}
	if q.Upcoming {
		v.Set("upcoming", "true")
	} else {
		setNonEmpty(v, "status", q.Status)
	}
	setNonEmpty(v, "category", q.Category)
	setNonEmpty(v, "date", q.Date)
	setNonEmpty(v, "search", q.Search)
	return v
}

// FacultyQuery filters GET /faculty.
type FacultyQuery struct {
	Department string
	Available  *bool
	Search     string
}

func (q FacultyQuery) Values() url.Values {
	v := url.Values{}
	setNonEmpty(v, "department", q.Department)
	if q.Available != nil && *q.Available {
		v.Set("available", "true")
	}
	setNonEmpty(v, "search", q.Search)
	return v
}

// ResourceQuery filters GET /resources.
type ResourceQuery struct {
	Type   string
	Status string
	Search string
}

func (q ResourceQuery) Values() url.Values {
	v := url.Values{}
	setNonEmpty(v, "type", q.Type)
	setNonEmpty(v, "status", q.Status)
	setNonEmpty(v, "search", q.Search)
	return v
}

func setNonEmpty(v url.Values, key, val string) {
	if val != "" {
		v.Set(key, val)
	}
}
