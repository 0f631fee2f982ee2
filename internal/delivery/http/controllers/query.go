package controllers

import (
	"net/url"

	"campusnavigator/internal/domain"
)

// Query parsing maps UI filter state, forwarded verbatim by the browser,
// onto the typed list queries. The literal "all" means no filter, same
// as the select inputs that produce it.

func roomQuery(v url.Values) domain.RoomQuery {
	q := domain.RoomQuery{
		Type:     allIsEmpty(v.Get("type")),
		Building: allIsEmpty(v.Get("building")),
		Search:   v.Get("search"),
	}
	switch v.Get("available") {
	case "true":
		t := true
		q.Available = &t
	case "false":
		f := false
		q.Available = &f
	}
	return q
}

func eventQuery(v url.Values) domain.EventQuery {
	q := domain.EventQuery{
		Category: allIsEmpty(v.Get("category")),
		Date:     v.Get("date"),
		Search:   v.Get("search"),
	}
	status := v.Get("status")
	if v.Get("upcoming") == "true" || status == domain.EventUpcoming {
		q.Upcoming = true
	} else {
		q.Status = allIsEmpty(status)
	}
	return q
}

func facultyQuery(v url.Values) domain.FacultyQuery {
	q := domain.FacultyQuery{
		Department: allIsEmpty(v.Get("department")),
		Search:     v.Get("search"),
	}
	if v.Get("available") == "true" {
		t := true
		q.Available = &t
	}
	return q
}

func resourceQuery(v url.Values) domain.ResourceQuery {
	return domain.ResourceQuery{
		Type:   allIsEmpty(v.Get("type")),
		Status: allIsEmpty(v.Get("status")),
		Search: v.Get("search"),
	}
}

func allIsEmpty(s string) string {
	if s == "all" {
		return ""
	}
	return s
}
