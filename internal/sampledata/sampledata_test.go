package sampledata

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusnavigator/internal/domain"
)

func TestIsSampleID(t *testing.T) {
	assert.True(t, IsSampleID("sample-event-ongoing"))
	assert.True(t, IsSampleID("sample-1"))
	assert.False(t, IsSampleID("64f1c2"))
	assert.False(t, IsSampleID(""))
}

func TestEvents_DatedRelativeToNow(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	events := Events(now)
	require.Len(t, events, 2)

	assert.Equal(t, domain.EventOngoing, events[0].Status)
	assert.Equal(t, now, events[0].Date)
	assert.Equal(t, domain.EventUpcoming, events[1].Status)
	assert.Equal(t, now.Add(7*24*time.Hour), events[1].Date)

	for _, e := range events {
		assert.True(t, IsSampleID(e.ID), e.ID)
	}
}

func TestEventByID(t *testing.T) {
	e, ok := EventByID("sample-event-upcoming", time.Now())
	require.True(t, ok)
	assert.Equal(t, "Green Campus Community Meetup", e.Title)

	_, ok = EventByID("sample-event-nope", time.Now())
	assert.False(t, ok)
}

func TestFaculty(t *testing.T) {
	profiles := Faculty()
	require.Len(t, profiles, 3)
	for _, f := range profiles {
		assert.True(t, IsSampleID(f.ID), f.ID)
		assert.NotEmpty(t, f.Name)
		assert.NotEmpty(t, f.Department)
	}

	f, ok := FacultyByID("sample-3")
	require.True(t, ok)
	assert.Equal(t, "Dr. Saira Khan", f.Name)

	_, ok = FacultyByID("f1")
	assert.False(t, ok)
}
