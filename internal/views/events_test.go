package views

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusnavigator/internal/domain"
)

func testEvents() []domain.Event {
	return []domain.Event{
		{ID: "e1", Title: "Robotics Workshop", Description: "Build a line follower", Venue: domain.Venue{Building: "Innovation Tower"}},
		{ID: "e2", Title: "Annual Sports Meet", Description: "Track and field", Venue: domain.Venue{Building: "Stadium"}},
	}
}

func TestEventsList_RealDataHidesPlaceholders(t *testing.T) {
	stub := newAPIStub(t)
	stub.serve("GET /events", testEvents())

	list, err := NewEvents(stub.client()).List(context.Background(), studentSession(), domain.EventQuery{})
	require.NoError(t, err)
	assert.False(t, list.Sample)
	assert.Empty(t, list.Notice)
	assert.Len(t, list.Events, 2)
}

func TestEventsList_EmptyBackendShowsPlaceholders(t *testing.T) {
	stub := newAPIStub(t)
	stub.serve("GET /events", []domain.Event{})

	list, err := NewEvents(stub.client()).List(context.Background(), studentSession(), domain.EventQuery{})
	require.NoError(t, err)
	assert.True(t, list.Sample)
	assert.Empty(t, list.Notice)
	require.Len(t, list.Events, 2)
	assert.Equal(t, "sample-event-ongoing", list.Events[0].ID)
	assert.Equal(t, "sample-event-upcoming", list.Events[1].ID)
}

func TestEventsList_FetchFailureShowsPlaceholdersWithNotice(t *testing.T) {
	stub := newAPIStub(t)
	stub.fail("GET /events", 503, "events service down")

	list, err := NewEvents(stub.client()).List(context.Background(), studentSession(), domain.EventQuery{})
	require.NoError(t, err)
	assert.True(t, list.Sample)
	assert.Equal(t, "events service down", list.Notice)
	assert.Len(t, list.Events, 2)
}

func TestEventsList_Search(t *testing.T) {
	stub := newAPIStub(t)
	stub.serve("GET /events", testEvents())

	list, err := NewEvents(stub.client()).List(context.Background(), studentSession(), domain.EventQuery{Search: "stadium"})
	require.NoError(t, err)
	require.Len(t, list.Events, 1)
	assert.Equal(t, "Annual Sports Meet", list.Events[0].Title)
}

func TestEventsGet_SampleIDResolvesLocally(t *testing.T) {
	stub := newAPIStub(t)

	detail, err := NewEvents(stub.client()).Get(context.Background(), studentSession(), "sample-event-ongoing")
	require.NoError(t, err)
	assert.True(t, detail.Sample)
	assert.Equal(t, "AI Innovation Sprint", detail.Event.Title)
	assert.False(t, detail.Registered)
	assert.Empty(t, stub.hits)
}

func TestEventsGet_ReportsRegistration(t *testing.T) {
	stub := newAPIStub(t)
	stub.serve("GET /events/e1", domain.Event{
		ID: "e1", Title: "Robotics Workshop",
		Attendees: []domain.Attendee{{ID: "u1"}},
	})

	detail, err := NewEvents(stub.client()).Get(context.Background(), studentSession(), "e1")
	require.NoError(t, err)
	assert.True(t, detail.Registered)
}

func TestEventsMutations_SampleIDsReadOnly(t *testing.T) {
	stub := newAPIStub(t)
	view := NewEvents(stub.client())
	sess := adminSession()
	ctx := context.Background()

	_, err := view.Update(ctx, sess, "sample-event-ongoing", domain.Event{})
	assert.ErrorIs(t, err, domain.ErrSampleReadOnly)

	_, err = view.Delete(ctx, sess, "sample-event-upcoming")
	assert.ErrorIs(t, err, domain.ErrSampleReadOnly)

	_, err = view.Register(ctx, sess, "sample-event-ongoing", domain.RegistrationForm{})
	assert.ErrorIs(t, err, domain.ErrSampleReadOnly)

	assert.Empty(t, stub.hits)
}

func TestEventsRegister_RefetchesRoster(t *testing.T) {
	stub := newAPIStub(t)
	stub.serve("POST /events/e1/register", nil)
	stub.serve("GET /events/e1", domain.Event{
		ID: "e1", Attendees: []domain.Attendee{{ID: "u1"}},
	})

	detail, err := NewEvents(stub.client()).Register(context.Background(), studentSession(), "e1", domain.RegistrationForm{
		Phone: "9876543210", Department: "CSE",
	})
	require.NoError(t, err)
	assert.True(t, detail.Registered)
	assert.Equal(t, 1, stub.hits["POST /events/e1/register"])
	assert.Equal(t, 1, stub.hits["GET /events/e1"])
}
