package views

import (
	"context"
	"time"

	"campusnavigator/internal/adapters/campus"
	"campusnavigator/internal/domain"
	"campusnavigator/internal/sampledata"
	"campusnavigator/internal/session"
)

var facultyEvents = []string{"faculty-updated", "faculty-availability-updated"}

// FacultyList is the faculty directory view payload.
type FacultyList struct {
	Faculty   []domain.FacultyProfile `json:"faculty"`
	Sample    bool                    `json:"sample"`
	Notice    string                  `json:"notice,omitempty"`
	CanManage bool                    `json:"canManage"`
}

// FacultyDetail is the faculty detail view payload.
type FacultyDetail struct {
	Profile    domain.FacultyProfile `json:"profile"`
	TodaySlots []domain.TimeSlot     `json:"todaySlots,omitempty"`
	Sample     bool                  `json:"sample"`
	CanManage  bool                  `json:"canManage"`
}

// Faculty is the faculty view service.
type Faculty struct {
	api *campus.Client
	now func() time.Time
}

// NewFaculty returns the faculty view service.
func NewFaculty(api *campus.Client) *Faculty {
	return &Faculty{api: api, now: time.Now}
}

// Watch binds the directory's push events to fn. The detail page binds
// the same two events, scoped to a single profile by its own refetch.
func (v *Faculty) Watch(n Notifier, fn func()) (unbind func()) {
	return n.Subscribe(facultyEvents, fn)
}

// WatchDetail binds the same events as Watch; faculty pushes do not
// distinguish collection from detail changes.
func (v *Faculty) WatchDetail(n Notifier, fn func()) (unbind func()) {
	return n.Subscribe(facultyEvents, fn)
}

// List fetches the directory, falling back to the placeholder profiles
// when the API has none or cannot be reached. Search matches name,
// department, and designation.
func (v *Faculty) List(ctx context.Context, sess *session.Session, q domain.FacultyQuery) (*FacultyList, error) {
	canManage := sess.User.Role.CanManage()

	profiles, err := v.api.ListFaculty(ctx, sess.Token, q)
	if err != nil {
		return &FacultyList{
			Faculty:   sampledata.Faculty(),
			Sample:    true,
			Notice:    domain.UpstreamMessage(err, "Unable to load faculty directory"),
			CanManage: canManage,
		}, nil
	}
	if len(profiles) == 0 {
		return &FacultyList{Faculty: sampledata.Faculty(), Sample: true, CanManage: canManage}, nil
	}

	filtered := make([]domain.FacultyProfile, 0, len(profiles))
	for _, f := range profiles {
		if matchesSearch(q.Search, f.Name, f.Department, f.Designation) {
			filtered = append(filtered, f)
		}
	}
	return &FacultyList{Faculty: filtered, CanManage: canManage}, nil
}

// Get resolves a profile by id, locally for placeholder ids, and
// derives today's consultation slots.
func (v *Faculty) Get(ctx context.Context, sess *session.Session, id string) (*FacultyDetail, error) {
	if sample, ok := sampledata.FacultyByID(id); ok {
		return &FacultyDetail{
			Profile:    sample,
			TodaySlots: sample.TodaySlots(v.now()),
			Sample:     true,
			CanManage:  sess.User.Role.CanManage(),
		}, nil
	}
	profile, err := v.api.GetFaculty(ctx, sess.Token, id)
	if err != nil {
		return nil, err
	}
	return &FacultyDetail{
		Profile:    *profile,
		TodaySlots: profile.TodaySlots(v.now()),
		CanManage:  sess.User.Role.CanManage(),
	}, nil
}

// Create creates a profile, then refetches the directory.
func (v *Faculty) Create(ctx context.Context, sess *session.Session, profile domain.FacultyProfile) (*FacultyList, error) {
	if _, err := v.api.CreateFaculty(ctx, sess.Token, profile); err != nil {
		return nil, err
	}
	return v.List(ctx, sess, domain.FacultyQuery{})
}

// Update replaces a profile's editable fields, then refetches it.
func (v *Faculty) Update(ctx context.Context, sess *session.Session, id string, profile domain.FacultyProfile) (*FacultyDetail, error) {
	if sampledata.IsSampleID(id) {
		return nil, domain.ErrSampleReadOnly
	}
	if _, err := v.api.UpdateFaculty(ctx, sess.Token, id, profile); err != nil {
		return nil, err
	}
	return v.Get(ctx, sess, id)
}

// UpdateAvailability updates the availability status, then refetches
// the profile.
func (v *Faculty) UpdateAvailability(ctx context.Context, sess *session.Session, id string, u domain.FacultyAvailabilityUpdate) (*FacultyDetail, error) {
	if sampledata.IsSampleID(id) {
		return nil, domain.ErrSampleReadOnly
	}
	if err := v.api.UpdateFacultyAvailability(ctx, sess.Token, id, u); err != nil {
		return nil, err
	}
	return v.Get(ctx, sess, id)
}
