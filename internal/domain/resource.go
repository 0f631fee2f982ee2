package domain

import "time"

// Resource statuses. Transitions are requested via the API, never
// computed locally.
const (
	ResourceAvailable   = "available"
	ResourceOccupied    = "occupied"
	ResourceReserved    = "reserved"
	ResourceMaintenance = "maintenance"
)

// Resource types known to the API.
const (
	ResourceLibrarySeat  = "library-seat"
	ResourceComputer     = "computer"
	ResourceLabEquipment = "lab-equipment"
	ResourceStudyRoom    = "study-room"
	ResourceOther        = "other"
)

// Location places a resource inside a building.
type Location struct {
	Building string `json:"building"`
	RoomID   string `json:"roomId"`
	Floor    int    `json:"floor,omitempty"`
}

// ResourceMetadata holds per-type extras the API attaches to a resource.
type ResourceMetadata struct {
	SeatNumber    string `json:"seatNumber,omitempty"`
	ComputerID    string `json:"computerId,omitempty"`
	EquipmentName string `json:"equipmentName,omitempty"`
}

// Reservation is the active reservation on a resource, when any.
type Reservation struct {
	UserID    string    `json:"userId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

// Resource is a shared campus resource (library seat, computer, lab
// equipment...) as returned by the API.
type Resource struct {
	ID          string            `json:"_id"`
	Name        string            `json:"name"`
	Type        string            `json:"type"`
	Status      string            `json:"status"`
	Location    Location          `json:"location"`
	Reservation *Reservation      `json:"reservation,omitempty"`
	Metadata    *ResourceMetadata `json:"metadata,omitempty"`
}

// ReservationRequest is the payload for reserving a resource.
type ReservationRequest struct {
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

// Validate mirrors the UI-side check: both times are required and the
// end must come after the start.
func (r ReservationRequest) Validate() error {
	if r.StartTime.IsZero() || r.EndTime.IsZero() {
		return NewValidationError("select both start and end time")
	}
	if !r.EndTime.After(r.StartTime) {
		return NewValidationError("end time must be after start time")
	}
	return nil
}

// StatusUpdate is the payload for PUT /resources/{id}/status.
type StatusUpdate struct {
	Status string `json:"status"`
}

// Validate rejects statuses outside the API's enum.
func (s StatusUpdate) Validate() error {
	switch s.Status {
	case ResourceAvailable, ResourceOccupied, ResourceReserved, ResourceMaintenance:
		return nil
	}
	return NewValidationError("invalid resource status")
}
