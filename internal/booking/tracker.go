package booking

// Tracker holds the session's single active registration, if any.
// It is the sole formal definition of "the slot this session owns":
// cleared on every fresh load, set only by successful local actions
// (or seeded from server ownership when the trust flag is enabled).
type Tracker struct {
	current *Registration
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Clear drops the current registration.
func (t *Tracker) Clear() {
	t.current = nil
}

// Set records a registration as the session's active one.
func (t *Tracker) Set(reg Registration) {
	r := reg
	t.current = &r
}

// Current returns the active registration, or nil.
func (t *Tracker) Current() *Registration {
	return t.current
}

// IsCurrent returns true iff the tracker holds a registration with
// the given appointment id.
func (t *Tracker) IsCurrent(appointmentID string) bool {
	return t.current != nil && appointmentID != "" && t.current.AppointmentID == appointmentID
}

// SeedFromSlots seeds the tracker from the first slot whose owner
// matches the session customer, scanning resources in order and each
// resource's slot list in order. Only called when server-reported
// ownership is trusted. Returns true if a registration was seeded.
func (t *Tracker) SeedFromSlots(repo *SlotRepository, resources []Resource, customerID string) bool {
	if customerID == "" {
		return false
	}
	for _, res := range resources {
		s := repo.Find(res.ID, func(s *Slot) bool {
			return s.OwnerCustomerID == customerID && s.HasAppointment()
		})
		if s != nil {
			t.Set(Registration{
				AppointmentID: s.AppointmentID,
				ResourceID:    s.ResourceID,
				TimeFrom:      s.TimeFrom,
				TimeTo:        s.TimeTo,
			})
			return true
		}
	}
	return false
}
