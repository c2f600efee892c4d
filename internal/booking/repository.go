package booking

// SlotPatch describes a partial slot update applied after a successful
// server mutation. Nil fields are left unchanged.
type SlotPatch struct {
	Status      *Status
	StatusLabel *string
	Notes       *string
	Owner       *string
}

// SlotRepository is the in-memory cache of slot lists for the
// currently selected date, keyed by resource id. It is rebuilt
// wholesale on every reload and mutated in place after successful
// register and update operations. There is no delete: unregistering a
// slot only clears its owner.
type SlotRepository struct {
	slots map[string][]*Slot
}

// NewSlotRepository creates an empty repository.
func NewSlotRepository() *SlotRepository {
	return &SlotRepository{slots: make(map[string][]*Slot)}
}

// Reset drops all cached slot lists.
func (r *SlotRepository) Reset() {
	r.slots = make(map[string][]*Slot)
}

// ReplaceAll replaces the slot list for a resource, annotating each
// slot with the resource's display name for later rendering.
func (r *SlotRepository) ReplaceAll(res Resource, slots []*Slot) {
	for _, s := range slots {
		s.ResourceName = res.DisplayName
	}
	r.slots[res.ID] = slots
}

// Slots returns the cached slot list for a resource, or nil.
func (r *SlotRepository) Slots(resourceID string) []*Slot {
	return r.slots[resourceID]
}

// Find returns the first slot for the resource matching the
// predicate, scanning in list order.
func (r *SlotRepository) Find(resourceID string, pred func(*Slot) bool) *Slot {
	for _, s := range r.slots[resourceID] {
		if pred(s) {
			return s
		}
	}
	return nil
}

// FindByAppointment scans all resources for a slot with the given
// appointment id. Resource scan order follows the provided resource
// list so lookups are deterministic.
func (r *SlotRepository) FindByAppointment(resources []Resource, appointmentID string) *Slot {
	if appointmentID == "" {
		return nil
	}
	for _, res := range resources {
		if s := r.Find(res.ID, func(s *Slot) bool { return s.AppointmentID == appointmentID }); s != nil {
			return s
		}
	}
	return nil
}

// MutateInPlace locates a slot by appointment id within one resource's
// list and merges the patch into it. Returns ErrSlotNotFound if no
// slot matches. Used after a successful server mutation to avoid a
// full reload.
func (r *SlotRepository) MutateInPlace(resourceID, appointmentID string, patch SlotPatch) error {
	s := r.Find(resourceID, func(s *Slot) bool { return s.AppointmentID == appointmentID })
	if s == nil {
		return ErrSlotNotFound
	}
	if patch.Status != nil {
		s.Status = *patch.Status
	}
	if patch.StatusLabel != nil {
		s.StatusLabel = *patch.StatusLabel
	}
	if patch.Notes != nil {
		s.Notes = *patch.Notes
	}
	if patch.Owner != nil {
		s.OwnerCustomerID = *patch.Owner
	}
	return nil
}

// ClearOwner clears the owner of the slot holding the given
// appointment id, wherever it lives. The slot itself stays cached.
func (r *SlotRepository) ClearOwner(appointmentID string) {
	if appointmentID == "" {
		return
	}
	for _, list := range r.slots {
		for _, s := range list {
			if s.AppointmentID == appointmentID {
				s.OwnerCustomerID = ""
				return
			}
		}
	}
}
