package booking

// CellState is the visual classification of a grid cell.
type CellState int

const (
	CellEmpty CellState = iota
	CellAvailable
	CellBooked
	CellRegistered
)

// String returns a short name for the state, used in legends and logs.
func (c CellState) String() string {
	switch c {
	case CellAvailable:
		return "available"
	case CellBooked:
		return "booked"
	case CellRegistered:
		return "registered"
	default:
		return "empty"
	}
}

// OwnedBy reports whether the clicked slot belongs to the session:
// the tracker holds its appointment id, or, when trustServer is set,
// the server-reported owner matches the session customer. When the
// flag is off, server ownership is display-only and never decides.
func OwnedBy(s *Slot, tracker *Tracker, customerID string, trustServer bool) bool {
	if s == nil {
		return false
	}
	if tracker.IsCurrent(s.AppointmentID) {
		return true
	}
	return trustServer && s.OwnerCustomerID != "" && s.OwnerCustomerID == customerID
}

// Classify maps a slot to exactly one visual state. Precedence:
// registered > available > booked. A nil slot is an empty cell.
func Classify(s *Slot, tracker *Tracker, customerID string, trustServer bool) CellState {
	if s == nil {
		return CellEmpty
	}
	if OwnedBy(s, tracker, customerID, trustServer) {
		return CellRegistered
	}
	if s.Available() {
		return CellAvailable
	}
	return CellBooked
}
