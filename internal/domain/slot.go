package domain

// SlotCategory represents the reservation class of a parking slot
type SlotCategory string

const (
	CategoryGeneral          SlotCategory = "general"
	CategoryDisabledReserved SlotCategory = "disabled_reserved"
	CategoryElderlyReserved  SlotCategory = "elderly_reserved"
)

// SlotStatus represents the per-date status of a parking slot
type SlotStatus string

const (
	StatusFree     SlotStatus = "free"
	StatusBooked   SlotStatus = "booked"
	StatusOccupied SlotStatus = "occupied"
)

// Slot represents a single parking space.
// ID encodes mall, level and number, e.g. "M1-L1-S3".
type Slot struct {
	ID             string
	MallID         string
	LevelID        int
	SlotNumber     int
	Category       SlotCategory
	OnlineBookable bool // general slots outside the allow-list are first-come-first-served
	GraphNodeID    string
	AnchorNodeID   string
	Occupied       bool // physical occupancy, reported by external sensors
}

// IsReserved returns true if the slot belongs to a trait-restricted category
func (s *Slot) IsReserved() bool {
	return s.Category == CategoryDisabledReserved || s.Category == CategoryElderlyReserved
}

// SlotView is the per-query materialization of a slot's status
// for a given date and requesting user. Derived, never stored.
type SlotView struct {
	Slot
	Status      SlotStatus
	IsMyBooking bool
}

// IsFree returns true if the slot can still be taken for the viewed date
func (v *SlotView) IsFree() bool {
	return v.Status == StatusFree
}

// MaterializeSlotView computes the status of a slot for a given date.
// Physical occupancy only applies when the requested date is today: for
// tomorrow the sensors say nothing yet. An existing booking for the date
// overrides occupancy-free status to booked.
func MaterializeSlotView(slot Slot, booking *Booking, sameDay bool, requestingUserID string) SlotView {
	view := SlotView{Slot: slot, Status: StatusFree}

	if sameDay && slot.Occupied {
		view.Status = StatusOccupied
	}

	if booking != nil {
		view.Status = StatusBooked
		if requestingUserID != "" && booking.UserID == requestingUserID {
			view.IsMyBooking = true
		}
	}

	return view
}
