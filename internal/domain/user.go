package domain

// User represents a mall visitor with trait-based priority flags
type User struct {
	ID         string
	Username   string
	IsDisabled bool
	IsElderly  bool
}

// PriorityCategory returns the reserved category the user qualifies for.
// Disabled takes precedence over elderly when both flags are set.
// Returns CategoryGeneral when the user has no priority traits.
func (u *User) PriorityCategory() SlotCategory {
	if u.IsDisabled {
		return CategoryDisabledReserved
	}
	if u.IsElderly {
		return CategoryElderlyReserved
	}
	return CategoryGeneral
}
