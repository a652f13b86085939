package domain

// Tab is the three-way partition of offers by activation state.
type Tab string

const (
	TabAll      Tab = "all"
	TabActive   Tab = "active"
	TabInactive Tab = "inactive"
)

// IsValid checks if the tab is one of the known values.
func (t Tab) IsValid() bool {
	switch t {
	case TabAll, TabActive, TabInactive:
		return true
	default:
		return false
	}
}

// Matches reports whether an offer belongs to the tab.
func (t Tab) Matches(o Offer) bool {
	switch t {
	case TabActive:
		return o.IsActive
	case TabInactive:
		return !o.IsActive
	default:
		return true
	}
}
