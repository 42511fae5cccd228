package issue

// State represents the upstream open/closed state of an issue.
type State string

const (
	// StateOpen indicates the issue is open upstream.
	StateOpen State = "open"

	// StateClosed indicates the issue is closed upstream.
	StateClosed State = "closed"
)

// ValidStates returns all valid state values.
func ValidStates() []State {
	return []State{StateOpen, StateClosed}
}

// IsValid returns true if the state is a known valid value.
func (s State) IsValid() bool {
	for _, valid := range ValidStates() {
		if s == valid {
			return true
		}
	}
	return false
}

// ManualStatus is a user-assigned status override. The zero value
// StatusNone means "derive the category automatically".
type ManualStatus string

const (
	// StatusNone means no override; the category is derived from the
	// issue's upstream state and annotations.
	StatusNone ManualStatus = ""

	// StatusRed forces the needs-attention category.
	StatusRed ManualStatus = "red"

	// StatusYellow forces the in-discussion category.
	StatusYellow ManualStatus = "yellow"

	// StatusLightGreen forces the resolved category. Setting it also
	// implies closing the issue upstream.
	StatusLightGreen ManualStatus = "light_green"

	// StatusDarkGreen forces the archived category. Setting it also
	// implies closing the issue upstream.
	StatusDarkGreen ManualStatus = "dark_green"
)

// ValidManualStatuses returns the settable status values, excluding
// StatusNone.
func ValidManualStatuses() []ManualStatus {
	return []ManualStatus{StatusRed, StatusYellow, StatusLightGreen, StatusDarkGreen}
}

// IsValid returns true if the status is a known settable value.
func (m ManualStatus) IsValid() bool {
	for _, valid := range ValidManualStatuses() {
		if m == valid {
			return true
		}
	}
	return false
}

// ImpliesClosed reports whether setting this status implies closing the
// issue upstream.
func (m ManualStatus) ImpliesClosed() bool {
	return m == StatusLightGreen || m == StatusDarkGreen
}

// ImpliesOpen reports whether setting this status implies reopening the
// issue upstream.
func (m ManualStatus) ImpliesOpen() bool {
	return m == StatusRed || m == StatusYellow
}

// Category is the derived display category for an issue. It is computed on
// every render and never persisted.
type Category string

const (
	// CategoryRed marks open issues awaiting a first response.
	CategoryRed Category = "red"

	// CategoryYellow marks open issues with ongoing discussion.
	CategoryYellow Category = "yellow"

	// CategoryLightGreen marks resolved issues.
	CategoryLightGreen Category = "light_green"

	// CategoryDarkGreen marks archived issues.
	CategoryDarkGreen Category = "dark_green"
)

// Rank returns the sort rank for a category. Lower ranks sort first.
func (c Category) Rank() int {
	switch c {
	case CategoryRed:
		return 0
	case CategoryYellow:
		return 1
	case CategoryLightGreen:
		return 2
	case CategoryDarkGreen:
		return 3
	default:
		return 4
	}
}
