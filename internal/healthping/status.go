package healthping

import "sync"

// Style classes the status pill renders with.
const (
	ClassWarning = "warning"
	ClassSuccess = "success"
	ClassDanger  = "danger"
)

// Status is a label paired with its style class. Only the three fixed pairs
// below are ever displayed.
type Status struct {
	Label string `json:"label"`
	Class string `json:"class"`
}

var (
	// StatusChecking is shown before the probe settles.
	StatusChecking = Status{Label: "Connecting…", Class: ClassWarning}
	// StatusOnline is the terminal state for a reachable, healthy API.
	StatusOnline = Status{Label: "Online", Class: ClassSuccess}
	// StatusOffline is the terminal state for every failure mode.
	StatusOffline = Status{Label: "Offline", Class: ClassDanger}
)

// IsZero reports whether s carries no state (probe never ran).
func (s Status) IsZero() bool {
	return s.Label == "" && s.Class == ""
}

// Indicator is the status-pill state. Label and class always change together;
// a reader can never observe a pair mixed from two states.
type Indicator struct {
	mu      sync.RWMutex
	current Status
}

func NewIndicator() *Indicator {
	return &Indicator{}
}

// Set replaces the displayed status atomically.
func (i *Indicator) Set(s Status) {
	i.mu.Lock()
	i.current = s
	i.mu.Unlock()
}

// Current returns the displayed status.
func (i *Indicator) Current() Status {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.current
}
