package status

import (
	"sync"
	"time"
)

const (
	// DefaultAttachDelay is the time between launching and being attached
	DefaultAttachDelay = 500 * time.Millisecond
	// DefaultBannerDuration is how long the banner stays after attaching
	DefaultBannerDuration = 2 * time.Second
)

// Phase is the session status state
type Phase int

const (
	PhaseIdle      Phase = iota // Not attached, no banner
	PhaseLaunching              // Banner shown, waiting for the attach delay
	PhaseAttached               // Attached; banner may still be visible
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLaunching:
		return "launching"
	case PhaseAttached:
		return "attached"
	}
	return "unknown"
}

// Ticket identifies one launch chain. Timer callbacks carry the ticket they
// were scheduled with; a ticket that no longer matches is ignored.
type Ticket uint64

// Status tracks the cosmetic "attached" indicator and the launch banner.
// A launch is a two-step timer chain: Launch shows the banner, Attach marks
// the session attached, Dismiss hides the banner. While a chain is pending
// further launches are ignored.
type Status struct {
	mu sync.RWMutex

	attached      bool
	bannerVisible bool
	pending       bool
	awaitAttach   bool
	generation    Ticket
}

// New creates an idle status
func New() *Status {
	return &Status{}
}

// Launch shows the banner and starts a new chain. It returns false when a
// chain is already pending.
func (s *Status) Launch() (Ticket, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending {
		return s.generation, false
	}

	s.generation++
	s.pending = true
	s.awaitAttach = true
	s.bannerVisible = true
	return s.generation, true
}

// Attach marks the session attached. It must be called with the ticket
// returned by Launch once the attach delay has elapsed.
func (s *Status) Attach(t Ticket) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.pending || t != s.generation || !s.awaitAttach {
		return false
	}
	s.attached = true
	s.awaitAttach = false
	return true
}

// Dismiss hides the banner and completes the chain
func (s *Status) Dismiss(t Ticket) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.pending || t != s.generation || s.awaitAttach {
		return false
	}
	s.bannerVisible = false
	s.pending = false
	return true
}

// Cancel invalidates the pending chain and hides the banner.
// Attached stays true once set.
func (s *Status) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.pending {
		return
	}
	s.generation++
	s.pending = false
	s.awaitAttach = false
	s.bannerVisible = false
}

// Attached reports whether the session has been marked attached
func (s *Status) Attached() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.attached
}

// BannerVisible reports whether the launch banner is shown
func (s *Status) BannerVisible() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bannerVisible
}

// Pending reports whether a launch chain is in progress
func (s *Status) Pending() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pending
}

// Phase returns the current state
func (s *Status) Phase() Phase {
	s.mu.RLock()
	defer s.mu.RUnlock()

	switch {
	case s.attached:
		return PhaseAttached
	case s.pending:
		return PhaseLaunching
	default:
		return PhaseIdle
	}
}
