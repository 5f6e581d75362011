package clock

import "time"

// Scheduler runs a callback after a delay. The returned cancel func stops a
// pending callback; cancelling after it fired is a no-op.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) (cancel func())
}

type RealScheduler struct{}

func NewRealScheduler() Scheduler {
	return &RealScheduler{}
}

func (s *RealScheduler) AfterFunc(d time.Duration, f func()) func() {
	t := time.AfterFunc(d, f)
	return func() { t.Stop() }
}

// ManualScheduler collects callbacks and fires them only when told to,
// keeping timer-driven behavior deterministic in tests.
type ManualScheduler struct {
	pending []*manualEntry
}

type manualEntry struct {
	delay     time.Duration
	f         func()
	cancelled bool
}

func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (s *ManualScheduler) AfterFunc(d time.Duration, f func()) func() {
	e := &manualEntry{delay: d, f: f}
	s.pending = append(s.pending, e)
	return func() { e.cancelled = true }
}

// FireAll runs every pending non-cancelled callback in scheduling order.
func (s *ManualScheduler) FireAll() {
	entries := s.pending
	s.pending = nil
	for _, e := range entries {
		if !e.cancelled {
			e.f()
		}
	}
}

// PendingCount reports callbacks that are scheduled and not cancelled.
func (s *ManualScheduler) PendingCount() int {
	n := 0
	for _, e := range s.pending {
		if !e.cancelled {
			n++
		}
	}
	return n
}
