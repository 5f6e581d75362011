package notify

import (
	"sync"
	"time"

	"ev-campus-client/internal/pkg/clock"
)

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Notification is the transient toast shown to the user. At most one is
// active at a time.
type Notification struct {
	Message string
	Kind    Kind
	Visible bool
}

// Notifier holds the single active notification and expires it after a fixed
// window. A newer notification supersedes both the previous one and its
// pending expiry: the generation counter makes the last write win even if an
// old timer fires late.
type Notifier struct {
	mu         sync.Mutex
	scheduler  clock.Scheduler
	duration   time.Duration
	current    Notification
	cancel     func()
	generation uint64
}

func NewNotifier(scheduler clock.Scheduler, duration time.Duration) *Notifier {
	return &Notifier{scheduler: scheduler, duration: duration}
}

func (n *Notifier) Notify(message string, kind Kind) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.cancel != nil {
		n.cancel()
	}
	n.generation++
	generation := n.generation
	n.current = Notification{Message: message, Kind: kind, Visible: true}
	n.cancel = n.scheduler.AfterFunc(n.duration, func() {
		n.expire(generation)
	})
}

func (n *Notifier) expire(generation uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.generation != generation {
		return
	}
	n.current.Visible = false
}

// Current returns the active notification; Visible is false when none is
// showing.
func (n *Notifier) Current() Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}
