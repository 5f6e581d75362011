package confirm

import (
	"context"
	"sync"

	"ev-campus-client/internal/client"
	"ev-campus-client/internal/notify"
	"ev-campus-client/internal/pkg/errs"
)

var ErrNothingPending = errs.New("no cancellation pending")

const (
	cancelledMessage     = "Booking cancelled successfully."
	cancelFailureMessage = "Failed to cancel booking."
)

// BookingDeleter is the one domain operation the gate may trigger.
type BookingDeleter interface {
	DeleteBooking(ctx context.Context, bookingID int64) error
}

// BookingCache is the local booking list kept consistent after a confirmed
// deletion.
type BookingCache interface {
	Remove(bookingID int64)
}

// Toaster receives the outcome notification.
type Toaster interface {
	Notify(message string, kind notify.Kind)
}

// Gate guards booking cancellation behind an explicit confirmation step:
// Idle -> PendingConfirm(id) -> Idle. Requesting never deletes anything;
// only Confirm invokes the destructive operation, and both outcomes return
// the gate to Idle.
type Gate struct {
	mu      sync.Mutex
	pending *int64
	deleter BookingDeleter
	cache   BookingCache
	toasts  Toaster
}

func NewGate(deleter BookingDeleter, cache BookingCache, toasts Toaster) *Gate {
	return &Gate{deleter: deleter, cache: cache, toasts: toasts}
}

// Request enters PendingConfirm for the given booking. A newer request
// replaces an older one.
func (g *Gate) Request(bookingID int64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.pending = &bookingID
}

// Pending reports the booking awaiting confirmation, if any.
func (g *Gate) Pending() (int64, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.pending == nil {
		return 0, false
	}
	return *g.pending, true
}

// Dismiss returns to Idle without deleting anything.
func (g *Gate) Dismiss() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.pending = nil
}

// Confirm performs the pending deletion. On success the booking is pruned
// from the local cache and a success toast is emitted; on failure the server
// message (or a default) is toasted. Either way the gate is Idle afterwards.
func (g *Gate) Confirm(ctx context.Context) error {
	g.mu.Lock()
	if g.pending == nil {
		g.mu.Unlock()
		return ErrNothingPending
	}
	bookingID := *g.pending
	g.pending = nil
	g.mu.Unlock()

	if err := g.deleter.DeleteBooking(ctx, bookingID); err != nil {
		g.toasts.Notify(client.RejectedMessage(err, cancelFailureMessage), notify.KindError)
		return err
	}

	g.cache.Remove(bookingID)
	g.toasts.Notify(cancelledMessage, notify.KindSuccess)
	return nil
}
