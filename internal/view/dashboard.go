package view

import (
	"context"
	"fmt"
	"sync"

	"ev-campus-client/internal/client"
)

// CO₂ savings estimate: every booking replaces an average 5 km petrol-car
// trip at 122 g CO₂/km.
const (
	avgTripKm     = 5
	gramsCO2PerKm = 122
	gramsPerKilo  = 1000
)

// Dashboard is the logged-in user's booking state: a local cache of the
// server's booking list plus the derived eco stats. The cache is pruned
// optimistically after a confirmed cancellation and self-heals on the next
// Load.
type Dashboard struct {
	mu       sync.Mutex
	bookings []client.Booking
	loaded   bool
}

func NewDashboard() *Dashboard {
	return &Dashboard{}
}

// Load refreshes the cache from the remote list. On failure the previous
// cache is kept.
func (d *Dashboard) Load(ctx context.Context, ops client.Operations) error {
	bookings, err := ops.ListMyBookings(ctx)
	if err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.bookings = bookings
	d.loaded = true
	return nil
}

// Loaded reports whether a list has been fetched at least once.
func (d *Dashboard) Loaded() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.loaded
}

// Bookings returns the cached list in server order.
func (d *Dashboard) Bookings() []client.Booking {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]client.Booking, len(d.bookings))
	copy(out, d.bookings)
	return out
}

// Remove prunes one booking by id, leaving the rest in order. Unknown ids
// are ignored.
func (d *Dashboard) Remove(bookingID int64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	kept := d.bookings[:0]
	for _, b := range d.bookings {
		if b.ID != bookingID {
			kept = append(kept, b)
		}
	}
	d.bookings = kept
}

// CO2SavingsKg renders the savings estimate with two decimals, e.g. "1.83".
func (d *Dashboard) CO2SavingsKg() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	grams := float64(len(d.bookings) * avgTripKm * gramsCO2PerKm)
	return fmt.Sprintf("%.2f", grams/gramsPerKilo)
}
