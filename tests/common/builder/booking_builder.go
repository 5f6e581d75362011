//go:build unit

package builder

import (
	"ev-campus-client/internal/client"
)

type BookingBuilder struct {
	ID              int64
	VehicleName     string
	VehicleImageURL string
	BookingTime     string
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:              1,
		VehicleName:     "Campus Zip",
		VehicleImageURL: "/img/campus-zip.jpg",
		BookingTime:     "2025-06-01T10:30:00",
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithID(id int64) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) Build() client.Booking {
	return client.Booking{
		ID:              b.ID,
		VehicleName:     b.VehicleName,
		VehicleImageURL: b.VehicleImageURL,
		BookingTime:     b.BookingTime,
	}
}

// BuildList returns n bookings with sequential ids starting at the
// builder's id.
func (b *BookingBuilder) BuildList(n int) []client.Booking {
	out := make([]client.Booking, 0, n)
	for i := 0; i < n; i++ {
		item := b.Build()
		item.ID = b.ID + int64(i)
		out = append(out, item)
	}
	return out
}
