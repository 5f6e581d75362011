package view

import (
	"time"

	"ev-campus-client/internal/client"
	"ev-campus-client/internal/pkg/errs"

	"github.com/jinzhu/copier"
)

// The API serializes booking timestamps as zone-less local time.
const bookingTimeLayout = "2006-01-02T15:04:05"

type VehicleView struct {
	ID       int64
	Name     string
	Type     string
	ImageURL string
	Range    string
	Offer    string
}

type BookingView struct {
	ID              int64
	VehicleName     string
	VehicleImageURL string
	BookedAt        string
}

func ToVehicleViews(vehicles []client.Vehicle) ([]VehicleView, error) {
	views := make([]VehicleView, 0, len(vehicles))
	if err := copier.Copy(&views, &vehicles); err != nil {
		return nil, errs.Wrap(err, "mapping vehicles to view models")
	}
	return views, nil
}

func ToBookingViews(bookings []client.Booking) ([]BookingView, error) {
	views := make([]BookingView, 0, len(bookings))
	if err := copier.Copy(&views, &bookings); err != nil {
		return nil, errs.Wrap(err, "mapping bookings to view models")
	}
	for i := range views {
		views[i].BookedAt = formatBookingTime(bookings[i].BookingTime)
	}
	return views, nil
}

func formatBookingTime(raw string) string {
	t, err := time.Parse(bookingTimeLayout, raw)
	if err != nil {
		// Show the raw value rather than hide the booking.
		return raw
	}
	return t.Format("Jan 2, 2006 3:04 PM")
}
