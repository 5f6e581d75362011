package client

// Wire shapes of the remote API. The client treats both as read-only; the
// server owns them.

type Vehicle struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"` // "scooter", "bike", ...
	ImageURL string `json:"imageUrl"`
	Price    string `json:"price"`
	Range    string `json:"range"`
	TopSpeed string `json:"topSpeed"`
	Offer    string `json:"offer"`
}

type Booking struct {
	ID              int64  `json:"id"`
	VehicleName     string `json:"vehicleName"`
	VehicleImageURL string `json:"vehicleImageUrl"`
	// BookingTime arrives as a zone-less local timestamp
	// ("2025-06-01T10:30:00"), kept raw here and parsed by the view layer.
	BookingTime string `json:"bookingTime"`
}
