package view

import "ev-campus-client/internal/client"

// Vehicle type filters offered on the home page.
const (
	FilterAll     = "all"
	FilterScooter = "scooter"
	FilterBike    = "bike"
)

// FilterVehicles keeps vehicles of the given type; "all" keeps everything.
func FilterVehicles(vehicles []client.Vehicle, filter string) []client.Vehicle {
	if filter == FilterAll || filter == "" {
		return vehicles
	}
	out := make([]client.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if v.Type == filter {
			out = append(out, v)
		}
	}
	return out
}
