//go:build unit

package builder

import (
	"ev-campus-client/internal/client"
)

type VehicleBuilder struct {
	ID       int64
	Name     string
	Type     string
	ImageURL string
	Range    string
	Offer    string
}

func NewVehicleBuilder() *VehicleBuilder {
	return &VehicleBuilder{
		ID:       1,
		Name:     "Campus Zip",
		Type:     "scooter",
		ImageURL: "/img/campus-zip.jpg",
		Range:    "40 km",
		Offer:    "First ride free",
	}
}

func (v *VehicleBuilder) With(mutate func(*VehicleBuilder)) *VehicleBuilder {
	mutate(v)
	return v
}

func (v *VehicleBuilder) WithType(vehicleType string) *VehicleBuilder {
	v.Type = vehicleType
	return v
}

func (v *VehicleBuilder) Build() client.Vehicle {
	return client.Vehicle{
		ID:       v.ID,
		Name:     v.Name,
		Type:     v.Type,
		ImageURL: v.ImageURL,
		Range:    v.Range,
		Offer:    v.Offer,
	}
}
