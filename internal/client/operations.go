package client

import (
	"context"
	"fmt"
	"net/http"
)

//go:generate mockgen -source=operations.go -destination=../../tests/mock/client/operations.go -package=clientmock

// Operations is the fixed set of remote calls the client can issue. Each is
// a thin wrapper over the pipeline with a fixed method, path and shape;
// errors pass through unchanged so callers can translate rejections into
// user-facing messages.
type Operations interface {
	Register(ctx context.Context, name, email, password string) (credential string, err error)
	Login(ctx context.Context, email, password string) (credential string, err error)
	ListVehicles(ctx context.Context) ([]Vehicle, error)
	CreateBooking(ctx context.Context, vehicleID int64) (Booking, error)
	ListMyBookings(ctx context.Context) ([]Booking, error)
	DeleteBooking(ctx context.Context, bookingID int64) error
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string `json:"token"`
}

type createBookingRequest struct {
	VehicleID int64 `json:"vehicleId"`
}

type operationsImpl struct {
	pipeline *Pipeline
}

func NewOperations(pipeline *Pipeline) Operations {
	return &operationsImpl{pipeline: pipeline}
}

func (o *operationsImpl) Register(ctx context.Context, name, email, password string) (string, error) {
	var resp authResponse
	err := o.pipeline.Send(ctx, http.MethodPost, "/auth/register",
		registerRequest{Name: name, Email: email, Password: password}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}

func (o *operationsImpl) Login(ctx context.Context, email, password string) (string, error) {
	var resp authResponse
	err := o.pipeline.Send(ctx, http.MethodPost, "/auth/login",
		loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}

func (o *operationsImpl) ListVehicles(ctx context.Context) ([]Vehicle, error) {
	var vehicles []Vehicle
	if err := o.pipeline.Send(ctx, http.MethodGet, "/vehicles", nil, &vehicles); err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (o *operationsImpl) CreateBooking(ctx context.Context, vehicleID int64) (Booking, error) {
	var booking Booking
	err := o.pipeline.Send(ctx, http.MethodPost, "/bookings",
		createBookingRequest{VehicleID: vehicleID}, &booking)
	if err != nil {
		return Booking{}, err
	}
	return booking, nil
}

func (o *operationsImpl) ListMyBookings(ctx context.Context) ([]Booking, error) {
	var bookings []Booking
	if err := o.pipeline.Send(ctx, http.MethodGet, "/bookings/my-bookings", nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (o *operationsImpl) DeleteBooking(ctx context.Context, bookingID int64) error {
	// DELETE answers 204 with an empty body, nothing to decode.
	return o.pipeline.Send(ctx, http.MethodDelete, fmt.Sprintf("/bookings/%d", bookingID), nil, nil)
}
