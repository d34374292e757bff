package models

import (
	"encoding/json"
	"errors"
	"strings"
)

// Booking reserves one seat of a ride for a passenger.
type Booking struct {
	ID           int64  `db:"id" json:"id"`
	RideID       string `db:"ride_id" json:"ride_id"`
	PassengerID  string `db:"passenger_id" json:"passenger_id"`
	PickupPoint  string `db:"pickup_point" json:"pickup_point"`
	DropoffPoint string `db:"dropoff_point" json:"dropoff_point"`
}

type BookRideInput struct {
	RideID       string `json:"ride_id" validate:"required"`
	PassengerID  string `json:"passenger_id" validate:"required"`
	PickupPoint  string `json:"pickup_point" validate:"required"`
	DropoffPoint string `json:"dropoff_point" validate:"required"`
}

// UnmarshalJSON accepts ride_id and passenger_id as JSON strings or numbers.
// Passengers are provisioned elsewhere and their ids may arrive unquoted.
func (in *BookRideInput) UnmarshalJSON(b []byte) error {
	var raw struct {
		RideID       flexID `json:"ride_id"`
		PassengerID  flexID `json:"passenger_id"`
		PickupPoint  string `json:"pickup_point"`
		DropoffPoint string `json:"dropoff_point"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*in = BookRideInput{
		RideID:       string(raw.RideID),
		PassengerID:  string(raw.PassengerID),
		PickupPoint:  raw.PickupPoint,
		DropoffPoint: raw.DropoffPoint,
	}
	return nil
}

type flexID string

func (f *flexID) UnmarshalJSON(b []byte) error {
	if strings.TrimSpace(string(b)) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return errors.New("id must be a string or a number")
	}
	*f = flexID(n.String())
	return nil
}

// BookingResult is returned once the seat is taken and the booking row committed.
type BookingResult struct {
	BookingID      int64  `json:"booking_id"`
	RideID         string `json:"ride_id"`
	PassengerID    string `json:"passenger_id"`
	SeatsRemaining int    `json:"seats_remaining"`
}
