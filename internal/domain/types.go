package domain

import "github.com/google/uuid"

const (
	UserIDPrefix = "usr_"
	RideIDPrefix = "ride_"
)

func NewUserID() string { return UserIDPrefix + uuid.NewString() }

func NewRideID() string { return RideIDPrefix + uuid.NewString() }

// NewFareID returns a bare uuid; fare ids carry no prefix.
func NewFareID() string { return uuid.NewString() }
