package models

import "time"

// RouteFare prices an origin/destination pair independently of any ride.
type RouteFare struct {
	ID              string    `db:"id" json:"id"`
	OriginCity      string    `db:"origin_city" json:"origin_city"`
	DestinationCity string    `db:"destination_city" json:"destination_city"`
	Fare            float64   `db:"fare" json:"fare"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

// AddRouteFareInput accepts a zero fare; only a missing fare is rejected.
type AddRouteFareInput struct {
	OriginCity      string   `json:"origin_city" validate:"required"`
	DestinationCity string   `json:"destination_city" validate:"required"`
	Fare            *float64 `json:"fare" validate:"required"`
}
