package handlers

import (
	"carpool/internal/services"

	"github.com/jmoiron/sqlx"
)

// API bundles the services behind the HTTP handlers.
type API struct {
	Users    *services.UserService
	Rides    services.RideService
	Bookings services.BookingService
	Fares    services.FareService
	Manifest services.ManifestService
	DB       *sqlx.DB
}
