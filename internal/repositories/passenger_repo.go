package repositories

import (
	"context"
	"database/sql"
	"errors"

	"carpool/internal/domain"
	"carpool/internal/domain/models"

	"github.com/jmoiron/sqlx"
)

type PassengerRepository struct {
	DB *sqlx.DB
}

func getPassenger(ctx context.Context, q sqlx.QueryerContext, id string) (models.Passenger, error) {
	var p models.Passenger
	err := sqlx.GetContext(ctx, q, &p,
		`SELECT id, COALESCE(name, '') AS name, COALESCE(phone, '') AS phone FROM passengers WHERE id = ? LIMIT 1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Passenger{}, domain.NotFoundError{Resource: "passenger", Err: err}
	}
	return p, err
}

// ListBookedForRide returns one entry per booking on rideID, in booking order.
func (r PassengerRepository) ListBookedForRide(ctx context.Context, rideID string) ([]models.BookedPassenger, error) {
	out := []models.BookedPassenger{}
	err := r.DB.SelectContext(ctx, &out, `
		SELECT
			passengers.id AS passenger_id,
			COALESCE(passengers.name, '') AS name,
			COALESCE(passengers.phone, '') AS phone,
			COALESCE(bookings.pickup_point, '') AS pickup_point,
			COALESCE(bookings.dropoff_point, '') AS dropoff_point
		FROM bookings
		JOIN passengers ON bookings.passenger_id = passengers.id
		WHERE bookings.ride_id = ?
		ORDER BY bookings.id ASC
	`, rideID)
	if err != nil {
		return nil, err
	}
	return out, nil
}
