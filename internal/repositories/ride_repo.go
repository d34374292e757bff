package repositories

import (
	"context"
	"database/sql"
	"errors"

	"carpool/internal/domain"
	"carpool/internal/domain/models"

	"github.com/jmoiron/sqlx"
)

type RideRepository struct {
	DB *sqlx.DB
}

// Dates and times are formatted in SQL so DATE/TIME/DATETIME columns and
// legacy VARCHAR columns scan the same way.
const rideColumns = `
	id,
	COALESCE(driver_id, '') AS driver_id,
	COALESCE(pickup_point, '') AS pickup_point,
	COALESCE(dropoff_point, '') AS dropoff_point,
	COALESCE(available_seats, 0) AS available_seats,
	DATE_FORMAT(departure_time, '%Y-%m-%d %H:%i:%s') AS departure_time,
	car_model,
	car_make,
	number_plate,
	fare,
	DATE_FORMAT(date, '%Y-%m-%d') AS date,
	TIME_FORMAT(time, '%H:%i') AS time`

func (r RideRepository) Insert(ctx context.Context, ride models.Ride) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO rides
			(id, driver_id, pickup_point, dropoff_point, available_seats, departure_time,
			 car_model, car_make, number_plate, fare, date, time)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		ride.ID,
		ride.DriverID,
		ride.PickupPoint,
		ride.DropoffPoint,
		ride.AvailableSeats,
		ride.DepartureTime,
		ride.CarModel,
		ride.CarMake,
		ride.NumberPlate,
		ride.Fare,
		ride.Date,
		ride.Time,
	)
	return err
}

func (r RideRepository) List(ctx context.Context) ([]models.Ride, error) {
	out := []models.Ride{}
	if err := r.DB.SelectContext(ctx, &out, `SELECT `+rideColumns+` FROM rides`); err != nil {
		return nil, err
	}
	return out, nil
}

func (r RideRepository) ListByDate(ctx context.Context, date string) ([]models.Ride, error) {
	out := []models.Ride{}
	err := r.DB.SelectContext(ctx, &out,
		`SELECT `+rideColumns+` FROM rides WHERE date = ? ORDER BY time ASC`, date)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r RideRepository) GetByID(ctx context.Context, id string) (models.Ride, error) {
	var ride models.Ride
	err := r.DB.GetContext(ctx, &ride, `SELECT `+rideColumns+` FROM rides WHERE id = ? LIMIT 1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Ride{}, domain.NotFoundError{Resource: "ride", Err: err}
	}
	return ride, err
}
