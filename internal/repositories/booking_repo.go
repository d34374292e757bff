package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"carpool/internal/domain"
	"carpool/internal/domain/models"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

const mysqlErrNoReferencedRow = 1452

type BookingRepository struct {
	DB *sqlx.DB
}

// BookSeat takes one seat of the ride and records the booking in a single
// transaction. The ride row is locked first so concurrent bookers queue on it;
// the decrement is additionally guarded by available_seats > 0.
func (r BookingRepository) BookSeat(ctx context.Context, in models.BookRideInput) (models.BookingResult, error) {
	res := models.BookingResult{RideID: in.RideID, PassengerID: in.PassengerID}

	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return res, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var seats int
	err = tx.GetContext(ctx, &seats, `SELECT available_seats FROM rides WHERE id = ? FOR UPDATE`, in.RideID)
	if errors.Is(err, sql.ErrNoRows) {
		return res, domain.NotFoundError{Resource: "ride", Err: err}
	}
	if err != nil {
		return res, fmt.Errorf("lock ride: %w", err)
	}
	if seats <= 0 {
		return res, domain.NoSeatsError{RideID: in.RideID}
	}

	if _, err := getPassenger(ctx, tx, in.PassengerID); err != nil {
		return res, err
	}

	upd, err := tx.ExecContext(ctx,
		`UPDATE rides SET available_seats = available_seats - 1 WHERE id = ? AND available_seats > 0`, in.RideID)
	if err != nil {
		return res, fmt.Errorf("decrement seats: %w", err)
	}
	affected, err := upd.RowsAffected()
	if err != nil {
		return res, fmt.Errorf("decrement seats: %w", err)
	}
	if affected == 0 {
		return res, domain.NoSeatsError{RideID: in.RideID}
	}

	ins, err := tx.ExecContext(ctx,
		`INSERT INTO bookings (ride_id, passenger_id, pickup_point, dropoff_point) VALUES (?, ?, ?, ?)`,
		in.RideID, in.PassengerID, in.PickupPoint, in.DropoffPoint)
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == mysqlErrNoReferencedRow {
			return res, domain.NotFoundError{Resource: "passenger", Err: err}
		}
		return res, fmt.Errorf("insert booking: %w", err)
	}
	res.BookingID, err = ins.LastInsertId()
	if err != nil {
		return res, fmt.Errorf("booking id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return res, fmt.Errorf("commit booking: %w", err)
	}
	res.SeatsRemaining = seats - 1
	return res, nil
}
