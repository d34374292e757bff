package repositories

import (
	"context"
	"testing"

	"carpool/internal/domain"
	"carpool/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

var rideCols = []string{
	"id", "driver_id", "pickup_point", "dropoff_point", "available_seats", "departure_time",
	"car_model", "car_make", "number_plate", "fare", "date", "time",
}

func TestRideInsertPassesNullsThrough(t *testing.T) {
	db, mock := newMockDB(t)

	seats := 3
	ride := models.Ride{ID: "ride_x", DriverID: "usr_d", PickupPoint: "A", DropoffPoint: "B", AvailableSeats: seats}
	mock.ExpectExec("INSERT INTO rides").
		WithArgs("ride_x", "usr_d", "A", "B", 3, nil, nil, nil, nil, nil, nil, nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := (RideRepository{DB: db}).Insert(context.Background(), ride); err != nil {
		t.Fatalf("Insert error: %v", err)
	}
	assertExpectations(t, mock)
}

func TestRideListByDateOrdersByTime(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("FROM rides WHERE date = \\? ORDER BY time ASC").
		WithArgs("2026-10-14").
		WillReturnRows(sqlmock.NewRows(rideCols).
			AddRow("ride_1", "usr_d", "A", "B", 2, "2026-10-14 07:00:00", "Axio", "Toyota", "KDA 123A", "350.00", "2026-10-14", "07:00").
			AddRow("ride_2", "usr_d", "A", "C", 1, nil, nil, nil, nil, nil, "2026-10-14", "09:15"))

	rides, err := RideRepository{DB: db}.ListByDate(context.Background(), "2026-10-14")
	if err != nil {
		t.Fatalf("ListByDate error: %v", err)
	}
	if len(rides) != 2 {
		t.Fatalf("got %d rides", len(rides))
	}
	if rides[0].Fare == nil || *rides[0].Fare != 350 {
		t.Fatalf("fare not scanned: %+v", rides[0].Fare)
	}
	if rides[1].CarModel != nil || rides[1].Time == nil || *rides[1].Time != "09:15" {
		t.Fatalf("nullable columns not scanned: %+v", rides[1])
	}
	assertExpectations(t, mock)
}

func TestRideGetByIDMissing(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("FROM rides WHERE id = \\?").
		WithArgs("ride_none").
		WillReturnRows(sqlmock.NewRows(rideCols))

	_, err := RideRepository{DB: db}.GetByID(context.Background(), "ride_none")
	if !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	assertExpectations(t, mock)
}
