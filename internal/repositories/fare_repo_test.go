package repositories

import (
	"context"
	"testing"
	"time"

	"carpool/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestFareInsertAcceptsZero(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec("INSERT INTO route_fares").
		WithArgs("f-1", "Nairobi", "Mombasa", 0.0).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := FareRepository{DB: db}.Insert(context.Background(), models.RouteFare{
		ID: "f-1", OriginCity: "Nairobi", DestinationCity: "Mombasa", Fare: 0,
	})
	if err != nil {
		t.Fatalf("Insert error: %v", err)
	}
	assertExpectations(t, mock)
}

func TestFareListNewestFirst(t *testing.T) {
	db, mock := newMockDB(t)
	newer := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)
	older := newer.Add(-time.Hour)

	mock.ExpectQuery("FROM route_fares\\s+ORDER BY created_at DESC").
		WillReturnRows(sqlmock.NewRows([]string{"id", "origin_city", "destination_city", "fare", "created_at"}).
			AddRow("f-2", "Nairobi", "Nakuru", 800.0, newer).
			AddRow("f-1", "Nairobi", "Mombasa", 0.0, older))

	fares, err := FareRepository{DB: db}.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(fares) != 2 || fares[0].ID != "f-2" || !fares[0].CreatedAt.Equal(newer) {
		t.Fatalf("unexpected fares %+v", fares)
	}
	assertExpectations(t, mock)
}
