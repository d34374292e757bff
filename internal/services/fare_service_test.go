package services

import (
	"context"
	"strings"
	"testing"

	"carpool/internal/domain"
	"carpool/internal/domain/models"
)

func TestAddRouteFareZeroIsValid(t *testing.T) {
	m := newMemStore()
	svc := FareService{Repo: fareStore{m}}

	f, err := svc.Add(context.Background(), models.AddRouteFareInput{
		OriginCity: "Nairobi", DestinationCity: "Mombasa", Fare: floatPtr(0),
	})
	if err != nil {
		t.Fatalf("zero fare rejected: %v", err)
	}
	if f.ID == "" || strings.Contains(f.ID, "_") {
		t.Fatalf("fare id should be a bare uuid, got %q", f.ID)
	}
	if len(m.fares) != 1 || m.fares[0].Fare != 0 {
		t.Fatalf("fare not stored: %+v", m.fares)
	}
}

func TestAddRouteFareRequiresFields(t *testing.T) {
	svc := FareService{Repo: fareStore{newMemStore()}}

	cases := []models.AddRouteFareInput{
		{DestinationCity: "Mombasa", Fare: floatPtr(100)},
		{OriginCity: "Nairobi", Fare: floatPtr(100)},
		{OriginCity: "Nairobi", DestinationCity: "Mombasa"},
	}
	for _, in := range cases {
		_, err := svc.Add(context.Background(), in)
		if !domain.IsValidation(err) {
			t.Fatalf("input %+v: expected ValidationError, got %v", in, err)
		}
		if err.Error() != "All fields are required" {
			t.Fatalf("message = %q", err.Error())
		}
	}
}

func TestListFaresNewestFirst(t *testing.T) {
	m := newMemStore()
	svc := FareService{Repo: fareStore{m}}
	for _, city := range []string{"Mombasa", "Kisumu"} {
		if _, err := svc.Add(context.Background(), models.AddRouteFareInput{
			OriginCity: "Nairobi", DestinationCity: city, Fare: floatPtr(500),
		}); err != nil {
			t.Fatalf("Add error: %v", err)
		}
	}
	fares, err := svc.List(context.Background())
	if err != nil || len(fares) != 2 || fares[0].DestinationCity != "Kisumu" {
		t.Fatalf("fares=%+v err=%v", fares, err)
	}
}
