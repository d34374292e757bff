package services

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"carpool/internal/domain"
	"carpool/internal/domain/models"
)

func TestManifestGenerate(t *testing.T) {
	m := seededStore(2)
	m.rides["R1"] = models.Ride{ID: "R1", DriverID: "usr_d", PickupPoint: "Westlands", DropoffPoint: "CBD",
		AvailableSeats: 2, Date: strPtr("2026-10-14"), Time: strPtr("07:00"), Fare: floatPtr(250)}
	if _, err := (BookingService{Store: m, Passengers: m}).Book(context.Background(), booking("R1", "P1")); err != nil {
		t.Fatalf("Book error: %v", err)
	}

	svc := ManifestService{Rides: RideService{Repo: rideStore{m}}, Passengers: m}
	pdf, filename, err := svc.Generate(context.Background(), "R1")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("output is not a PDF")
	}
	if !strings.HasPrefix(filename, "MANIFEST_R1") || !strings.HasSuffix(filename, ".pdf") {
		t.Fatalf("filename = %q", filename)
	}
}

func TestManifestUnknownRide(t *testing.T) {
	m := newMemStore()
	svc := ManifestService{Rides: RideService{Repo: rideStore{m}}, Passengers: m}
	if _, _, err := svc.Generate(context.Background(), "nope"); !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}
