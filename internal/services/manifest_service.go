package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"carpool/internal/domain"
	"carpool/internal/domain/models"
	"carpool/internal/utils"

	"github.com/phpdave11/gofpdf"
)

type RideGetter interface {
	Get(ctx context.Context, id string) (models.Ride, error)
}

// ManifestService renders the passenger manifest a driver carries for a ride.
type ManifestService struct {
	Rides      RideGetter
	Passengers BookedPassengerLister
}

func (s ManifestService) Generate(ctx context.Context, rideID string) ([]byte, string, error) {
	rideID = strings.TrimSpace(rideID)
	ride, err := s.Rides.Get(ctx, rideID)
	if err != nil {
		return nil, "", err
	}
	passengers, err := s.Passengers.ListBookedForRide(ctx, rideID)
	if err != nil {
		utils.LogCtx(ctx, "manifest", "generate", "query failed: "+err.Error())
		return nil, "", domain.WrapStore("Failed to fetch booked passengers", err)
	}

	pdf, err := buildManifestPDF(ride, passengers)
	if err != nil {
		return nil, "", domain.StoreError{Op: "render manifest", Err: err}
	}
	filename := fmt.Sprintf("MANIFEST_%s.pdf", safeFilenamePart(ride.ID))
	utils.LogCtx(ctx, "manifest", "generate", fmt.Sprintf("ride_id=%s passengers=%d", ride.ID, len(passengers)))
	return pdf, filename, nil
}

func buildManifestPDF(ride models.Ride, passengers []models.BookedPassenger) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Ride Manifest", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "RIDE MANIFEST")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Ride      : %s", ride.ID),
		fmt.Sprintf("Driver    : %s", safe(ride.DriverID, "-")),
		fmt.Sprintf("Route     : %s -> %s", safe(ride.PickupPoint, "-"), safe(ride.DropoffPoint, "-")),
		fmt.Sprintf("Date/Time : %s %s", utils.Deref(ride.Date, "-"), utils.Deref(ride.Time, "")),
		fmt.Sprintf("Vehicle   : %s %s (%s)", utils.Deref(ride.CarMake, "-"), utils.Deref(ride.CarModel, ""), utils.Deref(ride.NumberPlate, "-")),
		fmt.Sprintf("Fare      : %s", utils.FormatFare(ride.Fare)),
		fmt.Sprintf("Booked    : %d (seats left %d)", len(passengers), ride.AvailableSeats),
	}
	for _, s := range lines {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}
	pdf.Ln(4)

	widths := []float64{10, 50, 35, 47, 47}
	header := []string{"#", "Passenger", "Phone", "Pickup", "Dropoff"}
	pdf.SetFont("Helvetica", "B", 10)
	for i, h := range header {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for i, p := range passengers {
		row := []string{
			fmt.Sprintf("%d", i+1),
			safe(p.Name, "-"),
			safe(p.Phone, "-"),
			safe(p.PickupPoint, "-"),
			safe(p.DropoffPoint, "-"),
		}
		for j, v := range row {
			pdf.CellFormat(widths[j], 7, v, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
	if len(passengers) == 0 {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.Cell(0, 7, "No passengers booked yet.")
		pdf.Ln(7)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 48 {
		s = s[:48]
	}
	return s
}
