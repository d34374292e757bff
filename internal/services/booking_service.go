package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"carpool/internal/domain"
	"carpool/internal/domain/models"
	"carpool/internal/utils"
)

const EventRideBooked = "ride.booked"

type BookingStore interface {
	BookSeat(ctx context.Context, in models.BookRideInput) (models.BookingResult, error)
}

type BookedPassengerLister interface {
	ListBookedForRide(ctx context.Context, rideID string) ([]models.BookedPassenger, error)
}

// EventPublisher delivers domain events; a nil publisher disables events.
type EventPublisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

type BookingService struct {
	Store      BookingStore
	Passengers BookedPassengerLister
	Events     EventPublisher
}

// Book reserves one seat on a ride for a passenger. Seat check, decrement and
// booking insert commit together or not at all.
func (s BookingService) Book(ctx context.Context, in models.BookRideInput) (models.BookingResult, error) {
	in.RideID = strings.TrimSpace(in.RideID)
	in.PassengerID = strings.TrimSpace(in.PassengerID)
	in.PickupPoint = strings.TrimSpace(in.PickupPoint)
	in.DropoffPoint = strings.TrimSpace(in.DropoffPoint)
	if err := validateInput(in, "All fields are required"); err != nil {
		return models.BookingResult{}, err
	}

	res, err := s.Store.BookSeat(ctx, in)
	if err != nil {
		switch {
		case domain.IsNoSeats(err):
			utils.LogCtx(ctx, "booking", "book", "no seats ride_id="+in.RideID)
		case domain.IsNotFound(err):
			utils.LogCtx(ctx, "booking", "book", err.Error()+" ride_id="+in.RideID+" passenger_id="+in.PassengerID)
		default:
			utils.LogCtx(ctx, "booking", "book", "store failed: "+err.Error())
		}
		return models.BookingResult{}, domain.WrapStore("Booking failed", err)
	}

	utils.LogCtx(ctx, "booking", "book", fmt.Sprintf("booked ride_id=%s passenger_id=%s booking_id=%d seats_left=%d",
		res.RideID, res.PassengerID, res.BookingID, res.SeatsRemaining))
	s.publishBooked(ctx, in, res)
	return res, nil
}

func (s BookingService) publishBooked(ctx context.Context, in models.BookRideInput, res models.BookingResult) {
	if s.Events == nil {
		return
	}
	err := s.Events.PublishJSON(ctx, EventRideBooked, map[string]any{
		"booking_id":      res.BookingID,
		"ride_id":         res.RideID,
		"passenger_id":    res.PassengerID,
		"pickup_point":    in.PickupPoint,
		"dropoff_point":   in.DropoffPoint,
		"seats_remaining": res.SeatsRemaining,
		"booked_at":       utils.NowUTC().Format(time.RFC3339),
	})
	if err != nil {
		utils.LogCtx(ctx, "booking", "publish", "event dropped: "+err.Error())
	}
}

// BookedPassengers lists the passengers booked on rideID; an empty list is
// a valid result.
func (s BookingService) BookedPassengers(ctx context.Context, rideID string) ([]models.BookedPassenger, error) {
	rideID = strings.TrimSpace(rideID)
	out, err := s.Passengers.ListBookedForRide(ctx, rideID)
	if err != nil {
		utils.LogCtx(ctx, "booking", "passengers", "query failed: "+err.Error())
		return nil, domain.WrapStore("Failed to fetch booked passengers", err)
	}
	return out, nil
}
