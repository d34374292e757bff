package services

import (
	"context"
	"strings"

	"carpool/internal/domain"
	"carpool/internal/domain/models"
	"carpool/internal/utils"
)

type RideStore interface {
	Insert(ctx context.Context, ride models.Ride) error
	List(ctx context.Context) ([]models.Ride, error)
	ListByDate(ctx context.Context, date string) ([]models.Ride, error)
	GetByID(ctx context.Context, id string) (models.Ride, error)
}

type RideService struct {
	Repo RideStore
}

// Create validates and stores a new ride. When date or time are omitted they
// are derived from departure_time.
func (s RideService) Create(ctx context.Context, in models.CreateRideInput) (models.Ride, error) {
	in.DriverID = strings.TrimSpace(in.DriverID)
	in.PickupPoint = strings.TrimSpace(in.PickupPoint)
	in.DropoffPoint = strings.TrimSpace(in.DropoffPoint)
	if err := validateInput(in, "driver_id, pickup_point, dropoff_point and available_seats are required"); err != nil {
		return models.Ride{}, err
	}

	ride := models.Ride{
		ID:             domain.NewRideID(),
		DriverID:       in.DriverID,
		PickupPoint:    in.PickupPoint,
		DropoffPoint:   in.DropoffPoint,
		AvailableSeats: *in.AvailableSeats,
		CarModel:       utils.TrimPtr(in.CarModel),
		CarMake:        utils.TrimPtr(in.CarMake),
		NumberPlate:    utils.TrimPtr(in.NumberPlate),
		Fare:           in.Fare,
	}

	if d := utils.TrimPtr(in.Date); d != nil {
		if _, err := utils.ParseDate(*d); err != nil {
			return models.Ride{}, domain.ValidationError{Field: "date", Msg: "date must be YYYY-MM-DD", Err: err}
		}
		ride.Date = d
	}
	if tm := utils.TrimPtr(in.Time); tm != nil {
		hhmm, err := utils.NormalizeClock(*tm)
		if err != nil {
			return models.Ride{}, domain.ValidationError{Field: "time", Msg: "time must be HH:MM", Err: err}
		}
		ride.Time = &hhmm
	}
	if dep := utils.TrimPtr(in.DepartureTime); dep != nil {
		t, err := utils.ParseDeparture(*dep)
		if err != nil {
			return models.Ride{}, domain.ValidationError{
				Field: "departure_time",
				Msg:   "departure_time must be RFC 3339 or YYYY-MM-DD HH:MM[:SS]",
				Err:   err,
			}
		}
		formatted := utils.FormatDateTime(t)
		ride.DepartureTime = &formatted
		if ride.Date == nil {
			d := utils.FormatDate(t)
			ride.Date = &d
		}
		if ride.Time == nil {
			hhmm := utils.FormatHHMM(t)
			ride.Time = &hhmm
		}
	}

	if err := s.Repo.Insert(ctx, ride); err != nil {
		utils.LogCtx(ctx, "ride", "create", "insert failed: "+err.Error())
		return models.Ride{}, domain.WrapStore("Failed to create ride", err)
	}
	utils.LogCtx(ctx, "ride", "create", "created ride_id="+ride.ID)
	return ride, nil
}

func (s RideService) List(ctx context.Context) ([]models.Ride, error) {
	rides, err := s.Repo.List(ctx)
	if err != nil {
		utils.LogCtx(ctx, "ride", "list", "query failed: "+err.Error())
		return nil, domain.WrapStore("Failed to fetch rides", err)
	}
	return rides, nil
}

// ListByDate returns the rides of date ordered by time, defaulting to the
// current UTC day. The resolved date is returned with the rides.
func (s RideService) ListByDate(ctx context.Context, date string) ([]models.Ride, string, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		date = utils.TodayUTC()
	} else if _, err := utils.ParseDate(date); err != nil {
		return nil, date, domain.ValidationError{Field: "date", Msg: "date must be YYYY-MM-DD", Err: err}
	}

	rides, err := s.Repo.ListByDate(ctx, date)
	if err != nil {
		utils.LogCtx(ctx, "ride", "list_by_date", "query failed: "+err.Error())
		return nil, date, domain.WrapStore("Internal server error", err)
	}
	if len(rides) == 0 {
		return nil, date, domain.NoContentError{
			Msg:     "No rides found for this date",
			Details: map[string]any{"date": date},
		}
	}
	return rides, date, nil
}

func (s RideService) Get(ctx context.Context, id string) (models.Ride, error) {
	ride, err := s.Repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return models.Ride{}, domain.WrapStore("Failed to fetch ride", err)
	}
	return ride, nil
}
