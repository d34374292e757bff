package services

import (
	"context"
	"strings"

	"carpool/internal/domain"
	"carpool/internal/domain/models"
	"carpool/internal/utils"
)

type FareStore interface {
	Insert(ctx context.Context, f models.RouteFare) error
	List(ctx context.Context) ([]models.RouteFare, error)
}

type FareService struct {
	Repo FareStore
}

func (s FareService) Add(ctx context.Context, in models.AddRouteFareInput) (models.RouteFare, error) {
	in.OriginCity = strings.TrimSpace(in.OriginCity)
	in.DestinationCity = strings.TrimSpace(in.DestinationCity)
	if err := validateInput(in, "All fields are required"); err != nil {
		return models.RouteFare{}, err
	}

	f := models.RouteFare{
		ID:              domain.NewFareID(),
		OriginCity:      in.OriginCity,
		DestinationCity: in.DestinationCity,
		Fare:            *in.Fare,
	}
	if err := s.Repo.Insert(ctx, f); err != nil {
		utils.LogCtx(ctx, "fare", "add", "insert failed: "+err.Error())
		return models.RouteFare{}, domain.WrapStore("Database error while adding fare", err)
	}
	utils.LogCtx(ctx, "fare", "add", "created fare_id="+f.ID)
	return f, nil
}

func (s FareService) List(ctx context.Context) ([]models.RouteFare, error) {
	fares, err := s.Repo.List(ctx)
	if err != nil {
		utils.LogCtx(ctx, "fare", "list", "query failed: "+err.Error())
		return nil, domain.WrapStore("Internal server error", err)
	}
	return fares, nil
}
