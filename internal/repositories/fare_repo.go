package repositories

import (
	"context"

	"carpool/internal/domain/models"

	"github.com/jmoiron/sqlx"
)

type FareRepository struct {
	DB *sqlx.DB
}

func (r FareRepository) Insert(ctx context.Context, f models.RouteFare) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO route_fares (id, origin_city, destination_city, fare) VALUES (?, ?, ?, ?)`,
		f.ID, f.OriginCity, f.DestinationCity, f.Fare,
	)
	return err
}

// List returns every fare, newest first.
func (r FareRepository) List(ctx context.Context) ([]models.RouteFare, error) {
	out := []models.RouteFare{}
	err := r.DB.SelectContext(ctx, &out, `
		SELECT id, origin_city, destination_city, fare, created_at
		FROM route_fares
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	return out, nil
}
