package repositories

import (
	"context"
	"database/sql"
	"errors"

	"carpool/internal/domain"
	"carpool/internal/domain/models"

	"github.com/jmoiron/sqlx"
)

type UserRepository struct {
	DB *sqlx.DB
}

const userColumns = `id, COALESCE(name, '') AS name, COALESCE(phone, '') AS phone, COALESCE(email, '') AS email, COALESCE(is_user, 0) AS is_user`

func (r UserRepository) Insert(ctx context.Context, u models.User) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO users (id, name, phone, email, is_user) VALUES (?, ?, ?, ?, ?)`,
		u.ID, u.Name, u.Phone, u.Email, u.IsUser,
	)
	return err
}

func (r UserRepository) List(ctx context.Context) ([]models.User, error) {
	out := []models.User{}
	if err := r.DB.SelectContext(ctx, &out, `SELECT `+userColumns+` FROM users`); err != nil {
		return nil, err
	}
	return out, nil
}

func (r UserRepository) GetByID(ctx context.Context, id string) (models.User, error) {
	var u models.User
	err := r.DB.GetContext(ctx, &u, `SELECT `+userColumns+` FROM users WHERE id = ? LIMIT 1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, domain.NotFoundError{Resource: "user", Err: err}
	}
	return u, err
}
