package repositories

import (
	"context"
	"testing"

	"carpool/internal/domain"
	"carpool/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestUserInsertSetsIsUser(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec("INSERT INTO users \\(id, name, phone, email, is_user\\)").
		WithArgs("usr_1", "Amina", "0700", "amina@example.com", true).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := UserRepository{DB: db}.Insert(context.Background(), models.User{
		ID: "usr_1", Name: "Amina", Phone: "0700", Email: "amina@example.com", IsUser: true,
	})
	if err != nil {
		t.Fatalf("Insert error: %v", err)
	}
	assertExpectations(t, mock)
}

func TestUserGetByID(t *testing.T) {
	db, mock := newMockDB(t)
	cols := []string{"id", "name", "phone", "email", "is_user"}

	mock.ExpectQuery("FROM users WHERE id = \\?").
		WithArgs("usr_1").
		WillReturnRows(sqlmock.NewRows(cols).AddRow("usr_1", "Amina", "0700", "amina@example.com", 1))
	mock.ExpectQuery("FROM users WHERE id = \\?").
		WithArgs("usr_2").
		WillReturnRows(sqlmock.NewRows(cols))

	repo := UserRepository{DB: db}
	u, err := repo.GetByID(context.Background(), "usr_1")
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if u.Name != "Amina" || !u.IsUser {
		t.Fatalf("unexpected user %+v", u)
	}
	if _, err := repo.GetByID(context.Background(), "usr_2"); !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	assertExpectations(t, mock)
}
