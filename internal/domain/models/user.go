package models

// User is a registered carpool user. Rows are never updated after registration.
type User struct {
	ID     string `db:"id" json:"id"`
	Name   string `db:"name" json:"name"`
	Phone  string `db:"phone" json:"phone"`
	Email  string `db:"email" json:"email"`
	IsUser bool   `db:"is_user" json:"is_user"`
}

type RegisterUserInput struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone" validate:"required"`
	Email string `json:"email" validate:"required"`
}
