package models

// Ride is a driver-offered trip. AvailableSeats is only changed by booking.
type Ride struct {
	ID             string   `db:"id" json:"id"`
	DriverID       string   `db:"driver_id" json:"driver_id"`
	PickupPoint    string   `db:"pickup_point" json:"pickup_point"`
	DropoffPoint   string   `db:"dropoff_point" json:"dropoff_point"`
	AvailableSeats int      `db:"available_seats" json:"available_seats"`
	DepartureTime  *string  `db:"departure_time" json:"departure_time"`
	CarModel       *string  `db:"car_model" json:"car_model"`
	CarMake        *string  `db:"car_make" json:"car_make"`
	NumberPlate    *string  `db:"number_plate" json:"number_plate"`
	Fare           *float64 `db:"fare" json:"fare"`
	Date           *string  `db:"date" json:"date"`
	Time           *string  `db:"time" json:"time"`
}

type CreateRideInput struct {
	DriverID       string   `json:"driver_id" validate:"required"`
	PickupPoint    string   `json:"pickup_point" validate:"required"`
	DropoffPoint   string   `json:"dropoff_point" validate:"required"`
	AvailableSeats *int     `json:"available_seats" validate:"required,gte=0"`
	DepartureTime  *string  `json:"departure_time"`
	CarModel       *string  `json:"car_model"`
	CarMake        *string  `json:"car_make"`
	NumberPlate    *string  `json:"number_plate"`
	Fare           *float64 `json:"fare" validate:"omitempty,gte=0"`
	Date           *string  `json:"date"`
	Time           *string  `json:"time"`
}
