package models

// Passenger rows are provisioned outside this service.
type Passenger struct {
	ID    string `db:"id" json:"id"`
	Name  string `db:"name" json:"name"`
	Phone string `db:"phone" json:"phone"`
}

// BookedPassenger is a passenger joined with the pickup/dropoff of one booking.
type BookedPassenger struct {
	PassengerID  string `db:"passenger_id" json:"passenger_id"`
	Name         string `db:"name" json:"name"`
	Phone        string `db:"phone" json:"phone"`
	PickupPoint  string `db:"pickup_point" json:"pickup_point"`
	DropoffPoint string `db:"dropoff_point" json:"dropoff_point"`
}
