package services

import (
	"context"
	"errors"
	"sort"
	"sync"

	"carpool/internal/domain"
	"carpool/internal/domain/models"
)

// memStore mirrors the repositories' contracts in memory. BookSeat holds the
// lock across check, decrement and insert, standing in for the row lock.
type memStore struct {
	mu         sync.Mutex
	users      map[string]models.User
	userGets   int
	rides      map[string]models.Ride
	passengers map[string]models.Passenger
	bookings   []models.Booking
	fares      []models.RouteFare
	failWith   error
}

func newMemStore() *memStore {
	return &memStore{
		users:      map[string]models.User{},
		rides:      map[string]models.Ride{},
		passengers: map[string]models.Passenger{},
	}
}

func (m *memStore) Insert(ctx context.Context, u models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	m.users[u.ID] = u
	return nil
}

func (m *memStore) List(ctx context.Context) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	out := []models.User{}
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, nil
}

func (m *memStore) GetByID(ctx context.Context, id string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.userGets++
	u, ok := m.users[id]
	if !ok {
		return models.User{}, domain.NotFoundError{Resource: "user"}
	}
	return u, nil
}

func (m *memStore) BookSeat(ctx context.Context, in models.BookRideInput) (models.BookingResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return models.BookingResult{}, m.failWith
	}
	ride, ok := m.rides[in.RideID]
	if !ok {
		return models.BookingResult{}, domain.NotFoundError{Resource: "ride"}
	}
	if ride.AvailableSeats <= 0 {
		return models.BookingResult{}, domain.NoSeatsError{RideID: in.RideID}
	}
	if _, ok := m.passengers[in.PassengerID]; !ok {
		return models.BookingResult{}, domain.NotFoundError{Resource: "passenger"}
	}
	ride.AvailableSeats--
	m.rides[in.RideID] = ride
	b := models.Booking{
		ID:           int64(len(m.bookings) + 1),
		RideID:       in.RideID,
		PassengerID:  in.PassengerID,
		PickupPoint:  in.PickupPoint,
		DropoffPoint: in.DropoffPoint,
	}
	m.bookings = append(m.bookings, b)
	return models.BookingResult{
		BookingID:      b.ID,
		RideID:         b.RideID,
		PassengerID:    b.PassengerID,
		SeatsRemaining: ride.AvailableSeats,
	}, nil
}

func (m *memStore) ListBookedForRide(ctx context.Context, rideID string) ([]models.BookedPassenger, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	out := []models.BookedPassenger{}
	for _, b := range m.bookings {
		if b.RideID != rideID {
			continue
		}
		p := m.passengers[b.PassengerID]
		out = append(out, models.BookedPassenger{
			PassengerID:  p.ID,
			Name:         p.Name,
			Phone:        p.Phone,
			PickupPoint:  b.PickupPoint,
			DropoffPoint: b.DropoffPoint,
		})
	}
	return out, nil
}

func (m *memStore) seats(rideID string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rides[rideID].AvailableSeats
}

func (m *memStore) bookingCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.bookings)
}

// rideStore adapts memStore to RideStore, whose method names clash with the user methods.
type rideStore struct{ m *memStore }

func (r rideStore) Insert(ctx context.Context, ride models.Ride) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.failWith != nil {
		return r.m.failWith
	}
	r.m.rides[ride.ID] = ride
	return nil
}

func (r rideStore) List(ctx context.Context) ([]models.Ride, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	out := []models.Ride{}
	for _, ride := range r.m.rides {
		out = append(out, ride)
	}
	return out, nil
}

func (r rideStore) ListByDate(ctx context.Context, date string) ([]models.Ride, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.failWith != nil {
		return nil, r.m.failWith
	}
	out := []models.Ride{}
	for _, ride := range r.m.rides {
		if ride.Date != nil && *ride.Date == date {
			out = append(out, ride)
		}
	}
	sort.Slice(out, func(i, j int) bool { return *out[i].Time < *out[j].Time })
	return out, nil
}

func (r rideStore) GetByID(ctx context.Context, id string) (models.Ride, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	ride, ok := r.m.rides[id]
	if !ok {
		return models.Ride{}, domain.NotFoundError{Resource: "ride"}
	}
	return ride, nil
}

type fareStore struct{ m *memStore }

func (f fareStore) Insert(ctx context.Context, fare models.RouteFare) error {
	f.m.mu.Lock()
	defer f.m.mu.Unlock()
	if f.m.failWith != nil {
		return f.m.failWith
	}
	f.m.fares = append([]models.RouteFare{fare}, f.m.fares...)
	return nil
}

func (f fareStore) List(ctx context.Context) ([]models.RouteFare, error) {
	f.m.mu.Lock()
	defer f.m.mu.Unlock()
	return append([]models.RouteFare{}, f.m.fares...), nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	keys   []string
	bodies []any
	err    error
}

func (p *recordingPublisher) PublishJSON(ctx context.Context, key string, v any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.keys = append(p.keys, key)
	p.bodies = append(p.bodies, v)
	return p.err
}

var errStoreDown = errors.New("store down")

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func strPtr(v string) *string { return &v }
