package repository

import (
	"context"

	"github.com/Eursukkul/tour-booking/tour-service/internal/models"
	"github.com/Eursukkul/tour-booking/tour-service/pkg/storage"
)

type BookingRepository interface {
	Load(ctx context.Context) ([]models.Booking, error)
	Save(ctx context.Context, bookings []models.Booking) error
}

type bookingRepository struct {
	store storage.Store
}

func NewBookingRepository(store storage.Store) BookingRepository {
	return &bookingRepository{store: store}
}

func (r *bookingRepository) Load(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	found, err := loadJSON(ctx, r.store, storage.KeyBookings, &bookings)
	if err != nil {
		return nil, err
	}
	if !found || bookings == nil {
		return []models.Booking{}, nil
	}
	return bookings, nil
}

func (r *bookingRepository) Save(ctx context.Context, bookings []models.Booking) error {
	if bookings == nil {
		bookings = []models.Booking{}
	}
	return saveJSON(ctx, r.store, storage.KeyBookings, bookings)
}
