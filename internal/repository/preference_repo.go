package repository

import (
	"context"

	"github.com/Eursukkul/tour-booking/tour-service/pkg/storage"
)

type PreferenceRepository interface {
	LoadDarkMode(ctx context.Context) (bool, error)
	SaveDarkMode(ctx context.Context, on bool) error
}

type preferenceRepository struct {
	store storage.Store
}

func NewPreferenceRepository(store storage.Store) PreferenceRepository {
	return &preferenceRepository{store: store}
}

func (r *preferenceRepository) LoadDarkMode(ctx context.Context) (bool, error) {
	var on bool
	if _, err := loadJSON(ctx, r.store, storage.KeyDarkMode, &on); err != nil {
		return false, err
	}
	return on, nil
}

func (r *preferenceRepository) SaveDarkMode(ctx context.Context, on bool) error {
	return saveJSON(ctx, r.store, storage.KeyDarkMode, on)
}
