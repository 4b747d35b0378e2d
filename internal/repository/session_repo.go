package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/Eursukkul/tour-booking/tour-service/internal/models"
	"github.com/Eursukkul/tour-booking/tour-service/pkg/storage"
)

// SessionRepository persists the login flag and the profile under separate
// keys. Nothing ties the two together on restore.
type SessionRepository interface {
	LoadLoggedIn(ctx context.Context) (bool, error)
	SaveLoggedIn(ctx context.Context, loggedIn bool) error
	LoadProfile(ctx context.Context) (*models.UserProfile, error)
	SaveProfile(ctx context.Context, profile models.UserProfile) error
	DeleteProfile(ctx context.Context) error
}

type sessionRepository struct {
	store storage.Store
}

func NewSessionRepository(store storage.Store) SessionRepository {
	return &sessionRepository{store: store}
}

// LoadLoggedIn treats anything but the exact string "true" as logged out.
func (r *sessionRepository) LoadLoggedIn(ctx context.Context) (bool, error) {
	raw, err := r.store.Get(ctx, storage.KeyIsLoggedIn)
	if errors.Is(err, storage.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return string(raw) == "true", nil
}

func (r *sessionRepository) SaveLoggedIn(ctx context.Context, loggedIn bool) error {
	return r.store.Set(ctx, storage.KeyIsLoggedIn, []byte(strconv.FormatBool(loggedIn)))
}

// LoadProfile returns nil when the key is absent, holds JSON null, or is corrupt.
func (r *sessionRepository) LoadProfile(ctx context.Context) (*models.UserProfile, error) {
	var profile *models.UserProfile
	found, err := loadJSON(ctx, r.store, storage.KeyUserData, &profile)
	if err != nil || !found {
		return nil, err
	}
	return profile, nil
}

func (r *sessionRepository) SaveProfile(ctx context.Context, profile models.UserProfile) error {
	return saveJSON(ctx, r.store, storage.KeyUserData, profile)
}

func (r *sessionRepository) DeleteProfile(ctx context.Context) error {
	return r.store.Delete(ctx, storage.KeyUserData)
}
