package storage

import (
	"context"
	"errors"
)

// Keys of the local-storage keyspace. They match the browser implementation
// so persisted blobs stay interchangeable.
const (
	KeyDarkMode   = "darkMode"
	KeyIsLoggedIn = "isLoggedIn"
	KeyUserData   = "userData"
	KeyCart       = "tourCart"
	KeyBookings   = "tourBookings"
)

var ErrNotFound = errors.New("storage: key not found")

// Store is a flat string-keyed keyspace holding raw values.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
