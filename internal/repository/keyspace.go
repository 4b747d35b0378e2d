package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/Eursukkul/tour-booking/tour-service/pkg/storage"
)

// loadJSON reads key into out. A missing key reports found=false. A value
// that does not decode is discarded: the key is deleted, the problem is
// logged and found=false is returned, so callers fall back to their default.
// Only backend failures come back as errors.
func loadJSON(ctx context.Context, store storage.Store, key string, out any) (bool, error) {
	raw, err := store.Get(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal(raw, out); err != nil {
		log.Printf("[Storage] discarding malformed %q: %v", key, err)
		if delErr := store.Delete(ctx, key); delErr != nil {
			return false, fmt.Errorf("reset %s: %w", key, delErr)
		}
		return false, nil
	}
	return true, nil
}

func saveJSON(ctx context.Context, store storage.Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return store.Set(ctx, key, raw)
}
