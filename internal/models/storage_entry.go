package models

import "time"

// StorageEntry is one key of the local-storage keyspace when it is kept in
// postgres.
type StorageEntry struct {
	Key       string    `gorm:"primaryKey;type:varchar(64)" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
