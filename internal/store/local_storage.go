package store

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/peterbourgon/diskv/v3"
)

// Keys of the local store. All entries live under a single key as one JSON
// object mapping dates to entries.
const (
	entriesKey     = "diary_entries"
	preferencesKey = "diary-statistics-preferences"
)

// keyValueStore is the part of [diskv.Diskv] the local backend uses.
type keyValueStore interface {
	Read(key string) ([]byte, error)
	Write(key string, val []byte) error
	Erase(key string) error
	Has(key string) bool
}

// NewDiskv opens a flat diskv store rooted at dir.
func NewDiskv(dir string) *diskv.Diskv {
	return diskv.New(diskv.Options{
		BasePath:     dir,
		Transform:    func(string) []string { return []string{} },
		CacheSizeMax: 1024 * 1024, // 1MB
	})
}

// readKey returns the value under key, or nil when the key does not exist.
func readKey(kv keyValueStore, key string) ([]byte, error) {
	if !kv.Has(key) {
		return nil, nil
	}

	data, err := kv.Read(key)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", key, err)
	}
	return data, nil
}
