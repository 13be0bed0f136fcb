// Package ports defines the core interfaces for the application.
package ports

// KeyValueStore is the only persistence primitive the cache layer depends
// on: an opaque byte store keyed by string. No transactions and no atomic
// multi-key writes are assumed. Concurrent access to distinct keys is safe;
// writes to the same key are last-writer-wins.
//
//go:generate mockgen -source=keyvalue.go -destination=mocks/mock_keyvalue.go -package=mocks
type KeyValueStore interface {
	// Get retrieves the bytes stored under key.
	// Returns nil, nil if the key is absent.
	Get(key string) ([]byte, error)

	// Set stores the bytes under key, replacing any previous value.
	Set(key string, value []byte) error

	// Remove deletes the key. Removing an absent key is not an error.
	Remove(key string) error
}
