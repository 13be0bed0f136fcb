package domain

import "go.trai.ch/zerr"

var (
	// ErrPlanNotFound is returned when the plan service has no plan for the requested id.
	// It is an expected outcome and maps to the noPlan state, never to error.
	ErrPlanNotFound = zerr.New("plan not found")

	// ErrServiceUnavailable is returned when the plan service cannot be reached
	// or answers with a non-success status other than not found.
	ErrServiceUnavailable = zerr.New("plan service unavailable")

	// ErrPlanDecodeFailed is returned when a plan service response cannot be decoded.
	ErrPlanDecodeFailed = zerr.New("failed to decode plan service response")

	// ErrPlanCreateFailed is returned when requesting creation of a new weekly plan fails.
	ErrPlanCreateFailed = zerr.New("failed to create weekly plan")

	// ErrEntryDecodeFailed is returned when a cached entry cannot be decoded.
	// The corrupt entry is cleared before this is reported.
	ErrEntryDecodeFailed = zerr.New("failed to decode cache entry")

	// ErrEntryEncodeFailed is returned when a cache entry cannot be encoded for storage.
	ErrEntryEncodeFailed = zerr.New("failed to encode cache entry")

	// ErrStoreReadFailed is returned when the key-value store cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read from key-value store")

	// ErrStoreWriteFailed is returned when the key-value store cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write to key-value store")

	// ErrStoreRemoveFailed is returned when a key cannot be removed from the store.
	ErrStoreRemoveFailed = zerr.New("failed to remove key from store")

	// ErrStoreCreateFailed is returned when the store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create store directory")

	// ErrCacheClearFailed is returned when clearing a registered cache fails.
	ErrCacheClearFailed = zerr.New("failed to clear cache")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidWeek is returned when a week number outside [1, totalWeeks] is requested
	// from an operation that requires an existing week.
	ErrInvalidWeek = zerr.New("invalid week number")

	// ErrControllerClosed is returned when an operation is issued on a closed controller.
	ErrControllerClosed = zerr.New("controller is closed")

	// ErrWatcherStartFailed is returned when the store watcher cannot be started.
	ErrWatcherStartFailed = zerr.New("failed to start store watcher")

	// ErrSyncFailed is returned by application operations when the sync flow
	// ended in the error state. The originating step is attached as context.
	ErrSyncFailed = zerr.New("plan synchronization failed")
)
