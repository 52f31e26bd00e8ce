package storage

// Provider is a scoped key-value store with JSON-serializable values.
//
// Get reports false when the key has never been written. A stored value that
// cannot be deserialized is treated the same way: the condition is logged and
// the caller keeps its default, it is never surfaced as a failure. Set
// serializes and durably writes before returning; a write error is returned
// to the caller but whatever in-memory state the caller holds is not rolled
// back.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Values
	Get(key string, dest any) (bool, error)
	Set(key string, value any) error

	// Utils
	ConfigPath() string
}
