package port

// Cache is a bounded key-value store. Implementations are safe for
// concurrent use.
type Cache[K comparable, V any] interface {
	// Get returns the value stored for key and whether it was present.
	Get(key K) (V, bool)
	// Set stores value for key, evicting an older entry when full.
	Set(key K, value V)
	// Remove deletes key. Unknown keys are ignored.
	Remove(key K)
	// Len returns the number of stored entries.
	Len() int
	// Clear drops every entry.
	Clear()
}
