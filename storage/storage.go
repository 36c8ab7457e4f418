// Package storage defines the durable key-value store that keeps the client session
// between runs, the Go counterpart of the browser's localStorage.
package storage

// Keys persisted by the client.
const (
	KeyAccessToken  = "accessToken"
	KeyRefreshToken = "refreshToken"
	KeyAuthUser     = "authUser" // JSON encoded user profile
)

// SessionKeys lists every key owned by the session, in the order they are written.
var SessionKeys = []string{KeyAccessToken, KeyRefreshToken, KeyAuthUser}

// Store is a string key-value store.
type Store interface {
	// Get returns the stored value, or errors.ErrNotFound when the key is absent
	Get(key string) (string, error)

	// Set creates or replaces a value
	Set(key, value string) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(key string) error
}
