package storage

import "context"

// Keys of the top-level records.
const (
	KeyUsers       = "users"
	KeyDiaries     = "diaries"
	KeyCurrentUser = "currentUser"
	KeyStats       = "stats"
)

// Store is the key/value contract every repository goes through.
//
// Get returns (nil, nil) when the key is absent; callers treat malformed
// values the same way and fall back to their defaults rather than failing.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
