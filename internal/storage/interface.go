package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when a key has never been written
var ErrNotFound = errors.New("key not found")

// Store is a plain key/value persistence capability.
// There are no transactions: concurrent writers race and the last write wins.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
