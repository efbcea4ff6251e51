package testutil

import (
	"context"
	"errors"

	"github.com/mcoot/golfcup/internal/storage"
)

// ErrStoreUnavailable is returned by every FailingStore operation
var ErrStoreUnavailable = errors.New("store unavailable")

// FailingStore is a Store whose every operation fails.
// Use it to check that services degrade instead of erroring.
type FailingStore struct {
	Gets int
	Sets int
}

var _ storage.Store = (*FailingStore)(nil)

func (f *FailingStore) Get(ctx context.Context, key string) ([]byte, error) {
	f.Gets++
	return nil, ErrStoreUnavailable
}

func (f *FailingStore) Set(ctx context.Context, key string, value []byte) error {
	f.Sets++
	return ErrStoreUnavailable
}

func (f *FailingStore) Delete(ctx context.Context, key string) error {
	return ErrStoreUnavailable
}
