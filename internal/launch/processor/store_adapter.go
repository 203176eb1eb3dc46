package processor

import (
	"context"

	"marketing-server/internal/store"
)

// StoreAdapter exposes *store.Store as a LaunchStore.
type StoreAdapter struct {
	*store.Store
}

func NewStoreAdapter(s *store.Store) StoreAdapter {
	return StoreAdapter{Store: s}
}

func (a StoreAdapter) InTx(ctx context.Context, fn func(tx LaunchStore) error) error {
	return a.Store.WithTx(ctx, func(tx *store.Store) error {
		return fn(StoreAdapter{Store: tx})
	})
}
