package repository

import (
	"context"
	"sync"

	"github.com/fjod/go_storefront/internal/domain"
)

// MemoryRepository keeps the cart in process memory. Used in tests and
// when running without a writable disk; nothing survives a restart.
type MemoryRepository struct {
	mu    sync.RWMutex
	items []domain.CartItem
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Load(_ context.Context) ([]domain.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]domain.CartItem, len(r.items))
	copy(items, r.items)
	return items, nil
}

func (r *MemoryRepository) Save(_ context.Context, items []domain.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = make([]domain.CartItem, len(items))
	copy(r.items, items)
	return nil
}

func (r *MemoryRepository) Close() error {
	return nil
}
