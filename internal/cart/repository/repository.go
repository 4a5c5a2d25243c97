package repository

import (
	"context"

	"github.com/fjod/go_storefront/internal/domain"
)

// CartRepository persists the whole cart as one record under a fixed key.
// Load returns an empty slice when nothing usable is stored: absence and
// malformed content are both recoverable, never errors.
type CartRepository interface {
	Load(ctx context.Context) ([]domain.CartItem, error)
	Save(ctx context.Context, items []domain.CartItem) error
	Close() error
}
