package inventory

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Item is a single inventory record owned by one user.
type Item struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	ProductName  string
	BuyingPrice  string
	SellingPrice string
	SupplierName string
	Category     string
	CreatedAt    time.Time
}

var (
	ErrNotFound = errors.New("inventory not found")
	// ErrNotOwner means the item exists but belongs to another user.
	ErrNotOwner = errors.New("invalid authorization")
)

// Repository is the persistence port for inventory items.
type Repository interface {
	Create(ctx context.Context, item Item) error
	GetByID(ctx context.Context, id uuid.UUID) (Item, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Item, error)
	Update(ctx context.Context, item Item) error
	Delete(ctx context.Context, id uuid.UUID) error
}
