package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UseCase encapsulates the owner-scoped inventory operations. Every method
// takes the verified owner id from the request identity; no operation ever
// touches another user's items.
type UseCase interface {
	Create(ctx context.Context, item Item) (Item, error)
	List(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Item, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, patch Patch) (Item, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

// Patch carries the optional fields of a partial update; nil means "keep".
type Patch struct {
	ProductName  *string
	BuyingPrice  *string
	SellingPrice *string
	SupplierName *string
	Category     *string
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

func (s *service) Create(ctx context.Context, item Item) (Item, error) {
	item.ProductName = strings.TrimSpace(item.ProductName)
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now().UTC()
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return Item{}, err
	}
	return item, nil
}

func (s *service) List(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Item, error) {
	return s.repo.ListByOwner(ctx, ownerID, limit, offset)
}

func (s *service) Update(ctx context.Context, ownerID, id uuid.UUID, patch Patch) (Item, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Item{}, err
	}
	if item.OwnerID != ownerID {
		return Item{}, ErrNotOwner
	}
	if patch.ProductName != nil {
		item.ProductName = *patch.ProductName
	}
	if patch.BuyingPrice != nil {
		item.BuyingPrice = *patch.BuyingPrice
	}
	if patch.SellingPrice != nil {
		item.SellingPrice = *patch.SellingPrice
	}
	if patch.SupplierName != nil {
		item.SupplierName = *patch.SupplierName
	}
	if patch.Category != nil {
		item.Category = *patch.Category
	}
	if err := s.repo.Update(ctx, item); err != nil {
		return Item{}, err
	}
	return item, nil
}

func (s *service) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item.OwnerID != ownerID {
		return ErrNotOwner
	}
	return s.repo.Delete(ctx, id)
}
