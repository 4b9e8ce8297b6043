package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mshaffan/inventory-api/pkg/inventory"
)

// InventoryRepository implements inventory.Repository backed by PostgreSQL.
type InventoryRepository struct {
	pool *pgxpool.Pool
}

func NewInventoryRepository(pool *pgxpool.Pool) (*InventoryRepository, error) {
	r := &InventoryRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *InventoryRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS inventories (
	id UUID PRIMARY KEY,
	owner_id UUID NOT NULL REFERENCES users(id),
	product_name TEXT NOT NULL,
	buying_price TEXT NOT NULL,
	selling_price TEXT NOT NULL,
	supplier_name TEXT NOT NULL,
	category TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_inventories_owner ON inventories(owner_id);
`)
	return err
}

func (r *InventoryRepository) Create(ctx context.Context, item inventory.Item) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO inventories (id, owner_id, product_name, buying_price, selling_price, supplier_name, category, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`, item.ID, item.OwnerID, item.ProductName, item.BuyingPrice, item.SellingPrice, item.SupplierName, item.Category, item.CreatedAt)
	return err
}

func (r *InventoryRepository) GetByID(ctx context.Context, id uuid.UUID) (inventory.Item, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, owner_id, product_name, buying_price, selling_price, supplier_name, category, created_at
FROM inventories WHERE id = $1
`, id)
	return scanItem(row)
}

func (r *InventoryRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]inventory.Item, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
SELECT id, owner_id, product_name, buying_price, selling_price, supplier_name, category, created_at
FROM inventories
WHERE owner_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3
`, ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []inventory.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, item)
	}
	return res, rows.Err()
}

func (r *InventoryRepository) Update(ctx context.Context, item inventory.Item) error {
	cmd, err := r.pool.Exec(ctx, `
UPDATE inventories
SET product_name = $2, buying_price = $3, selling_price = $4, supplier_name = $5, category = $6
WHERE id = $1
`, item.ID, item.ProductName, item.BuyingPrice, item.SellingPrice, item.SupplierName, item.Category)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return inventory.ErrNotFound
	}
	return nil
}

func (r *InventoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM inventories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return inventory.ErrNotFound
	}
	return nil
}

func scanItem(row pgx.Row) (inventory.Item, error) {
	var item inventory.Item
	var created time.Time
	err := row.Scan(&item.ID, &item.OwnerID, &item.ProductName, &item.BuyingPrice,
		&item.SellingPrice, &item.SupplierName, &item.Category, &created)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return inventory.Item{}, inventory.ErrNotFound
		}
		return inventory.Item{}, err
	}
	item.CreatedAt = created.UTC()
	return item, nil
}
