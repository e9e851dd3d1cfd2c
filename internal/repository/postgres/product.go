package postgres

import (
	"context"
	"database/sql"

	"github.com/bizledger/bizledger/internal/domain/product"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/logger"
	"github.com/bizledger/bizledger/internal/postgres"
	"github.com/bizledger/bizledger/internal/types"
)

type productRepository struct {
	db     postgres.IClient
	logger *logger.Logger
}

func NewProductRepository(db postgres.IClient, log *logger.Logger) product.Repository {
	return &productRepository{db: db, logger: log}
}

func (r *productRepository) Create(ctx context.Context, p *product.Product) error {
	query := `
		INSERT INTO products (
			id, name, description, sku, category, unit_price, cost_price,
			stock_quantity, unit,
			tenant_id, status, created_at, updated_at, created_by, updated_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9,
			$10, $11, $12, $13, $14, $15
		)`

	_, err := r.db.Conn(ctx).ExecContext(ctx, query,
		p.ID, p.Name, p.Description, p.SKU, p.Category, p.UnitPrice,
		p.CostPrice, p.StockQuantity, p.Unit,
		p.TenantID, p.Status, p.CreatedAt, p.UpdatedAt, p.CreatedBy, p.UpdatedBy)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create product").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *productRepository) Get(ctx context.Context, id string) (*product.Product, error) {
	var p product.Product
	query := `SELECT * FROM products WHERE id = $1 AND tenant_id = $2 AND status != 'deleted'`

	err := r.db.Conn(ctx).GetContext(ctx, &p, query, id, types.GetTenantID(ctx))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ierr.NewError("product not found").
				WithHintf("Product with ID %s was not found", id).
				WithReportableDetails(map[string]any{"product_id": id}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get product").
			Mark(ierr.ErrDatabase)
	}
	return &p, nil
}

func (r *productRepository) List(ctx context.Context, filter *types.QueryFilter) ([]*product.Product, error) {
	products := make([]*product.Product, 0)
	query := `SELECT * FROM products WHERE tenant_id = $1 AND status != 'deleted'` +
		listSuffix(filter, "created_at", "name", "sku", "category", "unit_price", "stock_quantity")

	err := r.db.Conn(ctx).SelectContext(ctx, &products, query, types.GetTenantID(ctx))
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list products").
			Mark(ierr.ErrDatabase)
	}
	return products, nil
}

func (r *productRepository) Count(ctx context.Context) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM products WHERE tenant_id = $1 AND status != 'deleted'`

	err := r.db.Conn(ctx).GetContext(ctx, &count, query, types.GetTenantID(ctx))
	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count products").
			Mark(ierr.ErrDatabase)
	}
	return count, nil
}

func (r *productRepository) Update(ctx context.Context, p *product.Product) error {
	query := `
		UPDATE products SET
			name = $3, description = $4, sku = $5, category = $6,
			unit_price = $7, cost_price = $8, stock_quantity = $9, unit = $10,
			updated_at = $11, updated_by = $12
		WHERE id = $1 AND tenant_id = $2 AND status != 'deleted'`

	result, err := r.db.Conn(ctx).ExecContext(ctx, query,
		p.ID, types.GetTenantID(ctx), p.Name, p.Description, p.SKU,
		p.Category, p.UnitPrice, p.CostPrice, p.StockQuantity, p.Unit,
		p.UpdatedAt, p.UpdatedBy)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update product").
			Mark(ierr.ErrDatabase)
	}
	return requireRowAffected(result, "product", p.ID)
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM products WHERE id = $1 AND tenant_id = $2`

	result, err := r.db.Conn(ctx).ExecContext(ctx, query, id, types.GetTenantID(ctx))
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete product").
			Mark(ierr.ErrDatabase)
	}
	return requireRowAffected(result, "product", id)
}
