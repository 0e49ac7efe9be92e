package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/horeca-one/catalogd/internal/model"
	"github.com/horeca-one/catalogd/internal/service"
)

// ListProductKeys returns the {sku, name} projection of every product, used
// to seed duplicate detection at the start of an import run.
func (s *SQLiteStorage) ListProductKeys(ctx context.Context) ([]model.ProductKey, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT COALESCE(sku, ''), name FROM products`)
	if err != nil {
		return nil, fmt.Errorf("failed to query product keys: %w", err)
	}
	defer rows.Close()

	var keys []model.ProductKey
	for rows.Next() {
		var key model.ProductKey
		if err := rows.Scan(&key.SKU, &key.Name); err != nil {
			return nil, fmt.Errorf("failed to scan product key: %w", err)
		}
		keys = append(keys, key)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product keys: %w", err)
	}

	return keys, nil
}

// CreateProduct persists a product and returns its assigned id.
func (s *SQLiteStorage) CreateProduct(ctx context.Context, product *model.Product) (string, error) {
	if err := validateContext(ctx); err != nil {
		return "", err
	}
	if err := validateProduct(product); err != nil {
		return "", err
	}

	if product.ID == "" {
		product.ID = uuid.NewString()
	}
	if product.CreatedAt.IsZero() {
		product.CreatedAt = time.Now()
	}

	pricingJSON, err := json.Marshal(product.Pricing)
	if err != nil {
		return "", fmt.Errorf("failed to marshal pricing: %w", err)
	}

	query := `
		INSERT INTO products (
			id, sku, name, description, slug, hsn, unit, brand,
			category_id, image, status, taxable_rate, tax_percent,
			original_price, price, discount, pricing, stock, display_order, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	if _, err := s.db.ExecContext(ctx, query,
		product.ID, product.SKU, product.Name, product.Description, product.Slug,
		product.HSN, product.Unit, product.Brand, product.CategoryID, product.Image,
		string(product.Status), product.TaxableRate, product.TaxPercent,
		product.Prices.OriginalPrice, product.Prices.Price, product.Prices.Discount,
		string(pricingJSON), product.Stock, product.Order, product.CreatedAt,
	); err != nil {
		return "", fmt.Errorf("failed to create product: %w", err)
	}

	slog.Debug("created product", "id", product.ID, "sku", product.SKU)
	return product.ID, nil
}

// ListProducts returns products matching the filter, newest first.
func (s *SQLiteStorage) ListProducts(ctx context.Context, filter service.ProductFilter) ([]model.Product, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, COALESCE(sku, ''), name, COALESCE(description, ''), COALESCE(slug, ''),
		       COALESCE(hsn, ''), COALESCE(unit, ''), COALESCE(brand, ''),
		       COALESCE(category_id, ''), COALESCE(image, ''), status,
		       taxable_rate, tax_percent, original_price, price, discount,
		       COALESCE(pricing, ''), stock, display_order, created_at
		FROM products`

	where, args := filterClauses(filter)
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at DESC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var p model.Product
		var pricingJSON string
		if err := rows.Scan(
			&p.ID, &p.SKU, &p.Name, &p.Description, &p.Slug,
			&p.HSN, &p.Unit, &p.Brand, &p.CategoryID, &p.Image, &p.Status,
			&p.TaxableRate, &p.TaxPercent,
			&p.Prices.OriginalPrice, &p.Prices.Price, &p.Prices.Discount,
			&pricingJSON, &p.Stock, &p.Order, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		if pricingJSON != "" {
			if err := json.Unmarshal([]byte(pricingJSON), &p.Pricing); err != nil {
				return nil, fmt.Errorf("failed to unmarshal pricing for product %s: %w", p.ID, err)
			}
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// CountProducts returns the number of products matching the filter.
func (s *SQLiteStorage) CountProducts(ctx context.Context, filter service.ProductFilter) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	query := `SELECT COUNT(*) FROM products`
	where, args := filterClauses(filter)
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}

	var count int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}

// DeleteProductsWithSKU removes every product that carries a SKU. Imported
// products always do; hand-seeded storefront entries do not.
func (s *SQLiteStorage) DeleteProductsWithSKU(ctx context.Context) (int64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM products WHERE sku IS NOT NULL AND sku != ''`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete products: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read deleted count: %w", err)
	}

	slog.Info("deleted products with SKU", "count", deleted)
	return deleted, nil
}

func filterClauses(filter service.ProductFilter) ([]string, []any) {
	var where []string
	var args []any

	if filter.Status != "" {
		where = append(where, "status = ?")
		args = append(args, string(filter.Status))
	}
	if filter.HasSKU != nil {
		if *filter.HasSKU {
			where = append(where, "sku IS NOT NULL AND sku != ''")
		} else {
			where = append(where, "(sku IS NULL OR sku = '')")
		}
	}

	return where, args
}
