package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"catalogbot/internal/model"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

const productColumns = `p.id, p.name, p.price, p.description, p.specification, p.image, p.sale, b.name AS brand`

// CatalogRepository handles read access to the product catalog
type CatalogRepository struct {
	db *sqlx.DB
}

// NewCatalogRepository connects to PostgreSQL and returns the catalog gateway
func NewCatalogRepository(dsn string, maxConn, maxIdleConn int) (*CatalogRepository, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(maxConn)
	db.SetMaxIdleConns(maxIdleConn)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &CatalogRepository{db: db}, nil
}

// NewCatalogRepositoryWithDB wraps an existing connection, for tests.
func NewCatalogRepositoryWithDB(db *sqlx.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// Close closes the database connection
func (r *CatalogRepository) Close() error {
	return r.db.Close()
}

// ProductsUnderPrice returns products priced strictly below maxPrice. A nil
// ceiling (failed extraction upstream) yields no rows rather than an error.
func (r *CatalogRepository) ProductsUnderPrice(ctx context.Context, maxPrice *int64) ([]model.Product, error) {
	if maxPrice == nil {
		return nil, nil
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM products p
		LEFT JOIN brands b ON p.brand_id = b.id
		WHERE p.price < $1
	`, productColumns)

	var products []model.Product
	if err := r.db.SelectContext(ctx, &products, query, *maxPrice); err != nil {
		return nil, fmt.Errorf("failed to query products by price: %w", err)
	}
	return products, nil
}

// ProductsByBrand resolves the brand by case-insensitive substring (first
// match wins) and returns every product of that brand.
func (r *CatalogRepository) ProductsByBrand(ctx context.Context, brand string) ([]model.Product, error) {
	var brandID int64
	err := r.db.GetContext(ctx, &brandID,
		`SELECT id FROM brands WHERE name ILIKE $1 LIMIT 1`, "%"+brand+"%")
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve brand: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM products p
		JOIN brands b ON p.brand_id = b.id
		WHERE p.brand_id = $1
	`, productColumns)

	var products []model.Product
	if err := r.db.SelectContext(ctx, &products, query, brandID); err != nil {
		return nil, fmt.Errorf("failed to query products by brand: %w", err)
	}
	return products, nil
}

// SearchProducts matches every whitespace-split token of keyword against the
// product name (AND). When that finds nothing it retries with each token
// OR-matched against name or description; the broad result set is returned
// unranked.
func (r *CatalogRepository) SearchProducts(ctx context.Context, keyword string) ([]model.Product, error) {
	tokens := strings.Fields(keyword)
	if len(tokens) == 0 {
		return nil, nil
	}

	conditions := make([]string, 0, len(tokens))
	args := make([]interface{}, 0, len(tokens))
	for i, token := range tokens {
		conditions = append(conditions, fmt.Sprintf("p.name ILIKE $%d", i+1))
		args = append(args, "%"+token+"%")
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM products p
		LEFT JOIN brands b ON p.brand_id = b.id
		WHERE %s
	`, productColumns, strings.Join(conditions, " AND "))

	var products []model.Product
	if err := r.db.SelectContext(ctx, &products, query, args...); err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	if len(products) > 0 {
		return products, nil
	}

	orConditions := make([]string, 0, len(tokens)*2)
	orArgs := make([]interface{}, 0, len(tokens)*2)
	argIndex := 1
	for _, token := range tokens {
		orConditions = append(orConditions, fmt.Sprintf("p.name ILIKE $%d", argIndex))
		orArgs = append(orArgs, "%"+token+"%")
		argIndex++
		orConditions = append(orConditions, fmt.Sprintf("p.description ILIKE $%d", argIndex))
		orArgs = append(orArgs, "%"+token+"%")
		argIndex++
	}

	orQuery := fmt.Sprintf(`
		SELECT %s
		FROM products p
		LEFT JOIN brands b ON p.brand_id = b.id
		WHERE %s
	`, productColumns, strings.Join(orConditions, " OR "))

	if err := r.db.SelectContext(ctx, &products, orQuery, orArgs...); err != nil {
		return nil, fmt.Errorf("failed to search products (broad match): %w", err)
	}
	return products, nil
}

// ProductByExactName returns the product whose name matches exactly,
// case-insensitively, or nil when there is none.
func (r *CatalogRepository) ProductByExactName(ctx context.Context, name string) (*model.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM products p
		LEFT JOIN brands b ON p.brand_id = b.id
		WHERE LOWER(p.name) = LOWER($1)
	`, productColumns)

	var product model.Product
	err := r.db.GetContext(ctx, &product, query, name)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get product by name: %w", err)
	}
	return &product, nil
}
