package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (*CatalogRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewCatalogRepositoryWithDB(sqlx.NewDb(db, "sqlmock")), mock
}

func productRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "price", "description", "specification", "image", "sale", "brand"})
}

func TestProductsUnderPrice(t *testing.T) {
	t.Run("returns matching rows", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery("WHERE p.price < \\$1").
			WithArgs(int64(500000)).
			WillReturnRows(productRows().
				AddRow(1, "Vans Old Skool", 450000, nil, nil, nil, nil, "Vans"))

		ceiling := int64(500000)
		products, err := repo.ProductsUnderPrice(context.Background(), &ceiling)

		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Vans Old Skool", products[0].Name)
		assert.Equal(t, int64(450000), products[0].Price)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nil ceiling issues no query", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		products, err := repo.ProductsUnderPrice(context.Background(), nil)

		require.NoError(t, err)
		assert.Empty(t, products)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProductsByBrand(t *testing.T) {
	t.Run("substring match resolves brand then lists products", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery("SELECT id FROM brands WHERE name ILIKE \\$1 LIMIT 1").
			WithArgs("%nike%").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
		mock.ExpectQuery("WHERE p.brand_id = \\$1").
			WithArgs(int64(3)).
			WillReturnRows(productRows().
				AddRow(1, "Nike Pegasus", 3000000, nil, nil, nil, nil, "Nike").
				AddRow(2, "Nike Jordan 1", 4200000, nil, nil, nil, nil, "Nike"))

		products, err := repo.ProductsByBrand(context.Background(), "nike")

		require.NoError(t, err)
		assert.Len(t, products, 2)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown brand returns empty without product query", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery("SELECT id FROM brands WHERE name ILIKE \\$1 LIMIT 1").
			WithArgs("%reebok%").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		products, err := repo.ProductsByBrand(context.Background(), "reebok")

		require.NoError(t, err)
		assert.Empty(t, products)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSearchProducts(t *testing.T) {
	t.Run("all tokens AND-matched against name", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery(`p.name ILIKE \$1 AND p.name ILIKE \$2`).
			WithArgs("%giày%", "%nike%").
			WillReturnRows(productRows().
				AddRow(1, "Giày Nike Pegasus", 3000000, nil, nil, nil, nil, "Nike"))

		products, err := repo.SearchProducts(context.Background(), "giày nike")

		require.NoError(t, err)
		assert.Len(t, products, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty AND result retries OR across name and description", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery(`p.name ILIKE \$1 AND p.name ILIKE \$2`).
			WithArgs("%giày%", "%đỏ%").
			WillReturnRows(productRows())
		mock.ExpectQuery(`p.name ILIKE \$1 OR p.description ILIKE \$2 OR p.name ILIKE \$3 OR p.description ILIKE \$4`).
			WithArgs("%giày%", "%giày%", "%đỏ%", "%đỏ%").
			WillReturnRows(productRows().
				AddRow(7, "Converse Classic", 1400000, "giày vải màu đỏ", nil, nil, nil, "Converse"))

		products, err := repo.SearchProducts(context.Background(), "giày đỏ")

		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Converse Classic", products[0].Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("blank keyword returns empty without query", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		products, err := repo.SearchProducts(context.Background(), "   ")

		require.NoError(t, err)
		assert.Empty(t, products)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProductByExactName(t *testing.T) {
	t.Run("case-insensitive exact match", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery(`WHERE LOWER\(p.name\) = LOWER\(\$1\)`).
			WithArgs("nike jordan 1").
			WillReturnRows(productRows().
				AddRow(2, "Nike Jordan 1", 4200000, nil, nil, nil, nil, "Nike"))

		product, err := repo.ProductByExactName(context.Background(), "nike jordan 1")

		require.NoError(t, err)
		require.NotNil(t, product)
		assert.Equal(t, "Nike Jordan 1", product.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("miss returns nil without error", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery(`WHERE LOWER\(p.name\) = LOWER\(\$1\)`).
			WithArgs("không tồn tại").
			WillReturnRows(productRows())

		product, err := repo.ProductByExactName(context.Background(), "không tồn tại")

		require.NoError(t, err)
		assert.Nil(t, product)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
