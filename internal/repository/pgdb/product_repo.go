package pgdb

import (
	"context"
	"errors"

	"github.com/DRSN-tech/petstore-backend/internal/domain"
	"github.com/DRSN-tech/petstore-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/petstore-backend/internal/usecase"
	"github.com/DRSN-tech/petstore-backend/pkg/e"
	"github.com/DRSN-tech/petstore-backend/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// ProductRepo реализует репозиторий товаров поверх PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductConverter
}

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

// Create вставляет товар в рамках транзакции из контекста.
func (p *ProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO products (sku, name, description, brand_id, price, stock, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, sku, name, description, brand_id, price, stock, created_at, updated_at, is_active;
	`

	var model converter.ProductModel
	if err := tx.QueryRow(ctx, query,
		product.SKU, product.Name, product.Description,
		product.BrandID, product.Price, product.Stock, product.IsActive,
	).Scan(
		&model.ID, &model.SKU, &model.Name, &model.Description, &model.BrandID,
		&model.Price, &model.Stock, &model.CreatedAt, &model.UpdatedAt, &model.IsActive,
	); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

func (p *ProductRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := `
		SELECT id, sku, name, description, brand_id, price, stock, created_at, updated_at, is_active
		FROM products
		WHERE id = $1;
	`

	var model converter.ProductModel
	if err := p.pool.QueryRow(ctx, query, id).Scan(
		&model.ID, &model.SKU, &model.Name, &model.Description, &model.BrandID,
		&model.Price, &model.Stock, &model.CreatedAt, &model.UpdatedAt, &model.IsActive,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

// GetProductsInfo возвращает информацию о товарах по их идентификаторам,
// включая название первой по алфавиту категории.
func (p *ProductRepo) GetProductsInfo(ctx context.Context, ids []int64) ([]usecase.ProductInfo, error) {
	query := `
		SELECT
			pr.id, pr.sku, pr.name, pr.price,
			COALESCE((
				SELECT cat.name
				FROM product_categories pc
				JOIN categories cat ON cat.id = pc.category_id
				WHERE pc.product_id = pr.id
				ORDER BY cat.name
				LIMIT 1
			), '') AS category_name
		FROM products pr
		WHERE pr.id = ANY($1);
	`

	rows, err := p.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]usecase.ProductInfo, 0)
	for rows.Next() {
		var product usecase.ProductInfo
		if err := rows.Scan(&product.ID, &product.SKU, &product.Name, &product.Price, &product.CategoryName); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, product)
	}

	return result, rows.Err()
}

// List возвращает страницу активных товаров в порядке добавления.
func (p *ProductRepo) List(ctx context.Context, limit, offset int64) ([]usecase.ProductInfo, error) {
	query := `
		SELECT
			pr.id, pr.sku, pr.name, pr.price,
			COALESCE((
				SELECT cat.name
				FROM product_categories pc
				JOIN categories cat ON cat.id = pc.category_id
				WHERE pc.product_id = pr.id
				ORDER BY cat.name
				LIMIT 1
			), '') AS category_name
		FROM products pr
		WHERE pr.is_active
		ORDER BY pr.id
		LIMIT $1 OFFSET $2;
	`

	rows, err := p.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]usecase.ProductInfo, 0)
	for rows.Next() {
		var product usecase.ProductInfo
		if err := rows.Scan(&product.ID, &product.SKU, &product.Name, &product.Price, &product.CategoryName); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, product)
	}

	return result, rows.Err()
}

// LinkCategory идемпотентно связывает товар с категорией.
func (p *ProductRepo) LinkCategory(ctx context.Context, productID, categoryID int64) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO product_categories (product_id, category_id)
		VALUES ($1, $2)
		ON CONFLICT (product_id, category_id) DO NOTHING;
	`

	if _, err := tx.Exec(ctx, query, productID, categoryID); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (p *ProductRepo) AddImage(ctx context.Context, image *domain.ProductImage) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO product_images (product_id, image_url, alt_text, sort_order)
		VALUES ($1, $2, $3, $4)
		RETURNING id;
	`

	if err := tx.QueryRow(ctx, query,
		image.ProductID, image.ImageURL, image.AltText, image.SortOrder,
	).Scan(&image.ID); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
