package pgdb

import (
	"context"
	"errors"

	"github.com/DRSN-tech/petstore-backend/internal/domain"
	"github.com/DRSN-tech/petstore-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/petstore-backend/pkg/e"
	"github.com/DRSN-tech/petstore-backend/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// VariantRepo реализует репозиторий вариантов товара поверх PostgreSQL.
type VariantRepo struct {
	pool *pgxpool.Pool
	conv converter.VariantConverter
}

func NewVariantRepo(pool *pgxpool.Pool, conv converter.VariantConverter) *VariantRepo {
	return &VariantRepo{
		pool: pool,
		conv: conv,
	}
}

func (v *VariantRepo) Create(ctx context.Context, variant *domain.Variant) (*domain.Variant, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO variants (product_id, label, price, stock_quantity, weight_kg)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, product_id, label, price, stock_quantity, weight_kg;
	`

	var model converter.VariantModel
	if err := tx.QueryRow(ctx, query,
		variant.ProductID, variant.Label, variant.Price, variant.StockQuantity, variant.WeightKg,
	).Scan(
		&model.ID, &model.ProductID, &model.Label, &model.Price, &model.StockQuantity, &model.WeightKg,
	); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return v.conv.ToEntity(&model), nil
}

// GetForUpdate читает вариант с блокировкой строки до конца текущей транзакции.
func (v *VariantRepo) GetForUpdate(ctx context.Context, id int64) (*domain.Variant, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		SELECT id, product_id, label, price, stock_quantity, weight_kg
		FROM variants
		WHERE id = $1
		FOR UPDATE;
	`

	var model converter.VariantModel
	if err := tx.QueryRow(ctx, query, id).Scan(
		&model.ID, &model.ProductID, &model.Label, &model.Price, &model.StockQuantity, &model.WeightKg,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return v.conv.ToEntity(&model), nil
}

// DecrementStock списывает остаток; условие в WHERE не даёт опуститься ниже нуля.
func (v *VariantRepo) DecrementStock(ctx context.Context, id, quantity int64) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE variants
		SET stock_quantity = stock_quantity - $2
		WHERE id = $1 AND stock_quantity >= $2;
	`

	result, err := tx.Exec(ctx, query, id, quantity)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrInsufficientStock)
	}

	return nil
}

func (v *VariantRepo) IncrementStock(ctx context.Context, id, quantity int64) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE variants
		SET stock_quantity = stock_quantity + $2
		WHERE id = $1;
	`

	result, err := tx.Exec(ctx, query, id, quantity)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrNotFound)
	}

	return nil
}

func (v *VariantRepo) ListByProduct(ctx context.Context, productID int64) ([]domain.Variant, error) {
	query := `
		SELECT id, product_id, label, price, stock_quantity, weight_kg
		FROM variants
		WHERE product_id = $1
		ORDER BY id;
	`

	rows, err := v.pool.Query(ctx, query, productID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.Variant, 0)
	for rows.Next() {
		var model converter.VariantModel
		if err := rows.Scan(
			&model.ID, &model.ProductID, &model.Label, &model.Price, &model.StockQuantity, &model.WeightKg,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, *v.conv.ToEntity(&model))
	}

	return result, rows.Err()
}
