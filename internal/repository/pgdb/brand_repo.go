package pgdb

import (
	"context"

	"github.com/DRSN-tech/petstore-backend/internal/domain"
	"github.com/DRSN-tech/petstore-backend/pkg/e"
	"github.com/DRSN-tech/petstore-backend/pkg/tr"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// BrandRepo реализует репозиторий брендов поверх PostgreSQL.
type BrandRepo struct {
	pool *pgxpool.Pool
}

func NewBrandRepo(pool *pgxpool.Pool) *BrandRepo {
	return &BrandRepo{pool: pool}
}

// Create идемпотентно создаёт бренд по имени, дубликат возвращает существующую запись.
func (b *BrandRepo) Create(ctx context.Context, brand *domain.Brand) (*domain.Brand, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		WITH ins AS (
			INSERT INTO brands (name, description)
			VALUES ($1, $2)
			ON CONFLICT (name) DO NOTHING
			RETURNING id, name, description
		)
		SELECT id, name, description FROM ins
		UNION ALL
		SELECT id, name, description FROM brands
		WHERE name = $1 AND NOT EXISTS (SELECT 1 FROM ins);
	`

	result := &domain.Brand{}
	if err := tx.QueryRow(ctx, query, brand.Name, brand.Description).
		Scan(&result.ID, &result.Name, &result.Description); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}
