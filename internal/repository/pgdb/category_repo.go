package pgdb

import (
	"context"

	"github.com/DRSN-tech/petstore-backend/internal/domain"
	"github.com/DRSN-tech/petstore-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/petstore-backend/pkg/e"
	"github.com/DRSN-tech/petstore-backend/pkg/tr"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// CategoryRepo реализует репозиторий категорий поверх PostgreSQL.
type CategoryRepo struct {
	pool *pgxpool.Pool
	conv converter.CategoryConverter
}

func NewCategoryRepo(pool *pgxpool.Pool, conv converter.CategoryConverter) *CategoryRepo {
	return &CategoryRepo{pool: pool, conv: conv}
}

// Create идемпотентно создаёт категорию по имени, дубликат возвращает существующую запись.
func (c *CategoryRepo) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		WITH ins AS (
			INSERT INTO categories (name, parent_id, description)
			VALUES ($1, $2, $3)
			ON CONFLICT (name) DO NOTHING
			RETURNING id, name, parent_id, description
		)
		SELECT id, name, parent_id, description FROM ins
		UNION ALL
		SELECT id, name, parent_id, description FROM categories
		WHERE name = $1 AND NOT EXISTS (SELECT 1 FROM ins);
	`

	var model converter.CategoryModel
	if err := tx.QueryRow(ctx, query, category.Name, category.ParentID, category.Description).
		Scan(&model.ID, &model.Name, &model.ParentID, &model.Description); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}
