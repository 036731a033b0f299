package pgdb

import (
	"context"
	"fmt"

	"github.com/DRSN-tech/petstore-backend/internal/domain"
	"github.com/DRSN-tech/petstore-backend/pkg/e"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// ReviewRepo реализует репозиторий отзывов поверх PostgreSQL.
type ReviewRepo struct {
	pool *pgxpool.Pool
}

func NewReviewRepo(pool *pgxpool.Pool) *ReviewRepo {
	return &ReviewRepo{pool: pool}
}

func (r *ReviewRepo) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	query := `
		INSERT INTO reviews (product_id, user_id, rating, title, comment)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at;
	`

	result := *review
	if err := r.pool.QueryRow(ctx, query,
		review.ProductID, review.UserID, review.Rating, review.Title, review.Comment,
	).Scan(&result.ID, &result.CreatedAt); err != nil {
		// Пара (product_id, user_id) уникальна, повторный отзыв отклоняется
		if postgresDuplicate(err) {
			return nil, fmt.Errorf("%s: %w", whereami.WhereAmI(), e.ErrDuplicateReview)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &result, nil
}

func (r *ReviewRepo) ListByProduct(ctx context.Context, productID int64) ([]domain.Review, error) {
	query := `
		SELECT id, product_id, user_id, rating, title, comment, created_at
		FROM reviews
		WHERE product_id = $1
		ORDER BY created_at DESC, id DESC;
	`

	rows, err := r.pool.Query(ctx, query, productID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.Review, 0)
	for rows.Next() {
		var review domain.Review
		if err := rows.Scan(
			&review.ID, &review.ProductID, &review.UserID,
			&review.Rating, &review.Title, &review.Comment, &review.CreatedAt,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, review)
	}

	return result, rows.Err()
}
