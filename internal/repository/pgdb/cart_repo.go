package pgdb

import (
	"context"
	"errors"

	"github.com/DRSN-tech/petstore-backend/internal/domain"
	"github.com/DRSN-tech/petstore-backend/pkg/e"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// CartRepo реализует репозиторий корзин поверх PostgreSQL.
// Корзина живёт вне транзакций заказа, поэтому все запросы идут напрямую в пул.
type CartRepo struct {
	pool *pgxpool.Pool
}

func NewCartRepo(pool *pgxpool.Pool) *CartRepo {
	return &CartRepo{pool: pool}
}

func (c *CartRepo) Create(ctx context.Context, cart *domain.Cart) (*domain.Cart, error) {
	query := `
		INSERT INTO carts (user_id, is_active)
		VALUES ($1, $2)
		RETURNING id, created_at;
	`

	result := *cart
	if err := c.pool.QueryRow(ctx, query, cart.UserID, cart.IsActive).
		Scan(&result.ID, &result.CreatedAt); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &result, nil
}

func (c *CartRepo) GetByID(ctx context.Context, id int64) (*domain.Cart, error) {
	query := `
		SELECT id, user_id, created_at, updated_at, is_active
		FROM carts
		WHERE id = $1;
	`

	result := &domain.Cart{}
	if err := c.pool.QueryRow(ctx, query, id).Scan(
		&result.ID, &result.UserID, &result.CreatedAt, &result.UpdatedAt, &result.IsActive,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

// UpsertItem добавляет позицию или увеличивает количество уже лежащего в корзине варианта.
func (c *CartRepo) UpsertItem(ctx context.Context, item *domain.CartItem) (*domain.CartItem, error) {
	query := `
		INSERT INTO cart_items (cart_id, variant_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (cart_id, variant_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity
		RETURNING id, quantity;
	`

	result := *item
	if err := c.pool.QueryRow(ctx, query, item.CartID, item.VariantID, item.Quantity).
		Scan(&result.ID, &result.Quantity); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &result, nil
}

func (c *CartRepo) ListItems(ctx context.Context, cartID int64) ([]domain.CartItem, error) {
	query := `
		SELECT id, cart_id, variant_id, quantity
		FROM cart_items
		WHERE cart_id = $1
		ORDER BY id;
	`

	rows, err := c.pool.Query(ctx, query, cartID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.CartItem, 0)
	for rows.Next() {
		var item domain.CartItem
		if err := rows.Scan(&item.ID, &item.CartID, &item.VariantID, &item.Quantity); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, item)
	}

	return result, rows.Err()
}

func (c *CartRepo) Deactivate(ctx context.Context, id int64) error {
	query := `
		UPDATE carts
		SET is_active = false, updated_at = NOW()
		WHERE id = $1;
	`

	result, err := c.pool.Exec(ctx, query, id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrNotFound)
	}

	return nil
}
