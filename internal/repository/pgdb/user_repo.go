package pgdb

import (
	"context"
	"fmt"

	"github.com/DRSN-tech/petstore-backend/internal/domain"
	"github.com/DRSN-tech/petstore-backend/pkg/e"
	"github.com/DRSN-tech/petstore-backend/pkg/tr"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// UserRepo реализует репозиторий пользователей поверх PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
}

func NewUserRepo(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

func (u *UserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO users (username, email, password_hash, is_customer, is_seller)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at;
	`

	result := *user
	if err := tx.QueryRow(ctx, query,
		user.Username, user.Email, user.PasswordHash, user.IsCustomer, user.IsSeller,
	).Scan(&result.ID, &result.CreatedAt); err != nil {
		if postgresDuplicate(err) {
			return nil, fmt.Errorf("%s: %w", whereami.WhereAmI(), e.ErrUsernameTaken)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &result, nil
}

func (u *UserRepo) CreateProfile(ctx context.Context, profile *domain.UserProfile) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO user_profiles (user_id, phone, address)
		VALUES ($1, $2, $3);
	`

	if _, err := tx.Exec(ctx, query, profile.UserID, profile.Phone, profile.Address); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (u *UserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1);`

	var exists bool
	if err := u.pool.QueryRow(ctx, query, username).Scan(&exists); err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	return exists, nil
}
