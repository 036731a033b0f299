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

// AddressRepo реализует репозиторий адресов поверх PostgreSQL.
type AddressRepo struct {
	pool *pgxpool.Pool
}

func NewAddressRepo(pool *pgxpool.Pool) *AddressRepo {
	return &AddressRepo{pool: pool}
}

func (a *AddressRepo) GetByID(ctx context.Context, id int64) (*domain.Address, error) {
	query := `
		SELECT id, user_id, addr_type, line1, line2, city, state, country, is_default
		FROM addresses
		WHERE id = $1;
	`

	result := &domain.Address{}
	if err := a.pool.QueryRow(ctx, query, id).Scan(
		&result.ID, &result.UserID, &result.Type, &result.Line1, &result.Line2,
		&result.City, &result.State, &result.Country, &result.IsDefault,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}
