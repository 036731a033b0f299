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

// OrderRepo реализует репозиторий заказов поверх PostgreSQL.
type OrderRepo struct {
	pool *pgxpool.Pool
	conv converter.OrderConverter
}

func NewOrderRepo(pool *pgxpool.Pool, conv converter.OrderConverter) *OrderRepo {
	return &OrderRepo{
		pool: pool,
		conv: conv,
	}
}

// Create вставляет шапку заказа в рамках транзакции оформления.
func (o *OrderRepo) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO orders (user_id, status, shipping_addr_id, total_amount)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, status, placed_at, shipping_addr_id, total_amount;
	`

	var model converter.OrderModel
	if err := tx.QueryRow(ctx, query,
		order.UserID, order.Status, order.ShippingAddrID, order.TotalAmount,
	).Scan(
		&model.ID, &model.UserID, &model.Status, &model.PlacedAt,
		&model.ShippingAddrID, &model.TotalAmount,
	); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return o.conv.ToEntity(&model), nil
}

// CreateItems пакетно вставляет позиции заказа c зафиксированной на момент
// оформления ценой варианта.
func (o *OrderRepo) CreateItems(ctx context.Context, orderID int64, items []domain.OrderItem) ([]domain.OrderItem, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO order_items (order_id, variant_id, quantity, unit_price)
		VALUES ($1, $2, $3, $4)
		RETURNING id;
	`

	batch := &pgx.Batch{}
	for _, item := range items {
		batch.Queue(query, orderID, item.VariantID, item.Quantity, item.UnitPrice)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	created := make([]domain.OrderItem, 0, len(items))
	for _, item := range items {
		item.OrderID = orderID
		if err := results.QueryRow().Scan(&item.ID); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		created = append(created, item)
	}

	if err := results.Close(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return created, nil
}

// GetByID возвращает заказ вместе с позициями. Внутри открытой транзакции
// чтение идёт через неё, вне — через пул.
func (o *OrderRepo) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	return o.get(ctx, tr.QuerierFromCtx(ctx, o.pool), id, false)
}

// GetForUpdate читает заказ с позициями, удерживая блокировку строки заказа
// до конца текущей транзакции. Переходы статуса обязаны читать заказ только
// так, иначе два конкурентных перехода увидят один и тот же исходный статус.
func (o *OrderRepo) GetForUpdate(ctx context.Context, id int64) (*domain.Order, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return o.get(ctx, tx, id, true)
}

func (o *OrderRepo) get(ctx context.Context, q tr.Querier, id int64, lock bool) (*domain.Order, error) {
	query := `
		SELECT id, user_id, status, placed_at, shipping_addr_id, total_amount
		FROM orders
		WHERE id = $1
	`
	if lock {
		query += " FOR UPDATE"
	}

	var model converter.OrderModel
	if err := q.QueryRow(ctx, query, id).Scan(
		&model.ID, &model.UserID, &model.Status, &model.PlacedAt,
		&model.ShippingAddrID, &model.TotalAmount,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	itemsQuery := `
		SELECT id, order_id, variant_id, quantity, unit_price
		FROM order_items
		WHERE order_id = $1
		ORDER BY id;
	`

	rows, err := q.Query(ctx, itemsQuery, id)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	var itemModels []converter.OrderItemModel
	for rows.Next() {
		var item converter.OrderItemModel
		if err := rows.Scan(&item.ID, &item.OrderID, &item.VariantID, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		itemModels = append(itemModels, item)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	order := o.conv.ToEntity(&model)
	order.Items = o.conv.ToArrItemEntity(itemModels)

	return order, nil
}

// UpdateStatus переводит заказ в новый статус; проверка допустимости перехода
// выполняется слоем usecase до вызова.
func (o *OrderRepo) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE orders
		SET status = $2
		WHERE id = $1;
	`

	result, err := tx.Exec(ctx, query, id, status)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrNotFound)
	}

	return nil
}
