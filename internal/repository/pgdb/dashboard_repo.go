package pgdb

import (
	"context"

	"github.com/DRSN-tech/petstore-backend/internal/usecase"
	"github.com/DRSN-tech/petstore-backend/pkg/e"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// DashboardRepo выполняет агрегирующие запросы для админской сводки.
// Все методы читают текущее состояние БД без транзакций и кэшей.
type DashboardRepo struct {
	pool *pgxpool.Pool
}

func NewDashboardRepo(pool *pgxpool.Pool) *DashboardRepo {
	return &DashboardRepo{pool: pool}
}

func (d *DashboardRepo) CountProducts(ctx context.Context) (int64, error) {
	var count int64
	if err := d.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products;`).Scan(&count); err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return count, nil
}

// TotalSales суммирует total_amount всех заказов независимо от статуса.
func (d *DashboardRepo) TotalSales(ctx context.Context) (int64, error) {
	var total int64
	if err := d.pool.QueryRow(ctx, `SELECT COALESCE(SUM(total_amount), 0) FROM orders;`).Scan(&total); err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return total, nil
}

// CountCustomers считает уникальных покупателей, оформивших хотя бы один заказ.
func (d *DashboardRepo) CountCustomers(ctx context.Context) (int64, error) {
	var count int64
	if err := d.pool.QueryRow(ctx,
		`SELECT COUNT(DISTINCT user_id) FROM orders WHERE user_id IS NOT NULL;`,
	).Scan(&count); err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return count, nil
}

// RecentOrders возвращает последние заказы; для заказов удалённых
// пользователей имя покупателя заменяется на "Unknown".
func (d *DashboardRepo) RecentOrders(ctx context.Context, limit int) ([]usecase.RecentOrder, error) {
	query := `
		SELECT o.id, COALESCE(u.username, 'Unknown'), o.total_amount, o.status
		FROM orders o
		LEFT JOIN users u ON u.id = o.user_id
		ORDER BY o.placed_at DESC, o.id DESC
		LIMIT $1;
	`

	rows, err := d.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]usecase.RecentOrder, 0, limit)
	for rows.Next() {
		var order usecase.RecentOrder
		if err := rows.Scan(&order.ID, &order.CustomerName, &order.Total, &order.Status); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, order)
	}

	return result, rows.Err()
}

// TopProducts ранжирует товары по числу проданных позиций. Выручка считается
// суммой зафиксированных цен строк заказа. Товары без продаж и без вариантов
// тоже входят в рейтинг с нулевыми показателями. Категория берётся первая по
// алфавиту, изображение первое по sort_order.
func (d *DashboardRepo) TopProducts(ctx context.Context, limit int) ([]usecase.TopProduct, error) {
	query := `
		SELECT
			p.id,
			p.name,
			COALESCE((
				SELECT cat.name
				FROM product_categories pc
				JOIN categories cat ON cat.id = pc.category_id
				WHERE pc.product_id = p.id
				ORDER BY cat.name
				LIMIT 1
			), '') AS category_name,
			COALESCE((
				SELECT pi.image_url
				FROM product_images pi
				WHERE pi.product_id = p.id
				ORDER BY pi.sort_order, pi.id
				LIMIT 1
			), '') AS image_url,
			COUNT(oi.id) AS sold_count,
			COALESCE(SUM(oi.unit_price), 0) AS total_revenue
		FROM products p
		LEFT JOIN variants v ON v.product_id = p.id
		LEFT JOIN order_items oi ON oi.variant_id = v.id
		GROUP BY p.id, p.name
		ORDER BY sold_count DESC, p.id
		LIMIT $1;
	`

	rows, err := d.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]usecase.TopProduct, 0, limit)
	for rows.Next() {
		var product usecase.TopProduct
		if err := rows.Scan(
			&product.ID, &product.Name, &product.Category, &product.Image,
			&product.SoldCount, &product.TotalRevenue,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, product)
	}

	return result, rows.Err()
}
