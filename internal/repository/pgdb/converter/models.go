package converter

import (
	"time"

	"github.com/DRSN-tech/petstore-backend/internal/domain"
	"github.com/DRSN-tech/petstore-backend/internal/usecase"
)

// ProductModel представляет запись таблицы products в PostgreSQL.
type ProductModel struct {
	ID          int64      `db:"id"`
	SKU         string     `db:"sku"`
	Name        string     `db:"name"`
	Description string     `db:"description"`
	BrandID     int64      `db:"brand_id"`
	Price       int64      `db:"price"`
	Stock       int64      `db:"stock"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   *time.Time `db:"updated_at"`
	IsActive    bool       `db:"is_active"`
}

// CategoryModel представляет запись таблицы categories в PostgreSQL.
type CategoryModel struct {
	ID          int64  `db:"id"`
	Name        string `db:"name"`
	ParentID    *int64 `db:"parent_id"`
	Description string `db:"description"`
}

// VariantModel представляет запись таблицы variants в PostgreSQL.
type VariantModel struct {
	ID            int64  `db:"id"`
	ProductID     int64  `db:"product_id"`
	Label         string `db:"label"`
	Price         int64  `db:"price"`
	StockQuantity int64  `db:"stock_quantity"`
	WeightKg      *int64 `db:"weight_kg"`
}

// OrderModel представляет запись таблицы orders в PostgreSQL.
type OrderModel struct {
	ID             int64              `db:"id"`
	UserID         *int64             `db:"user_id"`
	Status         domain.OrderStatus `db:"status"`
	PlacedAt       time.Time          `db:"placed_at"`
	ShippingAddrID int64              `db:"shipping_addr_id"`
	TotalAmount    int64              `db:"total_amount"`
}

// OrderItemModel представляет запись таблицы order_items в PostgreSQL.
type OrderItemModel struct {
	ID        int64 `db:"id"`
	OrderID   int64 `db:"order_id"`
	VariantID int64 `db:"variant_id"`
	Quantity  int64 `db:"quantity"`
	UnitPrice int64 `db:"unit_price"`
}

// OutboxEventModel представляет запись таблицы outbox_events в PostgreSQL.
type OutboxEventModel struct {
	ID          int64                   `db:"id"`
	EventID     string                  `db:"event_id"`
	EventType   usecase.OutboxEventType `db:"event_type"`
	OrderID     int64                   `db:"order_id"`
	Payload     []byte                  `db:"payload"`
	Status      usecase.OutboxStatus    `db:"status"`
	CreatedAt   time.Time               `db:"created_at"`
	ProcessedAt *time.Time              `db:"processed_at"`
}
