package usecase

import (
	"context"

	"github.com/DRSN-tech/petstore-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	CreateProfile(ctx context.Context, profile *domain.UserProfile) error
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

type AddressRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Address, error)
}

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	GetProductsInfo(ctx context.Context, ids []int64) ([]ProductInfo, error)
	List(ctx context.Context, limit, offset int64) ([]ProductInfo, error)
	LinkCategory(ctx context.Context, productID, categoryID int64) error
	AddImage(ctx context.Context, image *domain.ProductImage) error
}

type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
}

type BrandRepository interface {
	Create(ctx context.Context, brand *domain.Brand) (*domain.Brand, error)
}

type VariantRepository interface {
	Create(ctx context.Context, variant *domain.Variant) (*domain.Variant, error)
	// GetForUpdate блокирует строку варианта (SELECT ... FOR UPDATE) до конца транзакции.
	GetForUpdate(ctx context.Context, id int64) (*domain.Variant, error)
	DecrementStock(ctx context.Context, id, quantity int64) error
	IncrementStock(ctx context.Context, id, quantity int64) error
	ListByProduct(ctx context.Context, productID int64) ([]domain.Variant, error)
}

type CartRepository interface {
	Create(ctx context.Context, cart *domain.Cart) (*domain.Cart, error)
	GetByID(ctx context.Context, id int64) (*domain.Cart, error)
	UpsertItem(ctx context.Context, item *domain.CartItem) (*domain.CartItem, error)
	ListItems(ctx context.Context, cartID int64) ([]domain.CartItem, error)
	Deactivate(ctx context.Context, id int64) error
}

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	CreateItems(ctx context.Context, orderID int64, items []domain.OrderItem) ([]domain.OrderItem, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	GetForUpdate(ctx context.Context, id int64) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	GetByOrderID(ctx context.Context, orderID int64) (*domain.Payment, error)
	MarkPaid(ctx context.Context, orderID int64, transactionID string) error
}

type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)
	ListByProduct(ctx context.Context, productID int64) ([]domain.Review, error)
}

// DashboardRepository отвечает за чтение админской сводки; все методы
// выполняют агрегирующие запросы по текущему состоянию БД.
type DashboardRepository interface {
	CountProducts(ctx context.Context) (int64, error)
	TotalSales(ctx context.Context) (int64, error)
	CountCustomers(ctx context.Context) (int64, error)
	RecentOrders(ctx context.Context, limit int) ([]RecentOrder, error)
	TopProducts(ctx context.Context, limit int) ([]TopProduct, error)
}

type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
}

type CacheRepository interface {
	GetProducts(ctx context.Context, ids []int64) (map[int64]ProductInfo, error)
	SetProducts(ctx context.Context, products []ProductInfo) error
	DeleteProducts(ctx context.Context, ids []int64) error
}
