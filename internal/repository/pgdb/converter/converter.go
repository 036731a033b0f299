//go:generate goverter gen github.com/DRSN-tech/petstore-backend/internal/repository/pgdb/converter
package converter

import (
	"time"

	"github.com/DRSN-tech/petstore-backend/internal/domain"
	"github.com/DRSN-tech/petstore-backend/internal/usecase"
)

// ProductConverter преобразует сущности Product между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
type ProductConverter interface {
	ToModel(entity *domain.Product) *ProductModel
	ToEntity(model *ProductModel) *domain.Product
}

// CategoryConverter преобразует сущности Category между domain и моделью PostgreSQL.
// goverter:converter
type CategoryConverter interface {
	ToModel(entity *domain.Category) *CategoryModel
	ToEntity(model *CategoryModel) *domain.Category
}

// VariantConverter преобразует сущности Variant между domain и моделью PostgreSQL.
// goverter:converter
type VariantConverter interface {
	ToModel(entity *domain.Variant) *VariantModel
	ToEntity(model *VariantModel) *domain.Variant
}

// OrderConverter преобразует сущности Order и OrderItem между domain и моделями PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertOrderStatus
type OrderConverter interface {
	// goverter:ignore Items
	ToEntity(model *OrderModel) *domain.Order
	ToItemEntity(model *OrderItemModel) *domain.OrderItem
	ToArrItemEntity(models []OrderItemModel) []domain.OrderItem
}

// OutboxEventConverter преобразует сущности OutboxEvent между usecase и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
// goverter:extend ConvertOutboxStatus
// goverter:extend ConvertOutboxEventType
type OutboxEventConverter interface {
	ToModel(entity *usecase.OutboxEvent) *OutboxEventModel
	ToEntity(model *OutboxEventModel) *usecase.OutboxEvent
	ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent
}

func ConvertPointerTime(t *time.Time) *time.Time {
	return t
}

func ConvertTime(t time.Time) time.Time {
	return t
}

func ConvertOrderStatus(s domain.OrderStatus) domain.OrderStatus {
	return s
}

func ConvertOutboxStatus(s usecase.OutboxStatus) usecase.OutboxStatus {
	return s
}

func ConvertOutboxEventType(t usecase.OutboxEventType) usecase.OutboxEventType {
	return t
}
