//go:generate goverter gen github.com/DRSN-tech/petstore-backend/internal/repository/redis/converter

package converter

import (
	"github.com/DRSN-tech/petstore-backend/internal/usecase"
)

// goverter:converter
type ProductInfoConverter interface {
	ToRedisModel(entity *usecase.ProductInfo) *ProductInfoRedisModel
	ToUseCase(model *ProductInfoRedisModel) *usecase.ProductInfo
	ToArrRedisModel(entities []usecase.ProductInfo) []ProductInfoRedisModel
	ToArrUseCase(models []ProductInfoRedisModel) []usecase.ProductInfo
}
