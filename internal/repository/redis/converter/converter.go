//go:generate goverter gen github.com/DRSN-tech/storefront-backend/internal/repository/redis/converter

package converter

import (
	"github.com/DRSN-tech/storefront-backend/internal/usecase"
)

// goverter:converter
// goverter:extend ConvertPointerInt64
type ProductInfoConverter interface {
	ToRedisModel(entity *usecase.ProductInfo) *ProductInfoRedisModel
	ToUseCase(model *ProductInfoRedisModel) *usecase.ProductInfo
}

func ConvertPointerInt64(v *int64) *int64 {
	return v
}
