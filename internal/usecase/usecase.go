package usecase

import (
	"context"

	"github.com/DRSN-tech/petstore-backend/internal/domain"
)

type AccountUC interface {
	SignUp(ctx context.Context, req *SignUpReq) (*SignUpRes, error)
}

type CatalogUC interface {
	AddProduct(ctx context.Context, req *AddProductReq) (*domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*ProductDetail, error)
	GetProductsInfo(ctx context.Context, req *GetProductsReq) (*GetProductsRes, error)
	ListProducts(ctx context.Context, limit, offset int64) ([]ProductInfo, error)
}

type CartUC interface {
	CreateCart(ctx context.Context, userID *int64) (*domain.Cart, error)
	AddItem(ctx context.Context, req *AddCartItemReq) (*domain.CartItem, error)
	GetCart(ctx context.Context, cartID int64) (*CartRes, error)
}

type OrderUC interface {
	PlaceOrder(ctx context.Context, req *PlaceOrderReq) (*domain.Order, error)
	GetOrder(ctx context.Context, id int64) (*domain.Order, error)
	UpdateStatus(ctx context.Context, req *UpdateOrderStatusReq) (*domain.Order, error)
}

type PaymentUC interface {
	Confirm(ctx context.Context, req *ConfirmPaymentReq) (*domain.Payment, error)
}

type ReviewUC interface {
	AddReview(ctx context.Context, req *AddReviewReq) (*domain.Review, error)
	ListByProduct(ctx context.Context, productID int64) ([]domain.Review, error)
}

type DashboardUC interface {
	GetSummary(ctx context.Context) (*DashboardSummary, error)
}
