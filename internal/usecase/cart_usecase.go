package usecase

import (
	"context"

	"github.com/DRSN-tech/petstore-backend/internal/domain"
	"github.com/DRSN-tech/petstore-backend/pkg/e"
	"github.com/DRSN-tech/petstore-backend/pkg/logger"
)

// CartUseCase реализует корзину — внешний источник позиций для оформления заказа.
type CartUseCase struct {
	cartRepo    CartRepository
	variantRepo VariantRepository
	logger      logger.Logger
}

func NewCartUC(cartRepo CartRepository, variantRepo VariantRepository, logger logger.Logger) *CartUseCase {
	return &CartUseCase{
		cartRepo:    cartRepo,
		variantRepo: variantRepo,
		logger:      logger,
	}
}

// CreateCart создаёт корзину, возможно анонимную.
func (c *CartUseCase) CreateCart(ctx context.Context, userID *int64) (*domain.Cart, error) {
	const op = "CartUseCase.CreateCart"

	cart, err := c.cartRepo.Create(ctx, domain.NewCart(userID))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return cart, nil
}

// AddItem добавляет позицию в корзину; повторное добавление того же варианта
// увеличивает количество.
func (c *CartUseCase) AddItem(ctx context.Context, req *AddCartItemReq) (*domain.CartItem, error) {
	const op = "CartUseCase.AddItem"

	if req.Quantity <= 0 {
		return nil, e.Wrap(op, e.ErrInvalidQuantity)
	}

	if _, err := c.cartRepo.GetByID(ctx, req.CartID); err != nil {
		return nil, e.Wrap(op, err)
	}

	item, err := c.cartRepo.UpsertItem(ctx, domain.NewCartItem(req.CartID, req.VariantID, req.Quantity))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return item, nil
}

// GetCart возвращает корзину с позициями.
func (c *CartUseCase) GetCart(ctx context.Context, cartID int64) (*CartRes, error) {
	const op = "CartUseCase.GetCart"

	cart, err := c.cartRepo.GetByID(ctx, cartID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	items, err := c.cartRepo.ListItems(ctx, cartID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &CartRes{Cart: cart, Items: items}, nil
}
