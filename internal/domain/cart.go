package domain

import "time"

// Cart описывает корзину пользователя
type Cart struct {
	ID        int64
	UserID    *int64
	CreatedAt time.Time
	UpdatedAt *time.Time
	IsActive  bool
}

func NewCart(userID *int64) *Cart {
	return &Cart{
		UserID:   userID,
		IsActive: true,
	}
}

// CartItem описывает позицию корзины: вариант товара и количество
type CartItem struct {
	ID        int64
	CartID    int64
	VariantID int64
	Quantity  int64
}

func NewCartItem(cartID, variantID, quantity int64) *CartItem {
	return &CartItem{
		CartID:    cartID,
		VariantID: variantID,
		Quantity:  quantity,
	}
}
