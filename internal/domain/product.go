package domain

import "time"

// Product описывает товар каталога
type Product struct {
	ID          int64
	SKU         string
	Name        string
	Description string
	BrandID     int64
	Price       int64 // Цена хранится в копейках
	Stock       int64
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	IsActive    bool
}

func NewProduct(sku, name, description string, brandID, price, stock int64) *Product {
	return &Product{
		SKU:         sku,
		Name:        name,
		Description: description,
		BrandID:     brandID,
		Price:       price,
		Stock:       stock,
		IsActive:    true,
	}
}

// Variant описывает покупаемую позицию товара (например, конкретную фасовку)
// со своей ценой и остатком, независимыми от цены родительского товара.
type Variant struct {
	ID            int64
	ProductID     int64
	Label         string
	Price         int64 // Цена хранится в копейках
	StockQuantity int64
	WeightKg      *int64 // Вес в килограммах, если задан
}

func NewVariant(productID int64, label string, price, stockQuantity int64, weightKg *int64) *Variant {
	return &Variant{
		ProductID:     productID,
		Label:         label,
		Price:         price,
		StockQuantity: stockQuantity,
		WeightKg:      weightKg,
	}
}
