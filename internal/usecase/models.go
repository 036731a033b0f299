package usecase

import (
	"time"

	"github.com/DRSN-tech/petstore-backend/internal/domain"
)

// ACCOUNT USECASE

// SignUpReq — запрос регистрации учётной записи.
type SignUpReq struct {
	Username   string
	Email      string
	Password   string
	Phone      string
	Address    string
	IsCustomer bool
	IsSeller   bool
}

// SignUpRes — данные созданной учётной записи с профилем.
type SignUpRes struct {
	User    *domain.User
	Profile *domain.UserProfile
}

// CATALOG USECASE

// AddProductReq — запрос на добавление товара в каталог.
type AddProductReq struct {
	SKU           string
	Name          string
	Description   string
	BrandName     string
	CategoryNames []string
	Price         int64
	Stock         int64
	Variants      []VariantInput
	Images        []ProductUpload
}

// VariantInput — вариант товара в запросе на создание.
type VariantInput struct {
	Label         string
	Price         int64
	StockQuantity int64
}

// ProductUpload представляет изображение, загруженное через multipart/form-data.
type ProductUpload struct {
	Data     []byte // байты изображения
	MimeType string // Content-Type из multipart (image/jpeg)
	Size     int64  // фактический размер в байтах
	Name     string // оригинальное имя файла (для логов)
}

// GetProductsReq — запрос информации о товарах по их идентификаторам.
type GetProductsReq struct {
	IDs []int64
}

// GetProductsRes — ответ с данными запрошенных товаров.
type GetProductsRes struct {
	Products         []ProductInfo
	NotFoundProducts []int64
}

// ProductInfo — DTO с информацией о товаре для внешнего использования.
type ProductInfo struct {
	ID           int64
	SKU          string
	Name         string
	CategoryName string
	Price        int64
}

// ProductDetail — карточка товара с вариантами.
type ProductDetail struct {
	Product  *domain.Product
	Variants []domain.Variant
}

// CART USECASE

// AddCartItemReq — запрос на добавление позиции в корзину.
type AddCartItemReq struct {
	CartID    int64
	VariantID int64
	Quantity  int64
}

// CartRes — корзина вместе с позициями.
type CartRes struct {
	Cart  *domain.Cart
	Items []domain.CartItem
}

// ORDER USECASE

// OrderLine — пара (вариант, количество) из корзины.
type OrderLine struct {
	VariantID int64
	Quantity  int64
}

// PlaceOrderReq — запрос на оформление заказа.
type PlaceOrderReq struct {
	UserID    int64
	AddressID int64
	Items     []OrderLine
}

// UpdateOrderStatusReq — запрос на перевод заказа в новый статус.
type UpdateOrderStatusReq struct {
	OrderID int64
	Status  domain.OrderStatus
}

// PAYMENT USECASE

// ConfirmPaymentReq — колбэк подтверждения оплаты заказа.
type ConfirmPaymentReq struct {
	OrderID       int64
	Method        domain.PaymentMethod
	TransactionID string
}

// REVIEW USECASE

// AddReviewReq — запрос на добавление отзыва о товаре.
type AddReviewReq struct {
	ProductID int64
	UserID    int64
	Rating    int32
	Title     string
	Comment   string
}

// DASHBOARD USECASE

// DashboardSummary — сводка для админ-панели, пересчитывается при каждом запросе.
type DashboardSummary struct {
	TotalProducts  int64
	TotalSales     int64 // Сумма в копейках
	TotalCustomers int64
	AnalyticsScore int
	RecentOrders   []RecentOrder
	TopProducts    []TopProduct
}

// RecentOrder — строка списка последних заказов.
type RecentOrder struct {
	ID           int64
	CustomerName string
	Total        int64 // Сумма в копейках
	Status       domain.OrderStatus
}

// TopProduct описывает строку рейтинга продаваемых товаров.
type TopProduct struct {
	ID           int64
	Name         string
	Category     string
	Image        string
	SoldCount    int64
	TotalRevenue int64 // Сумма в копейках
}

// INFRASTRUCTURE

// WriteRawMessageReq — готовый к отправке в Kafka payload события заказа.
type WriteRawMessageReq struct {
	OrderID int64
	Payload []byte
}

// UploadImagesReq — запрос на загрузку изображений товара.
type UploadImagesReq struct {
	Name   string
	Images []ProductUpload
}

// UploadImagesRes — результат загрузки изображений (ключи в MinIO).
type UploadImagesRes struct {
	ImagesKeys []string
}

// OUTBOX

type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
)

type OutboxEventType string

const (
	OrderPlacedEvent OutboxEventType = "order_placed"
)

// OutboxEvent — событие для надёжной доставки в Kafka через таблицу outbox_events.
type OutboxEvent struct {
	ID          int64
	EventID     string
	EventType   OutboxEventType
	OrderID     int64
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// MAPPERS

func NewSignUpReq(username, email, password, phone, address string, isCustomer, isSeller bool) *SignUpReq {
	return &SignUpReq{
		Username:   username,
		Email:      email,
		Password:   password,
		Phone:      phone,
		Address:    address,
		IsCustomer: isCustomer,
		IsSeller:   isSeller,
	}
}

func NewGetProductsReq(ids []int64) *GetProductsReq {
	return &GetProductsReq{ids}
}

func NewGetProductsRes(pr []ProductInfo, notFoundProducts []int64) *GetProductsRes {
	return &GetProductsRes{
		Products:         pr,
		NotFoundProducts: notFoundProducts,
	}
}

func NewProductInfo(id int64, sku, name, category string, price int64) ProductInfo {
	return ProductInfo{
		ID:           id,
		SKU:          sku,
		Name:         name,
		CategoryName: category,
		Price:        price,
	}
}

func NewAddCartItemReq(cartID, variantID, quantity int64) *AddCartItemReq {
	return &AddCartItemReq{
		CartID:    cartID,
		VariantID: variantID,
		Quantity:  quantity,
	}
}

func NewAddReviewReq(productID, userID int64, rating int32, title, comment string) *AddReviewReq {
	return &AddReviewReq{
		ProductID: productID,
		UserID:    userID,
		Rating:    rating,
		Title:     title,
		Comment:   comment,
	}
}

func NewPlaceOrderReq(userID, addressID int64, items []OrderLine) *PlaceOrderReq {
	return &PlaceOrderReq{
		UserID:    userID,
		AddressID: addressID,
		Items:     items,
	}
}

func NewUpdateOrderStatusReq(orderID int64, status domain.OrderStatus) *UpdateOrderStatusReq {
	return &UpdateOrderStatusReq{
		OrderID: orderID,
		Status:  status,
	}
}

func NewConfirmPaymentReq(orderID int64, method domain.PaymentMethod, transactionID string) *ConfirmPaymentReq {
	return &ConfirmPaymentReq{
		OrderID:       orderID,
		Method:        method,
		TransactionID: transactionID,
	}
}

func NewOutboxEvent(eventID string, eventType OutboxEventType, orderID int64, payload []byte) *OutboxEvent {
	return &OutboxEvent{
		EventID:   eventID,
		EventType: eventType,
		OrderID:   orderID,
		Payload:   payload,
		Status:    Pending,
	}
}

func NewUploadImagesReq(name string, images []ProductUpload) *UploadImagesReq {
	return &UploadImagesReq{
		Name:   name,
		Images: images,
	}
}

func NewUploadImagesRes(imagesKeys []string) *UploadImagesRes {
	return &UploadImagesRes{
		ImagesKeys: imagesKeys,
	}
}

func NewWriteRawMessageReq(orderID int64, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		OrderID: orderID,
		Payload: payload,
	}
}

func NewProductUpload(data []byte, mimeType string, size int64, name string) *ProductUpload {
	return &ProductUpload{
		Data:     data,
		MimeType: mimeType,
		Size:     size,
		Name:     name,
	}
}
