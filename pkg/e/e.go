package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Внутренние ошибки конфигурации
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect env variable")

	// Ошибки хранилища
	ErrStoreUnavailable = fmt.Errorf("store unavailable")

	// 400 Bad Request
	ErrStatusBadRequest    = fmt.Errorf("bad request")
	ErrExpectedMultipart   = fmt.Errorf("expected multipart/form-data")
	ErrMissingFields       = fmt.Errorf("missing required fields")
	ErrInvalidPrice        = fmt.Errorf("invalid price")
	ErrPricePrecision      = fmt.Errorf("price must have at most 2 decimal places")
	ErrInvalidQuantity     = fmt.Errorf("quantity must be positive")
	ErrEmptyCart           = fmt.Errorf("cart is empty")
	ErrInvalidAddress      = fmt.Errorf("address does not belong to user")
	ErrInvalidRating       = fmt.Errorf("rating must be between 1 and 5")
	ErrUsernameTaken       = fmt.Errorf("username already taken")
	ErrProductNameRequired = fmt.Errorf("product name is required")
	ErrTooManyImages       = fmt.Errorf("too many images")
	ErrFileTooLarge        = fmt.Errorf("file too large")

	// 404 Not Found
	ErrNotFound = fmt.Errorf("not found")

	// 415 Unsupported Media Type
	ErrUnsupportedMediaType = fmt.Errorf("unsupported media type")

	// 409 Conflict
	ErrInsufficientStock = fmt.Errorf("insufficient stock")
	ErrInvalidTransition = fmt.Errorf("invalid order status transition")
	ErrDuplicateReview   = fmt.Errorf("review already exists for this product")
	ErrPaymentExists     = fmt.Errorf("payment already recorded for this order")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
