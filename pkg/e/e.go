package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Внутренние ошибки конфигурации
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")

	// 400 Bad Request
	ErrStatusBadRequest  = fmt.Errorf("bad request")
	ErrProductIDRequired = fmt.Errorf("product id is required")
	ErrInvalidQuantity   = fmt.Errorf("quantity must be at least 1")
	ErrInsufficientStock = fmt.Errorf("insufficient stock")
	ErrInvalidPrice      = fmt.Errorf("invalid price")
	ErrPricePrecision    = fmt.Errorf("price must have at most 2 decimal places")
	ErrEmailRequired     = fmt.Errorf("email is required")
	ErrPasswordTooShort  = fmt.Errorf("password must be at least 8 characters")
	ErrEmailTaken        = fmt.Errorf("user already exists")

	// 401 Unauthorized
	ErrUnauthorized       = fmt.Errorf("authentication required")
	ErrInvalidCredentials = fmt.Errorf("invalid email or password")
	ErrSessionNotFound    = fmt.Errorf("session not found")

	// 403 Forbidden
	ErrNotResourceOwner = fmt.Errorf("cart item belongs to another user")

	// 404 Not Found
	ErrProductNotFound  = fmt.Errorf("product not found")
	ErrCartItemNotFound = fmt.Errorf("cart item not found")
	ErrUserNotFound     = fmt.Errorf("user not found")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
