package usecase

import (
	"time"

	"github.com/shopspring/decimal"
)

// CART USECASE

// AddCartItemReq — запрос на добавление товара в корзину.
type AddCartItemReq struct {
	UserID    int64
	ProductID int64
	Quantity  int32
}

// UpdateCartItemReq — запрос на абсолютное изменение количества позиции.
type UpdateCartItemReq struct {
	UserID   int64
	ItemID   int64
	Quantity int32
}

// CartItemInfo — позиция корзины, объединённая с живыми данными товара.
type CartItemInfo struct {
	ID             int64
	ProductID      int64
	Quantity       int32
	ProductName    string
	ProductSlug    string
	Price          int64 // минорные единицы
	CompareAtPrice *int64
	Stock          int32
	CategoryID     int64
	CategoryName   string
}

// CartSummary — производный итог корзины. Никогда не персистится,
// пересчитывается на каждое чтение.
type CartSummary struct {
	Subtotal  decimal.Decimal
	Tax       decimal.Decimal
	Total     decimal.Decimal
	ItemCount int32
}

// GetCartRes — ответ со всем содержимым корзины и итогом.
type GetCartRes struct {
	Items   []CartItemInfo
	Summary CartSummary
}

// StoredCartItem — запись корзины вместе с текущими данными товара,
// читается репозиторием в транзакции перед мутацией. Ответ мутации
// строится из этих полей, без повторного чтения товара после коммита.
type StoredCartItem struct {
	ID             int64
	UserID         int64
	ProductID      int64
	Quantity       int32
	ProductName    string
	ProductSlug    string
	Price          int64 // минорные единицы
	CompareAtPrice *int64
	ProductStock   int32
	CategoryID     int64
}

// CATALOG USECASE

// ProductInfo — DTO с информацией о товаре для внешнего использования.
type ProductInfo struct {
	ID             int64
	Name           string
	Slug           string
	Description    string
	SKU            string
	Price          int64
	CompareAtPrice *int64
	Stock          int32
	Featured       bool
	CategoryID     int64
	CategoryName   string
}

// ListProductsReq — фильтры списка товаров.
type ListProductsReq struct {
	CategoryID int64
	Search     string
	MinPrice   *int64 // минорные единицы
	MaxPrice   *int64
	SortBy     string
	SortOrder  string
}

// ProductDetailRes — карточка товара вместе с похожими товарами той же категории.
type ProductDetailRes struct {
	Product ProductInfo
	Related []ProductInfo
}

// CategoryInfo — категория с количеством товаров.
type CategoryInfo struct {
	ID           int64
	Name         string
	Slug         string
	Description  string
	ProductCount int64
}

// AUTH USECASE

type RegisterReq struct {
	Name     string
	Email    string
	Password string
}

type LoginReq struct {
	Email    string
	Password string
}

// UserInfo — публичные данные пользователя (без хэша пароля).
type UserInfo struct {
	ID    int64
	Name  string
	Email string
}

// LoginRes — результат успешного входа: пользователь и идентификатор сессии
// для выдачи в cookie.
type LoginRes struct {
	SessionID string
	User      UserInfo
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
	EventCartItemAdded       OutboxEventType = "cart.item_added"
	EventCartQuantityUpdated OutboxEventType = "cart.quantity_updated"
	EventCartItemRemoved     OutboxEventType = "cart.item_removed"
	EventCartCleared         OutboxEventType = "cart.cleared"
)

// OutboxEvent — событие активности корзины, сохраняемое в той же транзакции,
// что и мутация, и публикуемое в Kafka воркером.
type OutboxEvent struct {
	ID          int64
	EventID     string
	EventType   OutboxEventType
	UserID      int64
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// CartEventEnvelope — сериализуемое тело события корзины, целиком уходит в Kafka.
type CartEventEnvelope struct {
	EventID    string          `json:"event_id"`
	EventType  OutboxEventType `json:"event_type"`
	UserID     int64           `json:"user_id"`
	ItemID     int64           `json:"item_id,omitempty"`
	ProductID  int64           `json:"product_id,omitempty"`
	Quantity   int32           `json:"quantity,omitempty"`
	Removed    int64           `json:"removed,omitempty"`
	OccurredAt int64           `json:"occurred_at"`
}

// INFRASTRUCTURE

type WriteRawMessageReq struct {
	UserID  int64
	Payload []byte
}

// MAPPERS

func NewAddCartItemReq(userID int64, productID int64, quantity int32) *AddCartItemReq {
	return &AddCartItemReq{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}
}

func NewUpdateCartItemReq(userID int64, itemID int64, quantity int32) *UpdateCartItemReq {
	return &UpdateCartItemReq{
		UserID:   userID,
		ItemID:   itemID,
		Quantity: quantity,
	}
}

func NewGetCartRes(items []CartItemInfo, summary CartSummary) *GetCartRes {
	return &GetCartRes{
		Items:   items,
		Summary: summary,
	}
}

func NewRegisterReq(name string, email string, password string) *RegisterReq {
	return &RegisterReq{
		Name:     name,
		Email:    email,
		Password: password,
	}
}

func NewLoginReq(email string, password string) *LoginReq {
	return &LoginReq{
		Email:    email,
		Password: password,
	}
}

func NewWriteRawMessageReq(userID int64, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		UserID:  userID,
		Payload: payload,
	}
}
