package converter

import (
	"time"

	"github.com/DRSN-tech/storefront-backend/internal/usecase"
)

// ProductModel представляет запись таблицы products в PostgreSQL.
type ProductModel struct {
	ID             int64      `db:"id"`
	Name           string     `db:"name"`
	Slug           string     `db:"slug"`
	Description    string     `db:"description"`
	SKU            string     `db:"sku"`
	Price          int64      `db:"price"`
	CompareAtPrice *int64     `db:"compare_at_price"`
	Stock          int32      `db:"stock"`
	Active         bool       `db:"active"`
	Featured       bool       `db:"featured"`
	CategoryID     int64      `db:"category_id"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      *time.Time `db:"updated_at"`
}

// UserModel представляет запись таблицы users в PostgreSQL.
type UserModel struct {
	ID           int64     `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

// CartItemModel представляет запись таблицы cart_items в PostgreSQL.
type CartItemModel struct {
	ID        int64      `db:"id"`
	UserID    int64      `db:"user_id"`
	ProductID int64      `db:"product_id"`
	Quantity  int32      `db:"quantity"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt *time.Time `db:"updated_at"`
}

// OutboxEventModel представляет запись таблицы outbox_events в PostgreSQL.
type OutboxEventModel struct {
	ID          int64                   `db:"id"`
	EventID     string                  `db:"event_id"`
	EventType   usecase.OutboxEventType `db:"event_type"`
	UserID      int64                   `db:"user_id"`
	Payload     []byte                  `db:"payload"`
	Status      usecase.OutboxStatus    `db:"status"`
	CreatedAt   time.Time               `db:"created_at"`
	ProcessedAt *time.Time              `db:"processed_at"`
}
