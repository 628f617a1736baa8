package usecase

import (
	"context"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
)

type ProductRepository interface {
	GetActive(ctx context.Context, id int64) (*domain.Product, error)
	GetInfo(ctx context.Context, id int64) (*ProductInfo, error)
	List(ctx context.Context, req *ListProductsReq) ([]ProductInfo, error)
	Search(ctx context.Context, query string, limit int) ([]ProductInfo, error)
	GetRelated(ctx context.Context, categoryID int64, excludeID int64, limit int) ([]ProductInfo, error)
}

type CategoryRepository interface {
	List(ctx context.Context) ([]CategoryInfo, error)
}

type CartRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]CartItemInfo, error)
	UpsertAdd(ctx context.Context, item *domain.CartItem, maxStock int32) (*domain.CartItem, error)
	Get(ctx context.Context, itemID int64) (*StoredCartItem, error)
	SetQuantity(ctx context.Context, itemID int64, quantity int32) (*domain.CartItem, error)
	Delete(ctx context.Context, itemID int64) error
	DeleteByUser(ctx context.Context, userID int64) (int64, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
}

type CacheRepository interface {
	GetProduct(ctx context.Context, id int64) (*ProductInfo, error)
	SetProduct(ctx context.Context, info *ProductInfo) error
}

type SessionRepository interface {
	Create(ctx context.Context, userID int64) (string, error)
	Get(ctx context.Context, sessionID string) (int64, error)
	Delete(ctx context.Context, sessionID string) error
}
