package usecase

import "context"

type CartUC interface {
	GetCart(ctx context.Context, userID int64) (*GetCartRes, error)
	AddItem(ctx context.Context, req *AddCartItemReq) (*CartItemInfo, error)
	UpdateQuantity(ctx context.Context, req *UpdateCartItemReq) (*CartItemInfo, error)
	RemoveItem(ctx context.Context, userID int64, itemID int64) error
	Clear(ctx context.Context, userID int64) error
}

type CatalogUC interface {
	ListProducts(ctx context.Context, req *ListProductsReq) ([]ProductInfo, error)
	SearchProducts(ctx context.Context, query string) ([]ProductInfo, error)
	GetProduct(ctx context.Context, id int64) (*ProductDetailRes, error)
	ListCategories(ctx context.Context) ([]CategoryInfo, error)
}

type AuthUC interface {
	Register(ctx context.Context, req *RegisterReq) (*UserInfo, error)
	Login(ctx context.Context, req *LoginReq) (*LoginRes, error)
	Logout(ctx context.Context, sessionID string) error
	Resolve(ctx context.Context, sessionID string) (int64, error)
}
