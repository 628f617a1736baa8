package domain

import "time"

// CartItem описывает позицию корзины покупателя.
// Инвариант: не более одной позиции на пару (user_id, product_id).
type CartItem struct {
	ID        int64
	UserID    int64
	ProductID int64
	Quantity  int32
	CreatedAt time.Time
	UpdatedAt *time.Time
}

func NewCartItem(userID int64, productID int64, quantity int32) *CartItem {
	return &CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}
}
