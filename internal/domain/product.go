package domain

import "time"

// Product описывает товар каталога
type Product struct {
	ID             int64
	Name           string
	Slug           string
	Description    string
	SKU            string
	Price          int64  // Цена хранится в минорных единицах (копейках)
	CompareAtPrice *int64 // Цена до скидки, опционально
	Stock          int32
	Active         bool
	Featured       bool
	CategoryID     int64
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}
