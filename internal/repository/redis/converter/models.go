package converter

type ProductInfoRedisModel struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Slug           string `json:"slug"`
	Description    string `json:"description"`
	SKU            string `json:"sku"`
	Price          int64  `json:"price"`
	CompareAtPrice *int64 `json:"compare_at_price,omitempty"`
	Stock          int32  `json:"stock"`
	Featured       bool   `json:"featured"`
	CategoryID     int64  `json:"category_id"`
	CategoryName   string `json:"category_name"`
}
