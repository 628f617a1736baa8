package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type CartHandler struct {
	cartUsecase usecase.CartUC
	logger      logger.Logger
}

func NewCartHandler(cartUsecase usecase.CartUC, logger logger.Logger) *CartHandler {
	return &CartHandler{cartUsecase: cartUsecase, logger: logger}
}

type addCartItemBody struct {
	ProductID int64 `json:"product_id"`
	Quantity  int32 `json:"quantity"`
}

type updateCartItemBody struct {
	Quantity int32 `json:"quantity"`
}

type cartItemView struct {
	ID             int64    `json:"id"`
	ProductID      int64    `json:"product_id"`
	Quantity       int32    `json:"quantity"`
	ProductName    string   `json:"product_name"`
	ProductSlug    string   `json:"product_slug"`
	Price          float64  `json:"price"`
	CompareAtPrice *float64 `json:"compare_at_price,omitempty"`
	Stock          int32    `json:"stock"`
	CategoryName   string   `json:"category_name"`
}

type cartSummaryView struct {
	Subtotal  float64 `json:"subtotal"`
	Tax       float64 `json:"tax"`
	Total     float64 `json:"total"`
	ItemCount int32   `json:"item_count"`
}

func toCartItemView(item *usecase.CartItemInfo) cartItemView {
	return cartItemView{
		ID:             item.ID,
		ProductID:      item.ProductID,
		Quantity:       item.Quantity,
		ProductName:    item.ProductName,
		ProductSlug:    item.ProductSlug,
		Price:          centsToFloat(item.Price),
		CompareAtPrice: centsPtrToFloat(item.CompareAtPrice),
		Stock:          item.Stock,
		CategoryName:   item.CategoryName,
	}
}

func toCartSummaryView(summary usecase.CartSummary) cartSummaryView {
	return cartSummaryView{
		Subtotal:  summary.Subtotal.InexactFloat64(),
		Tax:       summary.Tax.InexactFloat64(),
		Total:     summary.Total.InexactFloat64(),
		ItemCount: summary.ItemCount,
	}
}

// getCart
//
//	@Summary		Содержимое корзины
//	@Description	Возвращает позиции корзины с актуальными данными товаров и итогом
//	@Tags			cart
//	@Produce		json
//	@Success		200	{object}	map[string]interface{}
//	@Failure		401	{object}	ErrorResponse
//	@Router			/cart [get]
func (c *CartHandler) getCart(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromCtx(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	res, err := c.cartUsecase.GetCart(r.Context(), userID)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	items := make([]cartItemView, 0, len(res.Items))
	for i := range res.Items {
		items = append(items, toCartItemView(&res.Items[i]))
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"items":   items,
		"summary": toCartSummaryView(res.Summary),
	})
}

// addItem
//
//	@Summary		Добавление товара в корзину
//	@Description	Добавляет товар или увеличивает количество существующей позиции
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			body	body		addCartItemBody	true	"Товар и количество"
//	@Success		201		{object}	map[string]interface{}
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/cart [post]
func (c *CartHandler) addItem(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromCtx(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	var body addCartItemBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		c.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	// Количество по умолчанию — одна штука
	if body.Quantity == 0 {
		body.Quantity = 1
	}

	item, err := c.cartUsecase.AddItem(r.Context(), usecase.NewAddCartItemReq(userID, body.ProductID, body.Quantity))
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, map[string]interface{}{
		"message":   "item added to cart",
		"cart_item": toCartItemView(item),
	})
}

// updateQuantity
//
//	@Summary		Изменение количества позиции
//	@Description	Устанавливает абсолютное количество для позиции корзины
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			itemID	path		int					true	"ID позиции"
//	@Param			body	body		updateCartItemBody	true	"Новое количество"
//	@Success		200		{object}	map[string]interface{}
//	@Failure		400		{object}	ErrorResponse
//	@Failure		403		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/cart/{itemID} [put]
func (c *CartHandler) updateQuantity(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromCtx(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	itemID, err := parseIDParam(r, "itemID")
	if err != nil {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	var body updateCartItemBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		c.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	item, err := c.cartUsecase.UpdateQuantity(r.Context(), usecase.NewUpdateCartItemReq(userID, itemID, body.Quantity))
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"message":   "cart item updated",
		"cart_item": toCartItemView(item),
	})
}

// removeItem
//
//	@Summary		Удаление позиции корзины
//	@Tags			cart
//	@Produce		json
//	@Param			itemID	path		int	true	"ID позиции"
//	@Success		200		{object}	map[string]interface{}
//	@Failure		403		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/cart/{itemID} [delete]
func (c *CartHandler) removeItem(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromCtx(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	itemID, err := parseIDParam(r, "itemID")
	if err != nil {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	if err := c.cartUsecase.RemoveItem(r.Context(), userID, itemID); err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"message": "item removed from cart",
	})
}

// clearCart
//
//	@Summary		Очистка корзины
//	@Tags			cart
//	@Produce		json
//	@Success		200	{object}	map[string]interface{}
//	@Failure		401	{object}	ErrorResponse
//	@Router			/cart [delete]
func (c *CartHandler) clearCart(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromCtx(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := c.cartUsecase.Clear(r.Context(), userID); err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"message": "cart cleared",
	})
}

func parseIDParam(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}
