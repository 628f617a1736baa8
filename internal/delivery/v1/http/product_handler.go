package http

import (
	"net/http"
	"strconv"

	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
)

type ProductHandler struct {
	catalogUsecase usecase.CatalogUC
	logger         logger.Logger
}

func NewProductHandler(catalogUsecase usecase.CatalogUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{catalogUsecase: catalogUsecase, logger: logger}
}

type productView struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	Slug           string   `json:"slug"`
	Description    string   `json:"description"`
	SKU            string   `json:"sku"`
	Price          float64  `json:"price"`
	CompareAtPrice *float64 `json:"compare_at_price,omitempty"`
	Stock          int32    `json:"stock"`
	Featured       bool     `json:"featured"`
	CategoryID     int64    `json:"category_id"`
	CategoryName   string   `json:"category_name"`
}

type categoryView struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Description  string `json:"description"`
	ProductCount int64  `json:"product_count"`
}

func toProductView(info *usecase.ProductInfo) productView {
	return productView{
		ID:             info.ID,
		Name:           info.Name,
		Slug:           info.Slug,
		Description:    info.Description,
		SKU:            info.SKU,
		Price:          centsToFloat(info.Price),
		CompareAtPrice: centsPtrToFloat(info.CompareAtPrice),
		Stock:          info.Stock,
		Featured:       info.Featured,
		CategoryID:     info.CategoryID,
		CategoryName:   info.CategoryName,
	}
}

func toProductViews(infos []usecase.ProductInfo) []productView {
	views := make([]productView, 0, len(infos))
	for i := range infos {
		views = append(views, toProductView(&infos[i]))
	}
	return views
}

// listProducts
//
//	@Summary		Список товаров
//	@Description	Возвращает активные товары с фильтрами и сортировкой
//	@Tags			products
//	@Produce		json
//	@Param			category_id	query		int		false	"ID категории"
//	@Param			search		query		string	false	"Подстрока названия"
//	@Param			min_price	query		number	false	"Минимальная цена"
//	@Param			max_price	query		number	false	"Максимальная цена"
//	@Param			sort_by		query		string	false	"price | name | created_at"
//	@Param			sort_order	query		string	false	"asc | desc"
//	@Success		200			{object}	map[string]interface{}
//	@Failure		400			{object}	ErrorResponse
//	@Router			/products [get]
func (p *ProductHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	req, err := parseListProductsQuery(r)
	if err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	products, err := p.catalogUsecase.ListProducts(r.Context(), req)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"products": toProductViews(products),
	})
}

// searchProducts
//
//	@Summary		Поиск товаров
//	@Description	Подстрочный поиск по названию, описанию и артикулу
//	@Tags			products
//	@Produce		json
//	@Param			q	query		string	true	"Поисковый запрос"
//	@Success		200	{object}	map[string]interface{}
//	@Router			/products/search [get]
func (p *ProductHandler) searchProducts(w http.ResponseWriter, r *http.Request) {
	products, err := p.catalogUsecase.SearchProducts(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"products": toProductViews(products),
	})
}

// getProduct
//
//	@Summary		Карточка товара
//	@Description	Возвращает товар и похожие товары той же категории
//	@Tags			products
//	@Produce		json
//	@Param			id	path		int	true	"ID товара"
//	@Success		200	{object}	map[string]interface{}
//	@Failure		404	{object}	ErrorResponse
//	@Router			/products/{id} [get]
func (p *ProductHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	res, err := p.catalogUsecase.GetProduct(r.Context(), id)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"product":          toProductView(&res.Product),
		"related_products": toProductViews(res.Related),
	})
}

// listCategories
//
//	@Summary		Список категорий
//	@Description	Возвращает категории с количеством активных товаров
//	@Tags			products
//	@Produce		json
//	@Success		200	{object}	map[string]interface{}
//	@Router			/products/categories [get]
func (p *ProductHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := p.catalogUsecase.ListCategories(r.Context())
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	views := make([]categoryView, 0, len(categories))
	for _, cat := range categories {
		views = append(views, categoryView{
			ID:           cat.ID,
			Name:         cat.Name,
			Slug:         cat.Slug,
			Description:  cat.Description,
			ProductCount: cat.ProductCount,
		})
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"categories": views,
	})
}

func parseListProductsQuery(r *http.Request) (*usecase.ListProductsReq, error) {
	q := r.URL.Query()

	req := &usecase.ListProductsReq{
		Search:    q.Get("search"),
		SortBy:    q.Get("sort_by"),
		SortOrder: q.Get("sort_order"),
	}

	if raw := q.Get("category_id"); raw != "" {
		categoryID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, e.ErrStatusBadRequest
		}
		req.CategoryID = categoryID
	}

	if raw := q.Get("min_price"); raw != "" {
		cents, err := parsePriceToCents(raw)
		if err != nil {
			return nil, err
		}
		req.MinPrice = &cents
	}

	if raw := q.Get("max_price"); raw != "" {
		cents, err := parsePriceToCents(raw)
		if err != nil {
			return nil, err
		}
		req.MaxPrice = &cents
	}

	return req, nil
}
