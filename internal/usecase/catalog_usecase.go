package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
)

const (
	searchMinLength = 2
	searchLimit     = 10
	relatedLimit    = 4
)

// CatalogUseCase реализует чтение каталога: списки, поиск, карточка товара.
type CatalogUseCase struct {
	productRepo  ProductRepository
	categoryRepo CategoryRepository
	cacheRepo    CacheRepository
	logger       logger.Logger
}

func NewCatalogUC(
	productRepo ProductRepository,
	categoryRepo CategoryRepository,
	cacheRepo CacheRepository,
	logger logger.Logger,
) *CatalogUseCase {
	return &CatalogUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		cacheRepo:    cacheRepo,
		logger:       logger,
	}
}

// ListProducts возвращает активные товары с учётом фильтров и сортировки.
func (c *CatalogUseCase) ListProducts(ctx context.Context, req *ListProductsReq) ([]ProductInfo, error) {
	const op = "CatalogUseCase.ListProducts"

	normalizeSort(req)

	products, err := c.productRepo.List(ctx, req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return products, nil
}

// SearchProducts ищет активные товары по подстроке в названии, описании и SKU.
// Запросы короче двух символов возвращают пустой результат.
func (c *CatalogUseCase) SearchProducts(ctx context.Context, query string) ([]ProductInfo, error) {
	const op = "CatalogUseCase.SearchProducts"

	query = strings.TrimSpace(query)
	if len(query) < searchMinLength {
		return []ProductInfo{}, nil
	}

	products, err := c.productRepo.Search(ctx, query, searchLimit)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return products, nil
}

// GetProduct возвращает карточку активного товара и до четырёх похожих
// товаров той же категории. Сам товар читается через Redis-кэш.
func (c *CatalogUseCase) GetProduct(ctx context.Context, id int64) (*ProductDetailRes, error) {
	const op = "CatalogUseCase.GetProduct"

	product, err := c.cacheRepo.GetProduct(ctx, id)
	if err != nil {
		c.logger.Warnf("Product cache lookup failed: %v", e.Wrap(op, err))
		product = nil
	}

	if product == nil {
		product, err = c.productRepo.GetInfo(ctx, id)
		if err != nil {
			return nil, e.Wrap(op, err)
		}

		// Фоновое добавление товара в кэш
		go func(info ProductInfo) {
			bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
			defer cancel()

			if err := c.cacheRepo.SetProduct(bgCtx, &info); err != nil {
				c.logger.Warnf("Failed to cache product in background: %v", e.Wrap(op, err))
			}
		}(*product)
	}

	related, err := c.productRepo.GetRelated(ctx, product.CategoryID, product.ID, relatedLimit)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &ProductDetailRes{
		Product: *product,
		Related: related,
	}, nil
}

// ListCategories возвращает все категории с количеством товаров.
func (c *CatalogUseCase) ListCategories(ctx context.Context) ([]CategoryInfo, error) {
	const op = "CatalogUseCase.ListCategories"

	categories, err := c.categoryRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return categories, nil
}

// normalizeSort приводит параметры сортировки к поддерживаемому набору.
func normalizeSort(req *ListProductsReq) {
	switch req.SortBy {
	case "price", "name", "created_at":
	default:
		req.SortBy = "created_at"
	}

	switch strings.ToLower(req.SortOrder) {
	case "asc", "desc":
		req.SortOrder = strings.ToLower(req.SortOrder)
	default:
		req.SortOrder = "desc"
	}
}
