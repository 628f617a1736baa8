package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCacheRepo struct {
	mu      sync.Mutex
	stored  map[int64]*ProductInfo
	getErr  error
	setCh   chan int64
}

func newFakeCacheRepo() *fakeCacheRepo {
	return &fakeCacheRepo{
		stored: make(map[int64]*ProductInfo),
		setCh:  make(chan int64, 1),
	}
}

func (f *fakeCacheRepo) GetProduct(ctx context.Context, id int64) (*ProductInfo, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stored[id], nil
}

func (f *fakeCacheRepo) SetProduct(ctx context.Context, info *ProductInfo) error {
	f.mu.Lock()
	f.stored[info.ID] = info
	f.mu.Unlock()
	select {
	case f.setCh <- info.ID:
	default:
	}
	return nil
}

type fakeCategoryRepo struct {
	categories []CategoryInfo
	err        error
}

func (f *fakeCategoryRepo) List(ctx context.Context) ([]CategoryInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.categories, nil
}

func TestListProducts_NormalizesSort(t *testing.T) {
	productRepo := newFakeProductRepo()
	uc := NewCatalogUC(productRepo, &fakeCategoryRepo{}, newFakeCacheRepo(), nopLogger{})

	_, err := uc.ListProducts(context.Background(), &ListProductsReq{SortBy: "password_hash", SortOrder: "DROP"})
	require.NoError(t, err)

	assert.Equal(t, "created_at", productRepo.lastList.SortBy)
	assert.Equal(t, "desc", productRepo.lastList.SortOrder)
}

func TestListProducts_KeepsAllowedSort(t *testing.T) {
	productRepo := newFakeProductRepo()
	uc := NewCatalogUC(productRepo, &fakeCategoryRepo{}, newFakeCacheRepo(), nopLogger{})

	_, err := uc.ListProducts(context.Background(), &ListProductsReq{SortBy: "price", SortOrder: "ASC"})
	require.NoError(t, err)

	assert.Equal(t, "price", productRepo.lastList.SortBy)
	assert.Equal(t, "asc", productRepo.lastList.SortOrder)
}

func TestSearchProducts_ShortQueryReturnsEmpty(t *testing.T) {
	productRepo := newFakeProductRepo()
	uc := NewCatalogUC(productRepo, &fakeCategoryRepo{}, newFakeCacheRepo(), nopLogger{})

	for _, q := range []string{"", "a", "  a  "} {
		products, err := uc.SearchProducts(context.Background(), q)
		require.NoError(t, err)
		assert.Empty(t, products)
		assert.Empty(t, productRepo.lastSearch, "repo must not be queried for %q", q)
	}
}

func TestSearchProducts_TrimsQuery(t *testing.T) {
	productRepo := newFakeProductRepo()
	uc := NewCatalogUC(productRepo, &fakeCategoryRepo{}, newFakeCacheRepo(), nopLogger{})

	products, err := uc.SearchProducts(context.Background(), "  чайник  ")
	require.NoError(t, err)

	assert.Equal(t, "чайник", productRepo.lastSearch)
	assert.Len(t, products, 1)
}

func TestGetProduct_CacheMissFallsBackToDB(t *testing.T) {
	productRepo := newFakeProductRepo()
	productRepo.infos[10] = &ProductInfo{ID: 10, Name: "Чайник", CategoryID: 2}
	productRepo.related = []ProductInfo{{ID: 11}, {ID: 12}}
	cacheRepo := newFakeCacheRepo()
	uc := NewCatalogUC(productRepo, &fakeCategoryRepo{}, cacheRepo, nopLogger{})

	res, err := uc.GetProduct(context.Background(), 10)
	require.NoError(t, err)

	assert.Equal(t, "Чайник", res.Product.Name)
	assert.Len(t, res.Related, 2)

	// Товар докладывается в кэш в фоне
	assert.Equal(t, int64(10), <-cacheRepo.setCh)
}

func TestGetProduct_CacheHitSkipsDB(t *testing.T) {
	productRepo := newFakeProductRepo()
	cacheRepo := newFakeCacheRepo()
	cacheRepo.stored[10] = &ProductInfo{ID: 10, Name: "Из кэша", CategoryID: 2}
	uc := NewCatalogUC(productRepo, &fakeCategoryRepo{}, cacheRepo, nopLogger{})

	res, err := uc.GetProduct(context.Background(), 10)
	require.NoError(t, err)

	assert.Equal(t, "Из кэша", res.Product.Name)
}

func TestGetProduct_CacheErrorIsNotFatal(t *testing.T) {
	productRepo := newFakeProductRepo()
	productRepo.infos[10] = &ProductInfo{ID: 10, Name: "Чайник"}
	cacheRepo := newFakeCacheRepo()
	cacheRepo.getErr = errors.New("redis down")
	uc := NewCatalogUC(productRepo, &fakeCategoryRepo{}, cacheRepo, nopLogger{})

	res, err := uc.GetProduct(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, "Чайник", res.Product.Name)
}

func TestListCategories(t *testing.T) {
	categoryRepo := &fakeCategoryRepo{
		categories: []CategoryInfo{
			{ID: 1, Name: "Кухня", ProductCount: 3},
		},
	}
	uc := NewCatalogUC(newFakeProductRepo(), categoryRepo, newFakeCacheRepo(), nopLogger{})

	categories, err := uc.ListCategories(context.Background())
	require.NoError(t, err)

	require.Len(t, categories, 1)
	assert.Equal(t, int64(3), categories[0].ProductCount)
}
