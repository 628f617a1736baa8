package redis

import (
	"context"
	"testing"
	"time"

	"github.com/DRSN-tech/storefront-backend/internal/cfg"
	"github.com/DRSN-tech/storefront-backend/internal/repository/redis/converter/generated"
	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/clients"
	"github.com/alicebob/miniredis/v2"
	r "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...any)            {}
func (nopLogger) Infof(format string, args ...any)             {}
func (nopLogger) Warnf(format string, args ...any)             {}
func (nopLogger) Errorf(err error, format string, args ...any) {}

func newTestCacheRepo(t *testing.T) (*CacheRepo, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := &clients.RedisClient{Client: r.NewClient(&r.Options{Addr: mr.Addr()})}

	repo := NewCacheRepo(client, generated.NewProductInfoConverterImpl(), &cfg.RedisCfg{
		Addr:       mr.Addr(),
		ProductTTL: 3 * time.Minute,
	}, nopLogger{})

	return repo, mr
}

func TestCacheRepo_SetGetRoundTrip(t *testing.T) {
	repo, _ := newTestCacheRepo(t)
	ctx := context.Background()

	compareAt := int64(2500)
	info := &usecase.ProductInfo{
		ID:             10,
		Name:           "Чайник",
		Slug:           "chaynik",
		SKU:            "TEA-001",
		Price:          1999,
		CompareAtPrice: &compareAt,
		Stock:          5,
		Featured:       true,
		CategoryID:     2,
		CategoryName:   "Кухня",
	}

	require.NoError(t, repo.SetProduct(ctx, info))

	got, err := repo.GetProduct(ctx, 10)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, info.Name, got.Name)
	assert.Equal(t, info.Price, got.Price)
	require.NotNil(t, got.CompareAtPrice)
	assert.Equal(t, compareAt, *got.CompareAtPrice)
	assert.True(t, got.Featured)
}

func TestCacheRepo_MissReturnsNil(t *testing.T) {
	repo, _ := newTestCacheRepo(t)

	got, err := repo.GetProduct(context.Background(), 404)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCacheRepo_EntryExpires(t *testing.T) {
	repo, mr := newTestCacheRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SetProduct(ctx, &usecase.ProductInfo{ID: 10, Name: "Чайник"}))

	mr.FastForward(4 * time.Minute)

	got, err := repo.GetProduct(ctx, 10)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCacheRepo_CorruptEntryIsAMiss(t *testing.T) {
	repo, mr := newTestCacheRepo(t)

	require.NoError(t, mr.Set("product:10", "{not json"))

	got, err := repo.GetProduct(context.Background(), 10)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCacheRepo_IDMismatchIsAMiss(t *testing.T) {
	repo, mr := newTestCacheRepo(t)

	require.NoError(t, mr.Set("product:10", `{"id": 11, "name": "Чужой товар"}`))

	got, err := repo.GetProduct(context.Background(), 10)
	require.NoError(t, err)
	assert.Nil(t, got)
}
