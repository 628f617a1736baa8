package redis

import (
	"context"
	"testing"
	"time"

	"github.com/DRSN-tech/storefront-backend/internal/cfg"
	"github.com/DRSN-tech/storefront-backend/pkg/clients"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/alicebob/miniredis/v2"
	r "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessionRepo(t *testing.T) (*SessionRepo, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := &clients.RedisClient{Client: r.NewClient(&r.Options{Addr: mr.Addr()})}

	repo := NewSessionRepo(client, &cfg.SessionCfg{
		CookieName: "storefront_session",
		TTL:        time.Hour,
	})

	return repo, mr
}

func TestSessionRepo_CreateAndGet(t *testing.T) {
	repo, _ := newTestSessionRepo(t)
	ctx := context.Background()

	sessionID, err := repo.Create(ctx, 42)
	require.NoError(t, err)
	require.NotEmpty(t, sessionID)

	userID, err := repo.Get(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestSessionRepo_UniqueIDs(t *testing.T) {
	repo, _ := newTestSessionRepo(t)
	ctx := context.Background()

	first, err := repo.Create(ctx, 1)
	require.NoError(t, err)
	second, err := repo.Create(ctx, 1)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestSessionRepo_GetUnknown(t *testing.T) {
	repo, _ := newTestSessionRepo(t)

	_, err := repo.Get(context.Background(), "no-such-session")
	assert.ErrorIs(t, err, e.ErrSessionNotFound)
}

func TestSessionRepo_Expires(t *testing.T) {
	repo, mr := newTestSessionRepo(t)
	ctx := context.Background()

	sessionID, err := repo.Create(ctx, 42)
	require.NoError(t, err)

	mr.FastForward(2 * time.Hour)

	_, err = repo.Get(ctx, sessionID)
	assert.ErrorIs(t, err, e.ErrSessionNotFound)
}

func TestSessionRepo_Delete(t *testing.T) {
	repo, _ := newTestSessionRepo(t)
	ctx := context.Background()

	sessionID, err := repo.Create(ctx, 42)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, sessionID))

	_, err = repo.Get(ctx, sessionID)
	assert.ErrorIs(t, err, e.ErrSessionNotFound)

	// Повторное удаление не ошибка
	require.NoError(t, repo.Delete(ctx, sessionID))
}
