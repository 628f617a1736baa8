package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/DRSN-tech/storefront-backend/internal/cfg"
	"github.com/DRSN-tech/storefront-backend/pkg/clients"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/google/uuid"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

// SessionRepo хранит пользовательские сессии в Redis с TTL.
type SessionRepo struct {
	client *clients.RedisClient
	cfg    *cfg.SessionCfg
}

func NewSessionRepo(client *clients.RedisClient, cfg *cfg.SessionCfg) *SessionRepo {
	return &SessionRepo{
		client: client,
		cfg:    cfg,
	}
}

// Create создаёт новую сессию для пользователя и возвращает её ID.
func (s *SessionRepo) Create(ctx context.Context, userID int64) (string, error) {
	sessionID := uuid.NewString()

	err := s.client.Client.Set(ctx, s.sessionKey(sessionID), userID, s.cfg.TTL).Err()
	if err != nil {
		return "", e.Wrap(whereami.WhereAmI(), err)
	}

	return sessionID, nil
}

// Get возвращает ID пользователя по ID сессии.
// Если сессия не найдена или истекла, возвращает e.ErrSessionNotFound.
func (s *SessionRepo) Get(ctx context.Context, sessionID string) (int64, error) {
	val, err := s.client.Client.Get(ctx, s.sessionKey(sessionID)).Result()
	if err != nil {
		if errors.Is(err, r.Nil) {
			return 0, e.ErrSessionNotFound
		}

		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	userID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return userID, nil
}

// Delete удаляет сессию. Отсутствие сессии не считается ошибкой.
func (s *SessionRepo) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Client.Del(ctx, s.sessionKey(sessionID)).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// sessionKey возвращает Redis-ключ для сессии
func (s *SessionRepo) sessionKey(sessionID string) string {
	return fmt.Sprintf("session:%s", sessionID)
}
