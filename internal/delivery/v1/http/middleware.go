package http

import (
	"context"
	"net/http"

	"github.com/DRSN-tech/storefront-backend/internal/cfg"
	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
)

type ctxKey int

const userIDKey ctxKey = iota

// sessionAuth проверяет сессионный cookie и кладёт ID пользователя в контекст.
// Запросы без валидной сессии отклоняются с 401.
func sessionAuth(authUC usecase.AuthUC, cfg *cfg.SessionCfg, logger logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cfg.CookieName)
			if err != nil {
				WriteError(w, e.ErrUnauthorized)
				return
			}

			userID, err := authUC.Resolve(r.Context(), cookie.Value)
			if err != nil {
				logger.Debugf("session resolve failed: %v", err)
				WriteError(w, e.ErrUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// userIDFromCtx возвращает ID пользователя, положенный sessionAuth.
func userIDFromCtx(ctx context.Context) (int64, error) {
	userID, ok := ctx.Value(userIDKey).(int64)
	if !ok {
		return 0, e.ErrUnauthorized
	}
	return userID, nil
}
