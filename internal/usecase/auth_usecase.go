package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

// AuthUseCase реализует регистрацию и вход по учётным данным
// с opaque-сессиями в Redis.
type AuthUseCase struct {
	userRepo    UserRepository
	sessionRepo SessionRepository
	logger      logger.Logger
}

func NewAuthUC(userRepo UserRepository, sessionRepo SessionRepository, logger logger.Logger) *AuthUseCase {
	return &AuthUseCase{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

// Register создаёт пользователя с bcrypt-хэшем пароля.
func (a *AuthUseCase) Register(ctx context.Context, req *RegisterReq) (*UserInfo, error) {
	const op = "AuthUseCase.Register"

	if err := validateRegister(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	user, err := a.userRepo.Create(ctx, domain.NewUser(strings.TrimSpace(req.Name), normalizeEmail(req.Email), string(hash)))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return newUserInfo(user), nil
}

// Login проверяет учётные данные и открывает сессию.
// Неизвестный email и неверный пароль неразличимы для вызывающего.
func (a *AuthUseCase) Login(ctx context.Context, req *LoginReq) (*LoginRes, error) {
	const op = "AuthUseCase.Login"

	user, err := a.userRepo.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, e.ErrUserNotFound) {
			return nil, e.Wrap(op, e.ErrInvalidCredentials)
		}
		return nil, e.Wrap(op, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, e.Wrap(op, e.ErrInvalidCredentials)
	}

	sessionID, err := a.sessionRepo.Create(ctx, user.ID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &LoginRes{
		SessionID: sessionID,
		User:      *newUserInfo(user),
	}, nil
}

// Logout закрывает сессию. Отсутствующая сессия не является ошибкой.
func (a *AuthUseCase) Logout(ctx context.Context, sessionID string) error {
	const op = "AuthUseCase.Logout"

	if sessionID == "" {
		return nil
	}

	if err := a.sessionRepo.Delete(ctx, sessionID); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// Resolve превращает идентификатор сессии в идентификатор пользователя.
// Используется только HTTP-middleware; usecase-методы всегда получают
// уже разрешённый user id явным аргументом.
func (a *AuthUseCase) Resolve(ctx context.Context, sessionID string) (int64, error) {
	const op = "AuthUseCase.Resolve"

	if sessionID == "" {
		return 0, e.Wrap(op, e.ErrUnauthorized)
	}

	userID, err := a.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, e.ErrSessionNotFound) {
			return 0, e.Wrap(op, e.ErrUnauthorized)
		}
		return 0, e.Wrap(op, err)
	}

	return userID, nil
}

func validateRegister(req *RegisterReq) error {
	email := normalizeEmail(req.Email)
	if email == "" || !strings.Contains(email, "@") {
		return e.ErrEmailRequired
	}

	if len(req.Password) < minPasswordLength {
		return e.ErrPasswordTooShort
	}

	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func newUserInfo(user *domain.User) *UserInfo {
	return &UserInfo{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
}
