package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	byEmail map[string]*domain.User
	nextID  int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: make(map[string]*domain.User),
		nextID:  1,
	}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := f.byEmail[user.Email]; ok {
		return nil, e.ErrEmailTaken
	}
	user.ID = f.nextID
	f.nextID++
	f.byEmail[user.Email] = user
	return user, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return nil, e.ErrUserNotFound
	}
	return user, nil
}

type fakeSessionRepo struct {
	sessions map[string]int64
	nextID   int
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]int64)}
}

func (f *fakeSessionRepo) Create(ctx context.Context, userID int64) (string, error) {
	f.nextID++
	id := fmt.Sprintf("session-%d", f.nextID)
	f.sessions[id] = userID
	return id, nil
}

func (f *fakeSessionRepo) Get(ctx context.Context, sessionID string) (int64, error) {
	userID, ok := f.sessions[sessionID]
	if !ok {
		return 0, e.ErrSessionNotFound
	}
	return userID, nil
}

func (f *fakeSessionRepo) Delete(ctx context.Context, sessionID string) error {
	delete(f.sessions, sessionID)
	return nil
}

func newAuthUC() (*AuthUseCase, *fakeUserRepo, *fakeSessionRepo) {
	userRepo := newFakeUserRepo()
	sessionRepo := newFakeSessionRepo()
	return NewAuthUC(userRepo, sessionRepo, nopLogger{}), userRepo, sessionRepo
}

func TestRegister_Success(t *testing.T) {
	uc, userRepo, _ := newAuthUC()

	user, err := uc.Register(context.Background(), NewRegisterReq("Ivan", "  Ivan@Example.COM ", "password123"))
	require.NoError(t, err)

	assert.Equal(t, "ivan@example.com", user.Email)
	assert.Equal(t, "Ivan", user.Name)

	stored := userRepo.byEmail["ivan@example.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "password123", stored.PasswordHash)
}

func TestRegister_InvalidEmail(t *testing.T) {
	uc, _, _ := newAuthUC()

	for _, email := range []string{"", "   ", "not-an-email"} {
		_, err := uc.Register(context.Background(), NewRegisterReq("Ivan", email, "password123"))
		assert.ErrorIs(t, err, e.ErrEmailRequired, "email %q", email)
	}
}

func TestRegister_ShortPassword(t *testing.T) {
	uc, _, _ := newAuthUC()

	_, err := uc.Register(context.Background(), NewRegisterReq("Ivan", "ivan@example.com", "short"))
	assert.ErrorIs(t, err, e.ErrPasswordTooShort)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	uc, _, _ := newAuthUC()

	_, err := uc.Register(context.Background(), NewRegisterReq("Ivan", "ivan@example.com", "password123"))
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), NewRegisterReq("Ivan2", "IVAN@example.com", "password456"))
	assert.ErrorIs(t, err, e.ErrEmailTaken)
}

func TestLogin_Success(t *testing.T) {
	uc, _, sessionRepo := newAuthUC()

	_, err := uc.Register(context.Background(), NewRegisterReq("Ivan", "ivan@example.com", "password123"))
	require.NoError(t, err)

	res, err := uc.Login(context.Background(), NewLoginReq("Ivan@Example.com", "password123"))
	require.NoError(t, err)

	assert.NotEmpty(t, res.SessionID)
	assert.Equal(t, "ivan@example.com", res.User.Email)
	assert.Equal(t, res.User.ID, sessionRepo.sessions[res.SessionID])
}

func TestLogin_WrongPasswordAndUnknownEmailAreIndistinguishable(t *testing.T) {
	uc, _, _ := newAuthUC()

	_, err := uc.Register(context.Background(), NewRegisterReq("Ivan", "ivan@example.com", "password123"))
	require.NoError(t, err)

	_, wrongPass := uc.Login(context.Background(), NewLoginReq("ivan@example.com", "wrong-password"))
	assert.ErrorIs(t, wrongPass, e.ErrInvalidCredentials)

	_, unknownEmail := uc.Login(context.Background(), NewLoginReq("nobody@example.com", "password123"))
	assert.ErrorIs(t, unknownEmail, e.ErrInvalidCredentials)
}

func TestLogout_Idempotent(t *testing.T) {
	uc, _, _ := newAuthUC()

	require.NoError(t, uc.Logout(context.Background(), ""))
	require.NoError(t, uc.Logout(context.Background(), "no-such-session"))
}

func TestResolve(t *testing.T) {
	uc, _, _ := newAuthUC()

	_, err := uc.Register(context.Background(), NewRegisterReq("Ivan", "ivan@example.com", "password123"))
	require.NoError(t, err)

	res, err := uc.Login(context.Background(), NewLoginReq("ivan@example.com", "password123"))
	require.NoError(t, err)

	userID, err := uc.Resolve(context.Background(), res.SessionID)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, userID)

	_, err = uc.Resolve(context.Background(), "")
	assert.ErrorIs(t, err, e.ErrUnauthorized)

	_, err = uc.Resolve(context.Background(), "expired")
	assert.ErrorIs(t, err, e.ErrUnauthorized)
}
