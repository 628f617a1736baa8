package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestServer() (*httptest.Server, *fakeAuthUC) {
	authUC := &fakeAuthUC{sessions: map[string]int64{"session-1": 1}}

	r := chi.NewRouter()
	r.Route("/api/v1", func(v1 chi.Router) {
		registerAuthRoutes(v1, NewAuthHandler(authUC, testSessionCfg, nopLogger{}))
	})

	return httptest.NewServer(r), authUC
}

func TestRegister_ReturnsUser(t *testing.T) {
	srv, _ := newAuthTestServer()
	defer srv.Close()

	res, err := srv.Client().Post(srv.URL+"/api/v1/auth/register", "application/json",
		strings.NewReader(`{"name": "Ivan", "email": "ivan@example.com", "password": "password123"}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	body := decodeBody(t, res)
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "ivan@example.com", user["email"])
	assert.Nil(t, user["password"])
}

func TestLogin_SetsSessionCookie(t *testing.T) {
	srv, _ := newAuthTestServer()
	defer srv.Close()

	res, err := srv.Client().Post(srv.URL+"/api/v1/auth/login", "application/json",
		strings.NewReader(`{"email": "ivan@example.com", "password": "password123"}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)
	defer res.Body.Close()

	var sessionCookie *http.Cookie
	for _, cookie := range res.Cookies() {
		if cookie.Name == testSessionCfg.CookieName {
			sessionCookie = cookie
		}
	}

	require.NotNil(t, sessionCookie)
	assert.Equal(t, "session-1", sessionCookie.Value)
	assert.True(t, sessionCookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, sessionCookie.SameSite)
}

func TestLogout_ClearsCookieAndSession(t *testing.T) {
	srv, authUC := newAuthTestServer()
	defer srv.Close()

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/v1/auth/logout", nil)
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: testSessionCfg.CookieName, Value: "session-1"})

	res, err := srv.Client().Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)
	defer res.Body.Close()

	_, ok := authUC.sessions["session-1"]
	assert.False(t, ok, "session must be deleted")

	for _, cookie := range res.Cookies() {
		if cookie.Name == testSessionCfg.CookieName {
			assert.Empty(t, cookie.Value)
			assert.Negative(t, cookie.MaxAge)
		}
	}
}

func TestLogout_WithoutCookieIsOK(t *testing.T) {
	srv, _ := newAuthTestServer()
	defer srv.Close()

	res, err := srv.Client().Post(srv.URL+"/api/v1/auth/logout", "application/json", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	res.Body.Close()
}
