package http

import (
	"encoding/json"
	"net/http"

	"github.com/DRSN-tech/storefront-backend/internal/cfg"
	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
)

type AuthHandler struct {
	authUsecase usecase.AuthUC
	cfg         *cfg.SessionCfg
	logger      logger.Logger
}

func NewAuthHandler(authUsecase usecase.AuthUC, cfg *cfg.SessionCfg, logger logger.Logger) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase, cfg: cfg, logger: logger}
}

type registerBody struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userView struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// register
//
//	@Summary		Регистрация пользователя
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		registerBody	true	"Данные пользователя"
//	@Success		201		{object}	map[string]interface{}
//	@Failure		400		{object}	ErrorResponse
//	@Router			/auth/register [post]
func (a *AuthHandler) register(w http.ResponseWriter, r *http.Request) {
	var body registerBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		a.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	user, err := a.authUsecase.Register(r.Context(), usecase.NewRegisterReq(body.Name, body.Email, body.Password))
	if err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, map[string]interface{}{
		"user": userView{ID: user.ID, Name: user.Name, Email: user.Email},
	})
}

// login
//
//	@Summary		Вход по email и паролю
//	@Description	Выдаёт сессионный cookie при успешной проверке учётных данных
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		loginBody	true	"Учётные данные"
//	@Success		200		{object}	map[string]interface{}
//	@Failure		401		{object}	ErrorResponse
//	@Router			/auth/login [post]
func (a *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var body loginBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		a.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	res, err := a.authUsecase.Login(r.Context(), usecase.NewLoginReq(body.Email, body.Password))
	if err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	http.SetCookie(w, a.sessionCookie(res.SessionID, int(a.cfg.TTL.Seconds())))

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"user": userView{ID: res.User.ID, Name: res.User.Name, Email: res.User.Email},
	})
}

// logout
//
//	@Summary		Выход из сессии
//	@Tags			auth
//	@Produce		json
//	@Success		200	{object}	map[string]interface{}
//	@Router			/auth/logout [post]
func (a *AuthHandler) logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(a.cfg.CookieName); err == nil {
		if err := a.authUsecase.Logout(r.Context(), cookie.Value); err != nil {
			a.logger.Warnf("%s", err.Error())
			WriteError(w, err)
			return
		}
	}

	// Сбрасываем cookie независимо от наличия сессии
	http.SetCookie(w, a.sessionCookie("", -1))

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"message": "logged out",
	})
}

func (a *AuthHandler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     a.cfg.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   a.cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}
