package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/lingonote/lingonote/errors"
	"github.com/lingonote/lingonote/internal/adapter/presenter"
	"github.com/lingonote/lingonote/internal/usecase/auth"
	"github.com/lingonote/lingonote/pkg/config"
)

// Auth handles authentication HTTP requests
type Auth struct {
	oauthService *auth.OAuthService
	logger       *zap.Logger
	cfg          *config.Config
}

// NewAuth creates a new auth handler
func NewAuth(oauthService *auth.OAuthService, logger *zap.Logger, cfg *config.Config) *Auth {
	return &Auth{
		oauthService: oauthService,
		logger:       logger,
		cfg:          cfg,
	}
}

// GoogleLogin handles GET /auth/google/login
// @Summary      Start Google OAuth login
// @Description  Redirects the browser to the Google consent screen
// @Tags         Auth
// @Success      307  "Redirect to Google"
// @Router       /auth/google/login [get]
func (h *Auth) GoogleLogin(c echo.Context) error {
	ctx := c.Request().Context()

	authURL, err := h.oauthService.GetGoogleAuthURL(ctx)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrOAuthFailed("google", err))
	}

	return c.Redirect(http.StatusTemporaryRedirect, authURL.URL)
}

// GoogleCallback handles GET /auth/google/callback
// @Summary      Google OAuth callback
// @Description  Validates the state, exchanges the code and issues a session token
// @Tags         Auth
// @Produce      json
// @Param        code   query  string  true  "Authorization code"
// @Param        state  query  string  true  "State token"
// @Success      200  {object}  common.SuccessEnvelope{data=auth.AuthResponse}
// @Failure      401  {object}  common.ErrorEnvelope  "Authentication failed"
// @Router       /auth/google/callback [get]
func (h *Auth) GoogleCallback(c echo.Context) error {
	ctx := c.Request().Context()

	code := c.QueryParam("code")
	state := c.QueryParam("state")
	if code == "" || state == "" {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Missing code or state parameter"))
	}

	response, err := h.oauthService.HandleGoogleCallback(ctx, &auth.GoogleCallbackRequest{
		Code:  code,
		State: state,
	})
	if err != nil {
		return HandleError(h.logger, c, errors.ErrOAuthFailed("google", err))
	}

	h.setSessionCookie(c, response.AccessToken, int(response.ExpiresIn))

	return HandleSuccess(h.logger, c, presenter.ToAuthResponse(response))
}

// Me handles GET /auth/me
// @Summary      Current user
// @Tags         Auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  common.SuccessEnvelope{data=auth.UserResponse}
// @Failure      401  {object}  common.ErrorEnvelope  "Not authenticated"
// @Router       /auth/me [get]
func (h *Auth) Me(c echo.Context) error {
	token := extractBearerToken(c)
	if token == "" {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	user, err := h.oauthService.ValidateSession(c.Request().Context(), token)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidToken())
	}

	return HandleSuccess(h.logger, c, presenter.ToUserResponse(user))
}

// Logout handles POST /auth/logout
// @Summary      Logout
// @Description  Clears the session cookie
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  common.SuccessEnvelope
// @Router       /auth/logout [post]
func (h *Auth) Logout(c echo.Context) error {
	h.setSessionCookie(c, "", -1)
	return HandleSuccess(h.logger, c, map[string]string{"message": "Logged out successfully"})
}

// setSessionCookie sets or clears the access_token cookie
func (h *Auth) setSessionCookie(c echo.Context, token string, maxAge int) {
	c.SetCookie(&http.Cookie{
		Name:     "access_token",
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
}

// extractBearerToken reads the token from the Authorization header or the
// access_token cookie
func extractBearerToken(c echo.Context) string {
	token := c.Request().Header.Get("Authorization")
	if len(token) > 7 && token[:7] == "Bearer " {
		return token[7:]
	}
	if cookie, err := c.Cookie("access_token"); err == nil {
		return cookie.Value
	}
	return ""
}
