package middleware

import (
	"errors"
	"net/http"
	"newsnotes/cmd/internal/domain/entity"
	"newsnotes/cmd/internal/service"
	"newsnotes/cmd/internal/utils"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

type SessionResolver interface {
	Resolve(token string) (*entity.User, string, error)
}

type AuthMiddlewareConfig struct {
	Sessions   SessionResolver
	CookieName string
}

// NewSessionMiddleware attaches the logged in user, if any, to the context.
// Missing, forged or expired cookies simply leave the request anonymous.
func NewSessionMiddleware(cfg *AuthMiddlewareConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(cfg.CookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			user, sessionID, err := cfg.Sessions.Resolve(cookie.Value)
			if errors.Is(err, service.ErrNoSession) {
				return next(c)
			}

			if err != nil {
				log.Errorf("failed to resolve session: %v", err)
				return echo.NewHTTPError(http.StatusInternalServerError)
			}

			c.Set(utils.ContextUserKey, user)
			c.Set(utils.ContextSessionKey, sessionID)
			return next(c)
		}
	}
}

// RequireLogin sends anonymous visitors to the login page, remembering
// where they were headed in the 'next' query parameter.
func RequireLogin(loginURL string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Pages behind a login must never be served from a shared cache
			header := c.Response().Header()
			header.Set("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
			header.Set("Pragma", "no-cache")

			if utils.CurrentUser(c) == nil {
				target := utils.LoginRedirectURL(loginURL, c.Request().URL.RequestURI())
				return c.Redirect(http.StatusFound, target)
			}
			return next(c)
		}
	}
}
