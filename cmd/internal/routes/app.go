package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"newsnotes/cmd/internal/config"
	"newsnotes/cmd/internal/domain/sqlite/repository"
	"newsnotes/cmd/internal/http/handler"
	authmw "newsnotes/cmd/internal/http/middleware"
	"newsnotes/cmd/internal/service"
	"newsnotes/cmd/internal/service/jobs"
	"newsnotes/cmd/internal/utils"
	"newsnotes/cmd/internal/utils/validators"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
)

const (
	bodyLimit     = "1M"
	csrfFormField = "csrfmiddlewaretoken"
	csrfHeader    = "X-CSRFToken"
	csrfCookie    = "csrftoken"

	shutdownTimeout = 10 * time.Second
)

// App is one assembled site, ready to be started.
type App struct {
	Echo     *echo.Echo
	Sessions *service.SessionService

	// News is only set for the news site, which can import seed files.
	News *service.NewsService
}

// Run serves on addr until ctx is cancelled, sweeping expired sessions
// in the background meanwhile.
func (a *App) Run(ctx context.Context, addr string) error {
	cleaner := jobs.NewSessionCleaner(a.Sessions, jobs.SessionCleanInterval)
	go cleaner.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		errCh <- a.Echo.Start(addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return a.Echo.Shutdown(shutdownCtx)
}

// base holds what both sites share: the echo instance with its common
// middleware, the auth pages and the session machinery.
type base struct {
	echo     *echo.Echo
	pages    *handler.Pages
	validate *validator.Validate
	sessions *service.SessionService
}

func newBase(cfg *config.Config, db *gorm.DB, renderer echo.Renderer) (*base, error) {
	signer, err := utils.NewTokenSigner(cfg.SessionSecret)
	if err != nil {
		return nil, fmt.Errorf("invalid session secret: %w", err)
	}

	validate := validators.New()
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)

	sessions := service.NewSessionService(sessionRepo, userRepo, signer, cfg.SessionTTL)
	userService := service.NewUserService(userRepo, sessions, validate)

	pages := handler.NewPages(cfg.Site)
	cookie := handler.SessionCookie{
		Name:   cfg.SessionCookie,
		TTL:    cfg.SessionTTL,
		Secure: cfg.IsProduction(),
	}
	userRoutes := handler.NewUserDefault(pages, userService, cookie, config.LoginURL, cfg.LoginRedirect)

	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	e.HTTPErrorHandler = pages.HTTPErrorHandler

	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(bodyLimit))
	if cfg.CSRFEnabled {
		e.Use(middleware.CSRFWithConfig(middleware.CSRFConfig{
			TokenLookup:    "header:" + csrfHeader + ",form:" + csrfFormField,
			CookieName:     csrfCookie,
			CookiePath:     "/",
			CookieHTTPOnly: true,
			CookieSecure:   cfg.IsProduction(),
			CookieSameSite: http.SameSiteLaxMode,
		}))
	}
	e.Use(authmw.NewSessionMiddleware(&authmw.AuthMiddlewareConfig{
		Sessions:   sessions,
		CookieName: cfg.SessionCookie,
	}))

	// Users
	e.GET(config.SignupURL, userRoutes.SignupForm)
	e.POST(config.SignupURL, userRoutes.CreateUser)
	e.GET(config.LoginURL, userRoutes.LoginForm)
	e.POST(config.LoginURL, userRoutes.CreateLogin)
	e.GET(config.LogoutURL, userRoutes.Logout)
	e.POST(config.LogoutURL, userRoutes.Logout)

	// Docker Compose healthcheck
	e.GET("/health", handler.HealthCheck)

	return &base{
		echo:     e,
		pages:    pages,
		validate: validate,
		sessions: sessions,
	}, nil
}
