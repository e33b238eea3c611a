package routes

import (
	"newsnotes/cmd/internal/config"
	"newsnotes/cmd/internal/domain/policy"
	"newsnotes/cmd/internal/domain/sqlite/repository"
	"newsnotes/cmd/internal/http/handler"
	authmw "newsnotes/cmd/internal/http/middleware"
	"newsnotes/cmd/internal/service"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// NewNews assembles the news site: the news feed, news pages and comments.
func NewNews(cfg *config.Config, db *gorm.DB, renderer echo.Renderer) (*App, error) {
	b, err := newBase(cfg, db, renderer)
	if err != nil {
		return nil, err
	}

	newsRepo := repository.NewNewsRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	newsService := service.NewNewsService(newsRepo, b.validate, cfg.NewsPerPage)
	commentService := service.NewCommentService(commentRepo, newsRepo, b.validate, policy.NewCommentPolicy())

	newsRoutes := handler.NewNewsDefault(b.pages, newsService, commentService, config.LoginURL)
	login := authmw.RequireLogin(config.LoginURL)

	e := b.echo
	e.GET("/", newsRoutes.Home)
	e.GET("/news/", newsRoutes.List)
	e.GET("/news/:id/", newsRoutes.Detail)
	e.POST("/news/:id/", newsRoutes.CreateComment)

	// Comments
	e.GET("/edit_comment/:id/", newsRoutes.EditCommentForm, login)
	e.POST("/edit_comment/:id/", newsRoutes.UpdateComment, login)
	e.GET("/delete_comment/:id/", newsRoutes.DeleteCommentForm, login)
	e.POST("/delete_comment/:id/", newsRoutes.DeleteComment, login)
	e.DELETE("/delete_comment/:id/", newsRoutes.DeleteComment, login)

	return &App{Echo: e, Sessions: b.sessions, News: newsService}, nil
}
