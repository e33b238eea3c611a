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

// NewNotes assembles the notes site. Everything but the home page needs
// a logged in user.
func NewNotes(cfg *config.Config, db *gorm.DB, renderer echo.Renderer) (*App, error) {
	b, err := newBase(cfg, db, renderer)
	if err != nil {
		return nil, err
	}

	noteRepo := repository.NewNoteRepository(db)
	noteService := service.NewNoteService(noteRepo, b.validate, policy.NewNotePolicy())
	noteRoutes := handler.NewNoteDefault(b.pages, noteService)
	login := authmw.RequireLogin(config.LoginURL)

	e := b.echo
	e.GET("/", noteRoutes.Home)
	e.GET("/notes/", noteRoutes.GetNotes, login)
	e.GET("/add/", noteRoutes.AddForm, login)
	e.POST("/add/", noteRoutes.CreateNote, login)
	e.GET("/done/", noteRoutes.Done, login)
	e.GET("/note/:slug/", noteRoutes.GetNote, login)
	e.GET("/edit/:slug/", noteRoutes.EditForm, login)
	e.POST("/edit/:slug/", noteRoutes.UpdateNote, login)
	e.GET("/delete/:slug/", noteRoutes.DeleteForm, login)
	e.POST("/delete/:slug/", noteRoutes.DeleteNote, login)

	return &App{Echo: e, Sessions: b.sessions}, nil
}
