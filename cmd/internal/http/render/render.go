package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strings"

	"github.com/labstack/echo/v4"
)

//go:embed templates
var templateFS embed.FS

const (
	layoutFile = "templates/base.html"
	rootName   = "base"
)

// Page templates, named by their path under templates/.
const (
	NewsHome      = "news/home.html"
	NewsList      = "news/list.html"
	NewsDetail    = "news/detail.html"
	CommentEdit   = "news/comment_edit.html"
	CommentDelete = "news/comment_delete.html"

	NotesHome   = "notes/home.html"
	NotesList   = "notes/list.html"
	NoteForm    = "notes/form.html"
	NoteDetail  = "notes/detail.html"
	NoteDelete  = "notes/delete.html"
	NoteSuccess = "notes/success.html"

	Login     = "users/login.html"
	Signup    = "users/signup.html"
	LoggedOut = "users/logged_out.html"

	Error = "errors/error.html"
)

// Renderer is an echo.Renderer holding one template set per page, each
// parsed together with the shared layout.
type Renderer struct {
	templates map[string]*template.Template
}

func New() (*Renderer, error) {
	pages, err := fs.Glob(templateFS, "templates/*/*.html")
	if err != nil {
		return nil, err
	}

	r := &Renderer{templates: make(map[string]*template.Template, len(pages))}
	for _, page := range pages {
		tmpl, err := template.New(rootName).ParseFS(templateFS, layoutFile, page)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", page, err)
		}
		r.templates[strings.TrimPrefix(page, "templates/")] = tmpl
	}
	return r, nil
}

// MustNew is New for process startup and tests.
func MustNew() *Renderer {
	r, err := New()
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	tmpl, ok := r.templates[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}
	return tmpl.ExecuteTemplate(w, rootName, data)
}

// Has reports whether a page template called name exists.
func (r *Renderer) Has(name string) bool {
	_, ok := r.templates[name]
	return ok
}
