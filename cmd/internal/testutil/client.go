package testutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"newsnotes/cmd/internal/config"
	"newsnotes/cmd/internal/contract"
	"newsnotes/cmd/internal/domain/entity"
	"newsnotes/cmd/internal/domain/sqlite"
	"newsnotes/cmd/internal/http/render"
	"newsnotes/cmd/internal/routes"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testSecret = "test-session-secret-0123456789abcdef"

// RecordingRenderer renders through the real templates and remembers the
// last page it rendered.
type RecordingRenderer struct {
	inner echo.Renderer

	mu   sync.Mutex
	last *Rendered
}

// Rendered is one page as handed to the template.
type Rendered struct {
	Template string
	View     *contract.View
}

func (r *RecordingRenderer) Render(w io.Writer, name string, data any, c echo.Context) error {
	view, _ := data.(*contract.View)

	r.mu.Lock()
	r.last = &Rendered{Template: name, View: view}
	r.mu.Unlock()

	return r.inner.Render(w, name, data, c)
}

func (r *RecordingRenderer) take() *Rendered {
	r.mu.Lock()
	defer r.mu.Unlock()

	last := r.last
	r.last = nil
	return last
}

// Site is a fully assembled site backed by a fresh database.
type Site struct {
	App      *routes.App
	DB       *gorm.DB
	Config   *config.Config
	renderer *RecordingRenderer
}

func NewNewsSite(t testing.TB) *Site {
	t.Helper()
	return NewSite(t, config.SiteNews, nil)
}

func NewNotesSite(t testing.TB) *Site {
	t.Helper()
	return NewSite(t, config.SiteNotes, nil)
}

// NewSite builds site with env on top of the test defaults, which turn
// CSRF checks off.
func NewSite(t testing.TB, site config.Site, env map[string]string) *Site {
	t.Helper()

	vals := map[string]string{
		"SESSION_SECRET": testSecret,
		"CSRF_ENABLED":   "false",
	}
	for key, val := range env {
		vals[key] = val
	}

	cfg, err := config.FromEnv(site, func(key string) string { return vals[key] })
	require.NoError(t, err)

	models, build := sqlite.NoteModels(), routes.NewNotes
	if site == config.SiteNews {
		models, build = sqlite.NewsModels(), routes.NewNews
	}

	db := NewDB(t, models...)
	renderer := &RecordingRenderer{inner: render.MustNew()}

	app, err := build(cfg, db, renderer)
	require.NoError(t, err)

	return &Site{App: app, DB: db, Config: cfg, renderer: renderer}
}

func (s *Site) Anonymous() *Client {
	return &Client{site: s, cookies: map[string]*http.Cookie{}}
}

// ForceLogin returns a client already carrying a session for user,
// without going through the login form.
func (s *Site) ForceLogin(t testing.TB, user *entity.User) *Client {
	t.Helper()

	token, apierr := s.App.Sessions.Start(user)
	require.Nil(t, apierr)

	client := s.Anonymous()
	client.cookies[s.Config.SessionCookie] = &http.Cookie{Name: s.Config.SessionCookie, Value: token}
	return client
}

// Client sends requests straight into the echo instance, keeping cookies
// between them like a browser would.
type Client struct {
	site    *Site
	cookies map[string]*http.Cookie
}

func (c *Client) Get(target string) *Response {
	return c.Do(httptest.NewRequest(http.MethodGet, target, nil))
}

func (c *Client) Post(target string, form url.Values) *Response {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return c.Do(req)
}

func (c *Client) Delete(target string) *Response {
	return c.Do(httptest.NewRequest(http.MethodDelete, target, nil))
}

func (c *Client) Do(req *http.Request) *Response {
	for _, cookie := range c.cookies {
		req.AddCookie(cookie)
	}

	c.site.renderer.take()
	rec := httptest.NewRecorder()
	c.site.App.Echo.ServeHTTP(rec, req)

	for _, cookie := range rec.Result().Cookies() {
		if cookie.MaxAge < 0 || cookie.Value == "" {
			delete(c.cookies, cookie.Name)
			continue
		}
		c.cookies[cookie.Name] = cookie
	}

	resp := &Response{ResponseRecorder: rec}
	if rendered := c.site.renderer.take(); rendered != nil {
		resp.Template = rendered.Template
		resp.View = rendered.View
	}
	return resp
}

// HasCookie reports whether the client currently holds a cookie called name.
func (c *Client) HasCookie(name string) bool {
	_, ok := c.cookies[name]
	return ok
}

// Response is a recorded response plus the page it rendered, if any.
type Response struct {
	*httptest.ResponseRecorder

	Template string
	View     *contract.View
}

func (r *Response) Location() string {
	return r.Header().Get(echo.HeaderLocation)
}

// Page returns the page context handed to the template, or nil.
func (r *Response) Page() any {
	if r.View == nil {
		return nil
	}
	return r.View.Page
}
