package handler

import (
	"errors"
	"net/http"
	"newsnotes/cmd/internal/config"
	"newsnotes/cmd/internal/contract"
	"newsnotes/cmd/internal/http/render"
	"newsnotes/cmd/internal/service"
	"newsnotes/cmd/internal/utils"
	"newsnotes/cmd/internal/utils/apierror"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

// Pages renders page templates inside the site layout.
type Pages struct {
	Site config.Site
}

func NewPages(site config.Site) *Pages {
	return &Pages{Site: site}
}

func (p *Pages) Render(c echo.Context, status int, name string, page any) error {
	return c.Render(status, name, p.view(c, page))
}

// RenderError shows apierr as an error page with its own status code.
func (p *Pages) RenderError(c echo.Context, apierr apierror.ErrorResponse) error {
	status := apierr.Code()
	msg := http.StatusText(status)
	if simple, ok := apierr.(*apierror.APIError); ok {
		msg = simple.Message
	}
	return p.Render(c, status, render.Error, &contract.ErrorPage{Status: status, Message: msg})
}

// HTTPErrorHandler replaces echo's JSON error bodies with the error page.
func (p *Pages) HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	msg := http.StatusText(status)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		msg = http.StatusText(status)
		if text, ok := he.Message.(string); ok && text != "" {
			msg = text
		}
	}

	if status >= http.StatusInternalServerError {
		log.Errorf("%s %s: %v", c.Request().Method, c.Request().URL, err)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = p.Render(c, status, render.Error, &contract.ErrorPage{Status: status, Message: msg})
	}

	if err != nil {
		log.Errorf("failed to render error page: %v", err)
	}
}

func (p *Pages) view(c echo.Context, page any) *contract.View {
	token, _ := c.Get(middleware.DefaultCSRFConfig.ContextKey).(string)
	return &contract.View{
		Site:      string(p.Site),
		User:      service.ToUserResponse(utils.CurrentUser(c)),
		CSRFToken: token,
		Page:      page,
	}
}

// renderForm re-renders a form page with 200 when apierr is a form error,
// and falls back to the error page otherwise.
func (p *Pages) renderForm(c echo.Context, apierr apierror.ErrorResponse, name string, page func(*apierror.StructuredError) any) error {
	if serr, ok := apierr.(*apierror.StructuredError); ok {
		return p.Render(c, http.StatusOK, name, page(serr))
	}
	return p.RenderError(c, apierr)
}

func HealthCheck(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// parseID reads a positive integer path parameter. Anything else is a 404,
// the same as a route that does not match.
func parseID(c echo.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
