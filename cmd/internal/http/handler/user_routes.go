package handler

import (
	"net/http"
	"newsnotes/cmd/internal/contract"
	"newsnotes/cmd/internal/domain/entity"
	"newsnotes/cmd/internal/http/render"
	"newsnotes/cmd/internal/utils"
	"newsnotes/cmd/internal/utils/apierror"
	"time"

	"github.com/labstack/echo/v4"
)

type UserService interface {
	CreateUser(req *contract.SignupRequest) (*entity.User, apierror.ErrorResponse)
	Login(req *contract.LoginRequest) (string, apierror.ErrorResponse)
	Logout(sessionID string) apierror.ErrorResponse
}

// SessionCookie describes the cookie carrying the session token.
type SessionCookie struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

type DefaultUserRoute struct {
	*Pages
	UserService UserService
	Cookie      SessionCookie
	LoginURL    string

	// LoginRedirect is used when a login form carries no usable 'next'.
	LoginRedirect string
}

func NewUserDefault(pages *Pages, userService UserService, cookie SessionCookie, loginURL, loginRedirect string) *DefaultUserRoute {
	return &DefaultUserRoute{
		Pages:         pages,
		UserService:   userService,
		Cookie:        cookie,
		LoginURL:      loginURL,
		LoginRedirect: loginRedirect,
	}
}

func (u *DefaultUserRoute) SignupForm(c echo.Context) error {
	page := &contract.SignupPage{Form: contract.NewSignupForm(nil, nil)}
	return u.Render(c, http.StatusOK, render.Signup, page)
}

func (u *DefaultUserRoute) CreateUser(c echo.Context) error {
	var req contract.SignupRequest
	if err := c.Bind(&req); err != nil {
		return u.RenderError(c, apierror.MalformedBodyError)
	}

	if _, apierr := u.UserService.CreateUser(&req); apierr != nil {
		return u.renderForm(c, apierr, render.Signup, func(serr *apierror.StructuredError) any {
			return &contract.SignupPage{Form: contract.NewSignupForm(&req, serr)}
		})
	}
	return c.Redirect(http.StatusFound, u.LoginURL)
}

func (u *DefaultUserRoute) LoginForm(c echo.Context) error {
	req := &contract.LoginRequest{Next: c.QueryParam("next")}
	page := &contract.LoginPage{Form: contract.NewLoginForm(req, nil)}
	return u.Render(c, http.StatusOK, render.Login, page)
}

func (u *DefaultUserRoute) CreateLogin(c echo.Context) error {
	var req contract.LoginRequest
	if err := c.Bind(&req); err != nil {
		return u.RenderError(c, apierror.MalformedBodyError)
	}

	if req.Next == "" {
		req.Next = c.QueryParam("next")
	}

	token, apierr := u.UserService.Login(&req)
	if apierr != nil {
		return u.renderForm(c, apierr, render.Login, func(serr *apierror.StructuredError) any {
			return &contract.LoginPage{Form: contract.NewLoginForm(&req, serr)}
		})
	}

	// Logging in on top of an existing session replaces it
	u.endSession(c)
	c.SetCookie(u.newCookie(token, int(u.Cookie.TTL.Seconds())))

	target := u.LoginRedirect
	if utils.IsLocalPath(req.Next) {
		target = req.Next
	}
	return c.Redirect(http.StatusFound, target)
}

func (u *DefaultUserRoute) Logout(c echo.Context) error {
	u.endSession(c)
	c.SetCookie(u.newCookie("", -1))
	c.Set(utils.ContextUserKey, nil)
	return u.Render(c, http.StatusOK, render.LoggedOut, nil)
}

func (u *DefaultUserRoute) endSession(c echo.Context) {
	sessionID, _ := c.Get(utils.ContextSessionKey).(string)
	if sessionID == "" {
		return
	}
	// A failure here is already logged and the cookie is dropped regardless
	_ = u.UserService.Logout(sessionID)
}

func (u *DefaultUserRoute) newCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     u.Cookie.Name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   u.Cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}
