package contract

import "newsnotes/cmd/internal/utils/apierror"

type SignupRequest struct {
	Username  string `form:"username" validate:"required,max=150,username"`
	Password1 string `form:"password1" sanitize:"-" validate:"required,min=8,max=128,notnumeric"`
	Password2 string `form:"password2" sanitize:"-" validate:"required,eqfield=Password1"`
}

type LoginRequest struct {
	Username string `form:"username" validate:"required,max=150"`
	Password string `form:"password" sanitize:"-" validate:"required,max=128"`
	Next     string `form:"next" query:"next"`
}

type UserResponse struct {
	ID        int64
	Username  string
	CreatedAt string
}

type SignupForm struct {
	Username string
	Errors   FormErrors
}

func NewSignupForm(req *SignupRequest, serr *apierror.StructuredError) *SignupForm {
	form := &SignupForm{Errors: newFormErrors(serr)}
	if req != nil {
		form.Username = req.Username
	}
	return form
}

type LoginForm struct {
	Username string
	Next     string
	Errors   FormErrors
}

func NewLoginForm(req *LoginRequest, serr *apierror.StructuredError) *LoginForm {
	form := &LoginForm{Errors: newFormErrors(serr)}
	if req != nil {
		form.Username = req.Username
		form.Next = req.Next
	}
	return form
}

type SignupPage struct {
	Form *SignupForm
}

type LoginPage struct {
	Form *LoginForm
}

// View wraps every rendered page with the request-scoped bits the layout needs.
type View struct {
	Site      string
	User      *UserResponse
	CSRFToken string
	Page      any
}
