package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"newsnotes/cmd/internal/utils/validators"
	"strings"

	"github.com/go-playground/validator/v10"
)

// NonFieldErrors is the key under which errors not tied to a single form
// field are collected.
const NonFieldErrors = "__all__"

// ErrorResponse abstracts all error responses to the user.
//
// This interface does not implement `error`, since its only purpose
// is to be rendered back and not for logging circumstances.
type ErrorResponse interface {
	// Code is the HTTP status code to be returned.
	Code() int
}

type APIError struct {
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (a *APIError) Code() int {
	return a.Status
}

// StructuredError carries per-field form errors.
type StructuredError struct {
	Errors map[string][]string `json:"errors"`
	Status int                 `json:"-"`
}

func (s *StructuredError) Code() int {
	return s.Status
}

func (s *StructuredError) Add(field, problem string) {
	s.Errors[field] = append(s.Errors[field], problem)
}

func (s *StructuredError) Empty() bool {
	return len(s.Errors) == 0
}

var (
	MalformedBodyError  = NewSimple(400, "Malformed request body")
	InternalServerError = NewSimple(500, "Internal server error")
	UnauthorizedError   = NewSimple(401, "Authentication credentials were not provided")

	NotFoundError = NewSimple(404, "Resource not found")
)

/*
 * Used for authentications
 */
const (
	UsernameTakenMessage    = "A user with that username already exists."
	PasswordMismatchMessage = "The two password fields didn't match."
	InvalidLoginMessage     = "Please enter a correct username and password. Note that both fields may be case-sensitive."
)

func FromValidationError(err error) *StructuredError {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return nil
	}

	problems := NewStructured(http.StatusBadRequest)
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())

		switch fe.Tag() {
		case "required":
			problems.Add(field, "This field is required.")
		case "min":
			problems.Add(field, "Ensure this value has at least "+fe.Param()+" characters.")
		case "max":
			problems.Add(field, "Ensure this value has at most "+fe.Param()+" characters.")
		case "nobadwords":
			problems.Add(field, validators.BadWordsWarning)
		case "username":
			problems.Add(field, "Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters.")
		case "notnumeric":
			problems.Add(field, "This password is entirely numeric.")
		case "eqfield":
			problems.Add(field, PasswordMismatchMessage)
		case "slug":
			problems.Add(field, "Enter a valid slug consisting of letters, numbers, underscores or hyphens.")

		default:
			problems.Add(field, "Invalid value provided.")
		}
	}
	return problems
}

func NewSimple(status int, msg string, args ...any) *APIError {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &APIError{Status: status, Message: msg}
}

func NewStructured(code int) *StructuredError {
	return &StructuredError{
		Errors: make(map[string][]string),
		Status: code,
	}
}

// NewFieldError builds a form error holding a single problem for field.
func NewFieldError(field, problem string) *StructuredError {
	serr := NewStructured(http.StatusBadRequest)
	serr.Add(field, problem)
	return serr
}
