package contract

import "newsnotes/cmd/internal/utils/apierror"

// FormErrors maps a form field to the problems found with it.
type FormErrors map[string][]string

func newFormErrors(serr *apierror.StructuredError) FormErrors {
	if serr == nil {
		return FormErrors{}
	}
	return FormErrors(serr.Errors)
}

// Field returns the problems reported for name.
func (e FormErrors) Field(name string) []string {
	return e[name]
}

// NonField returns the problems not tied to any single field.
func (e FormErrors) NonField() []string {
	return e[apierror.NonFieldErrors]
}

func (e FormErrors) Any() bool {
	return len(e) > 0
}

// ErrorPage is rendered for 404s, 500s and anything else that is not a form.
type ErrorPage struct {
	Status  int
	Message string
}
