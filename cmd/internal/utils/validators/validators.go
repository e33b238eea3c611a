package validators

import (
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

// BadWordsWarning is reported when a comment contains one of BadWords.
const BadWordsWarning = "Не ругайтесь!"

// BadWords may not appear anywhere in comment text, in any letter case.
var BadWords = []string{
	"редиска",
	"негодяй",
}

var (
	usernameRegex = regexp.MustCompile(`^[\p{L}\p{N}@.+\-_]+$`)
	slugRegex     = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)
)

// Register installs the custom tags used by the request forms.
func Register(validate *validator.Validate) {
	_ = validate.RegisterValidation("nobadwords", NoBadWords)
	_ = validate.RegisterValidation("username", Username)
	_ = validate.RegisterValidation("notnumeric", NotNumeric)
	_ = validate.RegisterValidation("slug", Slug)
}

// New returns a validator with every custom tag registered.
func New() *validator.Validate {
	validate := validator.New()
	Register(validate)
	return validate
}

// ContainsBadWord reports whether text contains any of BadWords.
func ContainsBadWord(text string) bool {
	lower := strings.ToLower(text)
	for _, word := range BadWords {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

func NoBadWords(fl validator.FieldLevel) bool {
	val, ok := stringField(fl)
	if !ok {
		return false
	}
	return !ContainsBadWord(val)
}

func Username(fl validator.FieldLevel) bool {
	val, ok := stringField(fl)
	if !ok {
		return false
	}
	return usernameRegex.MatchString(val)
}

// NotNumeric rejects values made only of digits.
func NotNumeric(fl validator.FieldLevel) bool {
	val, ok := stringField(fl)
	if !ok {
		return false
	}

	for _, ch := range val {
		if !unicode.IsDigit(ch) {
			return true
		}
	}
	return false
}

func Slug(fl validator.FieldLevel) bool {
	val, ok := stringField(fl)
	if !ok {
		return false
	}
	return slugRegex.MatchString(val)
}

func stringField(fl validator.FieldLevel) (string, bool) {
	field := fl.Field()
	if field.Kind() != reflect.String {
		log.Warnf("string validator '%s' applied to non-string type: %s", fl.GetTag(), field.Kind().String())
		return "", false
	}
	return field.String(), true
}
