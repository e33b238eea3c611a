package utils

import (
	"net/url"
	"reflect"
	"strings"
	"time"
)

const (
	// ContextUserKey holds the authenticated *entity.User, if any.
	ContextUserKey = "user"
	// ContextSessionKey holds the ID of the session the user came in with.
	ContextSessionKey = "session"
)

func FormatEpoch(millis int64) string {
	return time.UnixMilli(millis).
		UTC().
		Format(time.RFC3339)
}

// FormatDate renders the calendar date of an epoch in millis.
func FormatDate(millis int64) string {
	return time.UnixMilli(millis).
		UTC().
		Format("02.01.2006")
}

func NowUTC() int64 {
	return time.Now().
		UTC().
		UnixMilli()
}

// LoginRedirectURL builds "<loginURL>?next=<next>", leaving slashes in
// next unescaped so the target stays readable. Spaces become %20, not '+'.
func LoginRedirectURL(loginURL, next string) string {
	escaped := strings.NewReplacer("%2F", "/", "+", "%20").Replace(url.QueryEscape(next))
	return loginURL + "?next=" + escaped
}

// IsLocalPath reports whether next is safe to redirect to after login:
// an absolute path on this host, not a scheme-relative URL.
func IsLocalPath(next string) bool {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, `/\`) {
		return false
	}

	u, err := url.Parse(next)
	if err != nil {
		return false
	}
	return u.Scheme == "" && u.Host == ""
}

func Sanitize(o any) {
	v := reflect.ValueOf(o)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		panic("sanitize: expected pointer to struct")
	}

	v = v.Elem()
	if v.Kind() != reflect.Struct {
		panic("sanitize: expected struct")
	}

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		if !field.CanSet() {
			continue
		}

		switch field.Kind() {
		case reflect.String:
			if v.Type().Field(i).Tag.Get("sanitize") == "-" {
				continue
			}
			field.SetString(sanitizeString(field.String()))

		case reflect.Slice:
			if field.Type().Elem().Kind() == reflect.String {
				for j := 0; j < field.Len(); j++ {
					field.Index(j).SetString(sanitizeString(field.Index(j).String()))
				}
			}
		}
	}
}

func sanitizeString(s string) string {
	return strings.TrimSpace(s)
}
