package routes_test

import (
	"net/http"
	"testing"

	"newsnotes/cmd/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestNotesPagesAvailableForAnonymous(t *testing.T) {
	f := newNotesFixture(t)

	for _, url := range []string{"/", "/auth/login/", "/auth/logout/", "/auth/signup/"} {
		t.Run(url, func(t *testing.T) {
			assert.Equal(t, http.StatusOK, f.site.Anonymous().Get(url).Code)
		})
	}
}

func TestNotePagesAvailabilityForDifferentUsers(t *testing.T) {
	f := newNotesFixture(t)
	assert.Equal(t, "zagolovok", f.note.Slug)

	cases := []struct {
		url    string
		client *testutil.Client
		status int
	}{
		{"/edit/zagolovok/", f.site.ForceLogin(t, f.author), http.StatusOK},
		{"/edit/zagolovok/", f.site.ForceLogin(t, f.reader), http.StatusNotFound},
		{"/delete/zagolovok/", f.site.ForceLogin(t, f.author), http.StatusOK},
		{"/delete/zagolovok/", f.site.ForceLogin(t, f.reader), http.StatusNotFound},
		{"/note/zagolovok/", f.site.ForceLogin(t, f.author), http.StatusOK},
		{"/note/zagolovok/", f.site.ForceLogin(t, f.reader), http.StatusNotFound},
		{"/note/no-such-note/", f.site.ForceLogin(t, f.author), http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.url, func(t *testing.T) {
			assert.Equal(t, tc.status, tc.client.Get(tc.url).Code)
		})
	}
}

func TestNotePagesRedirectAnonymous(t *testing.T) {
	f := newNotesFixture(t)

	urls := []string{
		"/edit/zagolovok/",
		"/delete/zagolovok/",
		"/note/zagolovok/",
		"/notes/",
		"/done/",
		"/add/",
	}

	for _, url := range urls {
		t.Run(url, func(t *testing.T) {
			resp := f.site.Anonymous().Get(url)
			assert.Equal(t, http.StatusFound, resp.Code)
			assert.Equal(t, "/auth/login/?next="+url, resp.Location())
		})
	}
}

func TestListAddDoneAvailableForUser(t *testing.T) {
	f := newNotesFixture(t)
	client := f.site.ForceLogin(t, f.reader)

	for _, url := range []string{"/notes/", "/done/", "/add/"} {
		t.Run(url, func(t *testing.T) {
			assert.Equal(t, http.StatusOK, client.Get(url).Code)
		})
	}
}
