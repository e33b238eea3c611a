package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mapEnv(vals map[string]string) func(string) string {
	return func(key string) string {
		return vals[key]
	}
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv(SiteNews, mapEnv(nil))
	require.NoError(t, err)

	assert.Equal(t, ":8000", cfg.Addr)
	assert.Equal(t, "news.db", cfg.DatabasePath)
	assert.Equal(t, "/", cfg.LoginRedirect)
	assert.Equal(t, 10, cfg.NewsPerPage)
	assert.Equal(t, 14*24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "sessionid", cfg.SessionCookie)
	assert.True(t, cfg.CSRFEnabled)
	assert.NotEmpty(t, cfg.SessionSecret)
	assert.False(t, cfg.IsProduction())
}

func TestFromEnvNotes(t *testing.T) {
	cfg, err := FromEnv(SiteNotes, mapEnv(map[string]string{
		"ADDR":           ":9000",
		"DATABASE_PATH":  "/tmp/notes.db",
		"SESSION_TTL":    "2h",
		"CSRF_ENABLED":   "false",
		"SESSION_SECRET": "0123456789abcdef",
	}))
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, "/tmp/notes.db", cfg.DatabasePath)
	assert.Equal(t, "/notes/", cfg.LoginRedirect)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.False(t, cfg.CSRFEnabled)
	assert.Equal(t, "0123456789abcdef", cfg.SessionSecret)
}

func TestFromEnvRejectsBadValues(t *testing.T) {
	cases := map[string]map[string]string{
		"bad ttl":       {"SESSION_TTL": "forever"},
		"bad per page":  {"NEWS_PER_PAGE": "ten"},
		"zero per page": {"NEWS_PER_PAGE": "0"},
		"bad csrf":      {"CSRF_ENABLED": "maybe"},
		"prod secret":   {"GO_ENV": EnvProduction},
	}

	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := FromEnv(SiteNews, mapEnv(env))
			assert.Error(t, err)
		})
	}
}

func TestFromEnvUnknownSite(t *testing.T) {
	_, err := FromEnv(Site("blog"), mapEnv(nil))
	assert.Error(t, err)
}
