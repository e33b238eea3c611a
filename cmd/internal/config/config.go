package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

type Site string

const (
	SiteNews  Site = "news"
	SiteNotes Site = "notes"
)

const (
	EnvProduction = "production"

	LoginURL  = "/auth/login/"
	LogoutURL = "/auth/logout/"
	SignupURL = "/auth/signup/"

	defaultRegion        = "us-east-2"
	defaultNewsPerPage   = 10
	defaultSessionCookie = "sessionid"
	defaultSessionTTL    = 14 * 24 * time.Hour
)

type Config struct {
	Site Site
	Env  string

	Addr         string
	DatabasePath string

	SessionSecret string
	SessionTTL    time.Duration
	SessionCookie string
	CSRFEnabled   bool

	// LoginRedirect is where a successful login lands when no 'next' is given.
	LoginRedirect string

	NewsPerPage  int
	NewsSeedFile string

	SSMPrefix string
	AWSRegion string
}

func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// Load fills the process environment (from .env locally, from SSM Parameter
// Store in production) and then reads the configuration for site from it.
func Load(ctx context.Context, site Site) (*Config, error) {
	if os.Getenv("GO_ENV") == EnvProduction {
		prefix := envOr(os.Getenv, "SSM_PREFIX", "/"+string(site)+"/prod/")
		region := envOr(os.Getenv, "AWS_REGION", defaultRegion)
		if err := loadProdEnv(ctx, prefix, region); err != nil {
			return nil, err
		}
	} else {
		err := godotenv.Load()
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load .env: %w", err)
		}
	}
	return FromEnv(site, os.Getenv)
}

// FromEnv builds the configuration for site out of getenv lookups.
func FromEnv(site Site, getenv func(string) string) (*Config, error) {
	cfg := &Config{
		Site:          site,
		Env:           envOr(getenv, "GO_ENV", "development"),
		DatabasePath:  envOr(getenv, "DATABASE_PATH", string(site)+".db"),
		SessionSecret: getenv("SESSION_SECRET"),
		SessionCookie: envOr(getenv, "SESSION_COOKIE", defaultSessionCookie),
		NewsSeedFile:  getenv("NEWS_SEED_FILE"),
		SSMPrefix:     envOr(getenv, "SSM_PREFIX", "/"+string(site)+"/prod/"),
		AWSRegion:     envOr(getenv, "AWS_REGION", defaultRegion),
	}

	switch site {
	case SiteNews:
		cfg.Addr = envOr(getenv, "ADDR", ":8000")
		cfg.LoginRedirect = "/"
	case SiteNotes:
		cfg.Addr = envOr(getenv, "ADDR", ":8001")
		cfg.LoginRedirect = "/notes/"
	default:
		return nil, fmt.Errorf("unknown site %q", site)
	}

	var err error
	if cfg.SessionTTL, err = durationOr(getenv, "SESSION_TTL", defaultSessionTTL); err != nil {
		return nil, err
	}

	if cfg.NewsPerPage, err = intOr(getenv, "NEWS_PER_PAGE", defaultNewsPerPage); err != nil {
		return nil, err
	}

	if cfg.CSRFEnabled, err = boolOr(getenv, "CSRF_ENABLED", true); err != nil {
		return nil, err
	}

	if cfg.NewsPerPage <= 0 {
		return nil, fmt.Errorf("NEWS_PER_PAGE must be positive, got %d", cfg.NewsPerPage)
	}

	if cfg.SessionSecret == "" {
		if cfg.IsProduction() {
			return nil, errors.New("SESSION_SECRET is required in production")
		}
		log.Warn("SESSION_SECRET is not set, using an insecure development secret")
		cfg.SessionSecret = "insecure-development-secret-change-me"
	}
	return cfg, nil
}

// loadProdEnv exports every parameter under prefix as an environment variable.
func loadProdEnv(ctx context.Context, prefix, region string) error {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return fmt.Errorf("unable to load SDK config: %w", err)
	}

	client := ssm.NewFromConfig(cfg)
	paginator := ssm.NewGetParametersByPathPaginator(client, &ssm.GetParametersByPathInput{
		Path:           aws.String(prefix),
		WithDecryption: aws.Bool(true),
		Recursive:      aws.Bool(true),
	})

	count := 0
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return fmt.Errorf("unable to load prod environment: %w", err)
		}

		for _, param := range out.Parameters {
			key := strings.TrimPrefix(aws.ToString(param.Name), prefix)
			if err := os.Setenv(key, aws.ToString(param.Value)); err != nil {
				return fmt.Errorf("unable to set environment variable %s: %w", key, err)
			}
			count++
		}
	}
	log.Debugf("loaded %d prod environment variables", count)
	return nil
}

func envOr(getenv func(string) string, key, fallback string) string {
	if val := strings.TrimSpace(getenv(key)); val != "" {
		return val
	}
	return fallback
}

func intOr(getenv func(string) string, key string, fallback int) (int, error) {
	raw := strings.TrimSpace(getenv(key))
	if raw == "" {
		return fallback, nil
	}

	val, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return val, nil
}

func boolOr(getenv func(string) string, key string, fallback bool) (bool, error) {
	raw := strings.TrimSpace(getenv(key))
	if raw == "" {
		return fallback, nil
	}

	val, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return val, nil
}

func durationOr(getenv func(string) string, key string, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(getenv(key))
	if raw == "" {
		return fallback, nil
	}

	val, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return val, nil
}
