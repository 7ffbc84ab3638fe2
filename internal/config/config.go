package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Application
	AppName    string
	AppEnv     string
	AppURL     string
	Port       string
	AppTagline string

	// Backend API
	APIBaseURL string

	// Listing
	ListingPageSize int
	SearchDebounce  time.Duration
	FeaturedLimit   int

	// Session
	AuthCookieTTL time.Duration
	SecureCookies bool

	// OAuth
	GoogleClientID     string
	GoogleClientSecret string

	// Observability (optional)
	SentryDSN string

	// Storage (optional, S3-compatible: MinIO, AWS S3, Cloudflare R2, etc.)
	// Image upload is disabled when S3Bucket is empty.
	S3Region       string
	S3Bucket       string
	S3AccessKey    string
	S3SecretKey    string
	S3Endpoint     string
	UploadMaxBytes int64
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := &Config{
		// Application
		AppName:    envString("APP_NAME", "Artshowcase"),
		AppEnv:     envRequired("APP_ENV"), // Required: 'development' or 'production'
		AppURL:     envRequired("APP_URL"), // Required: base URL for OAuth redirects and sitemap
		Port:       envString("PORT", "8090"),
		AppTagline: envString("APP_TAGLINE", "Discover amazing artworks from talented artists around the world"),

		// Backend API
		APIBaseURL: envString("API_BASE_URL", "http://localhost:5000"),

		// Listing
		ListingPageSize: envInt("LISTING_PAGE_SIZE", 12),
		SearchDebounce:  envDuration("SEARCH_DEBOUNCE", 300*time.Millisecond),
		FeaturedLimit:   envInt("FEATURED_LIMIT", 6),

		// Session
		AuthCookieTTL: envDuration("AUTH_COOKIE_TTL", 168*time.Hour), // 7 days
		SecureCookies: envBool("SECURE_COOKIES", envString("APP_ENV", "development") == "production"),

		// OAuth
		GoogleClientID:     envString("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: envString("GOOGLE_CLIENT_SECRET", ""),

		// Observability
		SentryDSN: envString("SENTRY_DSN", ""),

		// Storage
		S3Region:       envString("S3_REGION", "us-east-1"),
		S3Bucket:       envString("S3_BUCKET", ""),
		S3AccessKey:    envString("S3_ACCESS_KEY", ""),
		S3SecretKey:    envString("S3_SECRET_KEY", ""),
		S3Endpoint:     envString("S3_ENDPOINT", ""),
		UploadMaxBytes: int64(envInt("UPLOAD_MAX_BYTES", 5<<20)),
	}

	if cfg.IsProduction() {
		validateProduction(cfg)
	}

	return cfg
}

// validateProduction refuses to start a production deployment that would
// talk to the backend in clear text.
func validateProduction(cfg *Config) {
	if !strings.HasPrefix(cfg.APIBaseURL, "https://") {
		slog.Error("production deployment requires an https API_BASE_URL",
			"api_base_url", cfg.APIBaseURL,
			"hint", "set APP_ENV=development for local testing against a plain http backend")
		os.Exit(1)
	}
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		slog.Warn("config invalid int, using default", "key", key, "value", v, "default", def)
		return def
	}
	return n
}

func envBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("config invalid bool, using default", "key", key, "value", v, "default", def)
		return def
	}
	return b
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

func envRequired(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	slog.Error("config required env var missing", "key", key)
	os.Exit(1)
	return ""
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// UploadsEnabled reports whether artwork images can be uploaded to object
// storage instead of being referenced by URL only.
func (c *Config) UploadsEnabled() bool {
	return c.S3Bucket != ""
}

// GoogleEnabled reports whether Google sign-in is configured.
func (c *Config) GoogleEnabled() bool {
	return c.GoogleClientID != "" && c.GoogleClientSecret != ""
}

// Sanitized returns a copy of the config with only public/safe fields.
// Safe to expose in ctx, templates and client-facing contexts.
func (c *Config) Sanitized() *Config {
	return &Config{
		AppName:    c.AppName,
		AppEnv:     c.AppEnv,
		AppURL:     c.AppURL,
		Port:       c.Port,
		AppTagline: c.AppTagline,

		ListingPageSize: c.ListingPageSize,
		SearchDebounce:  c.SearchDebounce,
		FeaturedLimit:   c.FeaturedLimit,

		SecureCookies: c.SecureCookies,

		GoogleClientID: c.GoogleClientID,

		S3Bucket:       c.S3Bucket,
		S3Endpoint:     c.S3Endpoint, // Needed for CSP img-src
		UploadMaxBytes: c.UploadMaxBytes,
	}
}
