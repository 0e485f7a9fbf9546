package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"hostup.co.in/hostup-web/internal/validate"
)

const (
	envPrefix = "HOSTUP_"

	defaultEnvFile         = ".env"
	defaultPort            = "8080"
	defaultEnvironment     = "local"
	defaultBaseURL         = "http://localhost:8080"
	defaultTemplatesDir    = "templates"
	defaultPublicDir       = "public"
	defaultContentDir      = "content"
	defaultLogLevel        = "info"
	defaultBusinessName    = "HostUp"
	defaultWhatsAppNumber  = "919819726493"
	defaultSupportNumbers  = "919819726493,919317210055"
	defaultContactEmail    = "hostup.co.in@gmail.com"
	defaultChatLatency     = 500 * time.Millisecond
	defaultNoticeDismiss   = 5 * time.Second
	defaultReadTimeout     = 15 * time.Second
	defaultWriteTimeout    = 15 * time.Second
	defaultIdleTimeout     = 60 * time.Second
	defaultContentCacheTTL = 5 * time.Minute

	minSigningKeyLen = 32
)

// Config captures all runtime configuration organised by concern.
type Config struct {
	Server    ServerConfig
	Paths     PathsConfig
	Session   SessionConfig
	Logging   LoggingConfig
	Business  BusinessConfig
	Chat      ChatConfig
	UI        UIConfig
	Analytics AnalyticsConfig
	Content   ContentConfig
}

// ServerConfig configures HTTP server parameters.
type ServerConfig struct {
	Port         string
	Environment  string
	Dev          bool
	BaseURL      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// Addr returns the listen address for the configured port.
func (s ServerConfig) Addr() string { return ":" + s.Port }

// Production reports whether the service runs with production settings.
func (s ServerConfig) Production() bool {
	switch strings.ToLower(s.Environment) {
	case "prod", "production":
		return true
	}
	return false
}

// PathsConfig locates templates and static assets on disk.
type PathsConfig struct {
	Templates string
	Public    string
}

// SessionConfig holds the cookie keys. An empty signing key means an
// ephemeral per-process key, which is only accepted outside production.
// BlockKey is optional and turns on cookie encryption.
type SessionConfig struct {
	SigningKey string
	BlockKey   string
}

type LoggingConfig struct {
	Level string
}

// BusinessConfig holds the contact points shown on the site and used in
// deep links.
type BusinessConfig struct {
	Name           string
	WhatsAppNumber string
	SupportNumbers []string
	ContactEmail   string
}

type ChatConfig struct {
	Latency time.Duration
}

// UIConfig carries client-side timings rendered into templates.
type UIConfig struct {
	NoticeDismiss time.Duration
}

type AnalyticsConfig struct {
	GAMeasurementID string
}

type ContentConfig struct {
	Dir      string
	CacheTTL time.Duration
}

// ValidationError is returned when configuration fields are missing or invalid.
type ValidationError struct {
	fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: missing or invalid fields [%s]", strings.Join(e.fields, ", "))
}

// Fields returns a copy of the missing/invalid field list.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.fields))
	copy(out, e.fields)
	return out
}

// Option customises Load behaviour.
type Option func(*loaderOptions)

type loaderOptions struct {
	envFile      string
	envMap       map[string]string
	useSystemEnv bool
}

// WithEnvFile overrides the .env file path. An empty path disables it.
func WithEnvFile(path string) Option {
	return func(o *loaderOptions) {
		o.envFile = path
	}
}

// WithEnvMap injects explicit values that take precedence over the process
// environment.
func WithEnvMap(values map[string]string) Option {
	return func(o *loaderOptions) {
		o.envMap = values
	}
}

// WithoutSystemEnv disables reading the process environment.
func WithoutSystemEnv() Option {
	return func(o *loaderOptions) {
		o.useSystemEnv = false
	}
}

// Load assembles the configuration from defaults, the .env file, the process
// environment and explicit overrides, in increasing order of precedence.
func Load(ctx context.Context, opts ...Option) (Config, error) {
	options := loaderOptions{
		envFile:      defaultEnvFile,
		useSystemEnv: true,
	}
	for _, opt := range opts {
		opt(&options)
	}
	if err := ctx.Err(); err != nil {
		return Config{}, err
	}

	dotEnvValues, err := loadDotEnv(options.envFile)
	if err != nil {
		return Config{}, err
	}

	lookup := func(key string) (string, bool) {
		key = envPrefix + key
		if options.envMap != nil {
			if value, ok := options.envMap[key]; ok {
				return value, true
			}
		}
		if options.useSystemEnv {
			if value, ok := os.LookupEnv(key); ok {
				return value, true
			}
		}
		if value, ok := dotEnvValues[key]; ok {
			return value, true
		}
		return "", false
	}

	var invalid []string
	duration := func(key, field string, fallback time.Duration) time.Duration {
		d, ok := durationWithDefault(lookup, key, fallback)
		if !ok {
			invalid = append(invalid, field)
		}
		return d
	}

	cfg := Config{
		Server: ServerConfig{
			Port:         stringWithDefault(lookup, "PORT", stringWithDefault(portLookup(options), "PORT", defaultPort)),
			Environment:  strings.ToLower(stringWithDefault(lookup, "ENV", defaultEnvironment)),
			Dev:          boolWithDefault(lookup, "DEV", false),
			BaseURL:      strings.TrimRight(stringWithDefault(lookup, "BASE_URL", defaultBaseURL), "/"),
			ReadTimeout:  duration("READ_TIMEOUT", "Server.ReadTimeout", defaultReadTimeout),
			WriteTimeout: duration("WRITE_TIMEOUT", "Server.WriteTimeout", defaultWriteTimeout),
			IdleTimeout:  duration("IDLE_TIMEOUT", "Server.IdleTimeout", defaultIdleTimeout),
		},
		Paths: PathsConfig{
			Templates: stringWithDefault(lookup, "TEMPLATES_DIR", defaultTemplatesDir),
			Public:    stringWithDefault(lookup, "PUBLIC_DIR", defaultPublicDir),
		},
		Session: SessionConfig{
			SigningKey: stringWithDefault(lookup, "SESSION_SIGNING_KEY", ""),
			BlockKey:   stringWithDefault(lookup, "SESSION_BLOCK_KEY", ""),
		},
		Logging: LoggingConfig{
			Level: strings.ToLower(stringWithDefault(lookup, "LOG_LEVEL", defaultLogLevel)),
		},
		Business: BusinessConfig{
			Name:           stringWithDefault(lookup, "BUSINESS_NAME", defaultBusinessName),
			WhatsAppNumber: digitsOnly(stringWithDefault(lookup, "WHATSAPP_NUMBER", defaultWhatsAppNumber)),
			SupportNumbers: csvWithDefault(lookup, "SUPPORT_NUMBERS", defaultSupportNumbers),
			ContactEmail:   stringWithDefault(lookup, "CONTACT_EMAIL", defaultContactEmail),
		},
		Chat: ChatConfig{
			Latency: duration("CHAT_LATENCY", "Chat.Latency", defaultChatLatency),
		},
		UI: UIConfig{
			NoticeDismiss: duration("NOTICE_DISMISS", "UI.NoticeDismiss", defaultNoticeDismiss),
		},
		Analytics: AnalyticsConfig{
			GAMeasurementID: stringWithDefault(lookup, "GA_MEASUREMENT_ID", ""),
		},
		Content: ContentConfig{
			Dir:      stringWithDefault(lookup, "CONTENT_DIR", defaultContentDir),
			CacheTTL: duration("CONTENT_CACHE_TTL", "Content.CacheTTL", defaultContentCacheTTL),
		},
	}
	for i, n := range cfg.Business.SupportNumbers {
		cfg.Business.SupportNumbers[i] = digitsOnly(n)
	}

	if err := validateConfig(cfg, invalid); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// portLookup resolves the unprefixed PORT set by container platforms.
func portLookup(o loaderOptions) func(string) (string, bool) {
	return func(key string) (string, bool) {
		if v, ok := o.envMap[key]; ok {
			return v, true
		}
		if o.useSystemEnv {
			return os.LookupEnv(key)
		}
		return "", false
	}
}

func validateConfig(cfg Config, invalid []string) error {
	missing := append([]string(nil), invalid...)

	if p, err := strconv.Atoi(cfg.Server.Port); err != nil || p <= 0 || p > 65535 {
		missing = append(missing, "Server.Port")
	}
	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		missing = append(missing, "Logging.Level")
	}
	if len(cfg.Business.WhatsAppNumber) < validate.MinPhoneDigits {
		missing = append(missing, "Business.WhatsAppNumber")
	}
	if !validate.Email(cfg.Business.ContactEmail) {
		missing = append(missing, "Business.ContactEmail")
	}
	if cfg.Chat.Latency < 0 {
		missing = append(missing, "Chat.Latency")
	}
	if cfg.UI.NoticeDismiss <= 0 {
		missing = append(missing, "UI.NoticeDismiss")
	}
	if cfg.Server.Production() && len(cfg.Session.SigningKey) < minSigningKeyLen {
		missing = append(missing, "Session.SigningKey")
	}
	switch len(cfg.Session.BlockKey) {
	case 0, 16, 24, 32:
	default:
		missing = append(missing, "Session.BlockKey")
	}

	if len(missing) > 0 {
		return &ValidationError{fields: missing}
	}
	return nil
}

func loadDotEnv(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	values, err := godotenv.Read(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: unable to read %s: %w", path, err)
	}
	return values, nil
}

func stringWithDefault(lookup func(string) (string, bool), key, fallback string) string {
	if value, ok := lookup(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

// durationWithDefault reports false when a value is present but unparsable.
func durationWithDefault(lookup func(string) (string, bool), key string, fallback time.Duration) (time.Duration, bool) {
	value, ok := lookup(key)
	if !ok || strings.TrimSpace(value) == "" {
		return fallback, true
	}
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return fallback, false
	}
	return d, true
}

func boolWithDefault(lookup func(string) (string, bool), key string, fallback bool) bool {
	if value, ok := lookup(key); ok && value != "" {
		switch strings.ToLower(strings.TrimSpace(value)) {
		case "true", "1", "yes", "on":
			return true
		case "false", "0", "no", "off":
			return false
		}
	}
	return fallback
}

func csvWithDefault(lookup func(string) (string, bool), key, fallback string) []string {
	raw, ok := lookup(key)
	if !ok || strings.TrimSpace(raw) == "" {
		raw = fallback
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
