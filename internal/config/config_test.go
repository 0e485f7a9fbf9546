package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func load(t *testing.T, env map[string]string, opts ...Option) (Config, error) {
	t.Helper()
	base := []Option{WithEnvMap(env), WithoutSystemEnv(), WithEnvFile("")}
	return Load(context.Background(), append(base, opts...)...)
}

func TestLoadWithDefaults(t *testing.T) {
	cfg, err := load(t, nil)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Server.Port != "8080" || cfg.Server.Addr() != ":8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Server.Port)
	}
	if cfg.Server.Production() {
		t.Errorf("default environment must not be production")
	}
	if cfg.Chat.Latency != 500*time.Millisecond {
		t.Errorf("unexpected chat latency: %s", cfg.Chat.Latency)
	}
	if cfg.UI.NoticeDismiss != 5*time.Second {
		t.Errorf("unexpected notice dismiss: %s", cfg.UI.NoticeDismiss)
	}
	if cfg.Business.WhatsAppNumber != defaultWhatsAppNumber {
		t.Errorf("unexpected whatsapp number: %s", cfg.Business.WhatsAppNumber)
	}
	if len(cfg.Business.SupportNumbers) != 2 {
		t.Errorf("expected two support numbers, got %v", cfg.Business.SupportNumbers)
	}
	if cfg.Paths.Templates != "templates" || cfg.Paths.Public != "public" || cfg.Content.Dir != "content" {
		t.Errorf("unexpected default paths: %+v %+v", cfg.Paths, cfg.Content)
	}
	if cfg.Content.CacheTTL != 5*time.Minute {
		t.Errorf("unexpected cache ttl: %s", cfg.Content.CacheTTL)
	}
}

func TestLoadOverrides(t *testing.T) {
	env := map[string]string{
		"HOSTUP_PORT":            "9090",
		"HOSTUP_DEV":             "yes",
		"HOSTUP_WHATSAPP_NUMBER": "+91 93172-10055",
		"HOSTUP_SUPPORT_NUMBERS": " +91 98197 26493 , ,919317210055",
		"HOSTUP_CHAT_LATENCY":    "0s",
		"HOSTUP_BASE_URL":        "https://hostup.co.in/",
		"HOSTUP_LOG_LEVEL":       "DEBUG",
	}
	cfg, err := load(t, env)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.Port != "9090" || !cfg.Server.Dev {
		t.Errorf("overrides not applied: %+v", cfg.Server)
	}
	if cfg.Business.WhatsAppNumber != "919317210055" {
		t.Errorf("expected digits only, got %s", cfg.Business.WhatsAppNumber)
	}
	if got := cfg.Business.SupportNumbers; len(got) != 2 || got[0] != "919819726493" {
		t.Errorf("unexpected support numbers: %v", got)
	}
	if cfg.Chat.Latency != 0 {
		t.Errorf("expected zero latency, got %s", cfg.Chat.Latency)
	}
	if cfg.Server.BaseURL != "https://hostup.co.in" {
		t.Errorf("expected trailing slash trimmed, got %s", cfg.Server.BaseURL)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected lower-cased level, got %s", cfg.Logging.Level)
	}
}

func TestLoadFallsBackToPlatformPort(t *testing.T) {
	cfg, err := load(t, map[string]string{"PORT": "3000"})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.Port != "3000" {
		t.Errorf("expected platform PORT, got %s", cfg.Server.Port)
	}
}

func TestLoadValidation(t *testing.T) {
	env := map[string]string{
		"HOSTUP_ENV":               "prod",
		"HOSTUP_PORT":              "http",
		"HOSTUP_CONTACT_EMAIL":     "not-an-email",
		"HOSTUP_WHATSAPP_NUMBER":   "123",
		"HOSTUP_CHAT_LATENCY":      "soon",
		"HOSTUP_LOG_LEVEL":         "verbose",
		"HOSTUP_SESSION_BLOCK_KEY": "too-short",
	}
	_, err := load(t, env)
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	want := map[string]bool{
		"Server.Port":             true,
		"Chat.Latency":            true,
		"Logging.Level":           true,
		"Business.WhatsAppNumber": true,
		"Business.ContactEmail":   true,
		"Session.SigningKey":      true,
		"Session.BlockKey":        true,
	}
	fields := vErr.Fields()
	if len(fields) != len(want) {
		t.Fatalf("unexpected fields: %v", fields)
	}
	for _, f := range fields {
		if !want[f] {
			t.Errorf("unexpected field %q", f)
		}
	}
}

func TestLoadDotEnvPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "HOSTUP_PORT=7070\nHOSTUP_BUSINESS_NAME=\"HostUp Dotenv\"\nHOSTUP_CONTACT_EMAIL=dot@example.com\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	cfg, err := Load(context.Background(),
		WithEnvFile(path),
		WithoutSystemEnv(),
		WithEnvMap(map[string]string{"HOSTUP_PORT": "6060"}),
	)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.Port != "6060" {
		t.Errorf("env map should win over .env, got %s", cfg.Server.Port)
	}
	if cfg.Business.Name != "HostUp Dotenv" {
		t.Errorf("expected name from .env, got %q", cfg.Business.Name)
	}
	if cfg.Business.ContactEmail != "dot@example.com" {
		t.Errorf("expected email from .env, got %q", cfg.Business.ContactEmail)
	}

	if _, err := load(t, nil, WithEnvFile(filepath.Join(dir, "missing.env"))); err != nil {
		t.Fatalf("missing .env must be ignored, got %v", err)
	}
}
