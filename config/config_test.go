package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.AppName != "map2-server" {
		t.Errorf("AppName = %q", cfg.AppName)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.DBName != "map2" {
		t.Errorf("DBName = %q", cfg.DBName)
	}
	if cfg.AccessTTL != time.Hour || cfg.RefreshTTL != 168*time.Hour {
		t.Errorf("TTLs = %v/%v", cfg.AccessTTL, cfg.RefreshTTL)
	}
	if cfg.ESPostsIndex != "posts" {
		t.Errorf("ESPostsIndex = %q", cfg.ESPostsIndex)
	}
	if cfg.MailSendEnabled {
		t.Error("mail sending should default off")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_MAX_CONNS", "32")
	t.Setenv("JWT_ACCESS_TTL", "30m")
	t.Setenv("MAIL_SEND_ENABLED", "true")
	t.Setenv("DB_MIN_CONNS", "not-a-number") // falls back to the default

	cfg := Load()
	if cfg.Port != "9090" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.DBMaxConns != 32 {
		t.Errorf("DBMaxConns = %d", cfg.DBMaxConns)
	}
	if cfg.AccessTTL != 30*time.Minute {
		t.Errorf("AccessTTL = %v", cfg.AccessTTL)
	}
	if !cfg.MailSendEnabled {
		t.Error("MailSendEnabled should be true")
	}
	if cfg.DBMinConns != 2 {
		t.Errorf("DBMinConns = %d, want the default", cfg.DBMinConns)
	}
}

func TestPostgresDSN(t *testing.T) {
	c := &Config{DBUser: "u", DBPassword: "p", DBHost: "h", DBPort: "5432", DBName: "d", DBSSLMode: "disable"}
	want := "postgres://u:p@h:5432/d?sslmode=disable"
	if got := c.PostgresDSN(); got != want {
		t.Errorf("DSN = %q, want %q", got, want)
	}
}

func TestCORSOrigins(t *testing.T) {
	c := &Config{CORSAllowedOrigins: " http://localhost:3000 , https://map2.example.com ,"}
	got := c.CORSOrigins()
	if len(got) != 2 || got[0] != "http://localhost:3000" || got[1] != "https://map2.example.com" {
		t.Errorf("origins = %v", got)
	}
	if n := len((&Config{}).CORSOrigins()); n != 0 {
		t.Errorf("empty origins parsed into %d entries", n)
	}
}
