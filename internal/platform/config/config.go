package config

import (
	"os"
	"strings"
	"time"
)

// Config agrupa la configuración del proceso, tomada de env.
type Config struct {
	Addr          string
	DBDSN         string // vacío => repos in-memory
	UploadsDir    string
	SessionTTL    time.Duration
	SecureCookies bool
}

// FromEnv construye la Config desde variables de entorno:
// - PORT (default 8080)
// - DB_DSN (opcional; sin DSN corre in-memory, modo dev)
// - UPLOADS_DIR (default ./uploads)
// - SESSION_TTL (formato time.ParseDuration, default 24h)
// - COOKIE_SECURE=true para cookies solo-HTTPS
func FromEnv() Config {
	cfg := Config{
		Addr:       ":8080",
		UploadsDir: "./uploads",
		SessionTTL: 24 * time.Hour,
	}

	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		cfg.Addr = ":" + v
	}
	if v := strings.TrimSpace(os.Getenv("DB_DSN")); v != "" {
		cfg.DBDSN = v
	}
	if v := strings.TrimSpace(os.Getenv("UPLOADS_DIR")); v != "" {
		cfg.UploadsDir = v
	}
	if v := strings.TrimSpace(os.Getenv("SESSION_TTL")); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.SessionTTL = d
		}
	}
	if strings.EqualFold(strings.TrimSpace(os.Getenv("COOKIE_SECURE")), "true") {
		cfg.SecureCookies = true
	}

	return cfg
}
