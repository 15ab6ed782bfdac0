package app

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config agrupa la configuración del proceso API, leída de env vars.
type Config struct {
	Port            string
	DBDSN           string
	HTTPTimeout     time.Duration
	ShutdownTimeout time.Duration

	KafkaBrokers []string
	KafkaTopic   string

	OdinBaseURL string
	OdinAPIKey  string

	OTelDisabled bool
}

// LoadConfig lee env vars, aplica defaults y valida lo básico.
func LoadConfig() (Config, error) {
	cfg := Config{
		Port:         envDefault("PORT", "8080"),
		DBDSN:        strings.TrimSpace(os.Getenv("DB_DSN")),
		KafkaBrokers: splitCSV(os.Getenv("KAFKA_BROKERS")),
		KafkaTopic:   envDefault("KAFKA_TOPIC", "adoption.interests"),
		OdinBaseURL:  strings.TrimSpace(os.Getenv("ODIN_BASE_URL")),
		OdinAPIKey:   strings.TrimSpace(os.Getenv("ODIN_API_KEY")),
		OTelDisabled: isTruthy(os.Getenv("OTEL_DISABLED")),
	}

	var err error
	if cfg.HTTPTimeout, err = envDuration("HTTP_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.ShutdownTimeout, err = envDuration("SHUTDOWN_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}

	// Odin va completo o no va.
	if (cfg.OdinBaseURL == "") != (cfg.OdinAPIKey == "") {
		return Config{}, fmt.Errorf("ODIN_BASE_URL and ODIN_API_KEY must be set together")
	}
	return cfg, nil
}

// Addr listo para http.Server.
func (c Config) Addr() string {
	return ":" + c.Port
}

// DevAuth: sin Odin el API acepta los headers X-Debug-User-*.
func (c Config) DevAuth() bool {
	return c.OdinBaseURL == ""
}

func envDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%s must be a positive duration (e.g. 10s)", key)
	}
	return d, nil
}

func splitCSV(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func isTruthy(value string) bool {
	value = strings.TrimSpace(strings.ToLower(value))
	return value == "1" || value == "true" || value == "yes"
}
