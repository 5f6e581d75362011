package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (remote API host, etc.)
// - default: Values common across all environments (timeouts, paths, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	API     APIConfig
	Session SessionConfig
	UI      UIConfig
	CORS    CORSConfig
	Log     LogConfig
}

type APIConfig struct {
	BaseURL string        `envconfig:"API_BASE_URL" default:"http://localhost:8080/api"`
	Timeout time.Duration `envconfig:"API_TIMEOUT" default:"15s"`
}

type SessionConfig struct {
	// CredentialFile overrides the default location under the user config
	// directory. Empty means <UserConfigDir>/ev-campus/credential.
	CredentialFile string        `envconfig:"CREDENTIAL_FILE" default:""`
	ToastDuration  time.Duration `envconfig:"TOAST_DURATION" default:"3s"`
}

type UIConfig struct {
	Port string `envconfig:"UI_PORT" default:"3000"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		API: APIConfig{
			BaseURL: "http://localhost:18080/api",
			Timeout: 2 * time.Second,
		},
		Session: SessionConfig{
			ToastDuration: 3 * time.Second,
		},
		UI: UIConfig{
			Port: "3999",
		},
		CORS: CORSConfig{
			AllowOrigins:     []string{"http://localhost:3999"},
			AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		},
		Log: LogConfig{
			Level:      "error",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
	}
}
