// Package config loads the web server settings from the environment
package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// Config holds the server settings. Every field has a working default so
// the server starts with no environment at all.
type Config struct {
	Addr         string `env:"RPG_SHEET_ADDR" envDefault:":5000"`
	TemplatePath string `env:"RPG_SHEET_TEMPLATE" envDefault:"character_template.html"`
	UploadDir    string `env:"RPG_SHEET_UPLOAD_DIR" envDefault:"uploads"`
	OutputDir    string `env:"RPG_SHEET_OUTPUT_DIR" envDefault:"outputs"`

	// RedisAddr switches sheet storage from OutputDir to Redis when set
	RedisAddr string        `env:"RPG_SHEET_REDIS_ADDR"`
	OutputTTL time.Duration `env:"RPG_SHEET_OUTPUT_TTL" envDefault:"24h"`

	MaxUploadBytes int64  `env:"RPG_SHEET_MAX_UPLOAD_BYTES" envDefault:"10485760"`
	GinMode        string `env:"RPG_SHEET_GIN_MODE" envDefault:"release"`
	StrictTemplate bool   `env:"RPG_SHEET_STRICT_TEMPLATE" envDefault:"false"`
}

// Load reads an optional .env file, then the environment. Variables
// already set in the environment win over the file.
func Load(envFiles ...string) (*Config, error) {
	// a missing .env is normal outside development
	_ = godotenv.Load(envFiles...)

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings are usable
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("Addr", c.Addr, vb)
	errors.ValidateRequired("TemplatePath", c.TemplatePath, vb)
	errors.ValidateRequired("UploadDir", c.UploadDir, vb)
	errors.ValidateRequired("OutputDir", c.OutputDir, vb)
	errors.ValidatePositive("MaxUploadBytes", c.MaxUploadBytes, vb)
	if c.OutputTTL < 0 {
		vb.Field("OutputTTL", "must not be negative")
	}

	switch c.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		vb.Fieldf("GinMode", "must be one of debug, release, test; got %q", c.GinMode)
	}

	return vb.Build()
}

// UsesRedis reports whether rendered sheets go to Redis
func (c *Config) UsesRedis() bool {
	return c.RedisAddr != ""
}
