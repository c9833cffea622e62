// Package config loads the server configuration from the environment, an
// optional .env file and an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	_ "github.com/joho/godotenv/autoload"
	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Port         string        `yaml:"port" env:"PORT" env-default:"8080"`
	Mode         string        `yaml:"mode" env:"GIN_MODE" env-default:"release"`
	StaticDir    string        `yaml:"static_dir" env:"STATIC_DIR" env-default:"./public"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env:"READ_TIMEOUT" env-default:"15s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"WRITE_TIMEOUT" env-default:"0s"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" env:"IDLE_TIMEOUT" env-default:"60s"`
}

type LogConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

type TrackingConfig struct {
	Enabled   bool          `yaml:"enabled" env:"TRACKING_ENABLED" env-default:"true"`
	DBPath    string        `yaml:"db_path" env:"DB_PATH" env-default:"hustlr.db"`
	Salt      string        `yaml:"salt" env:"TRACKING_SALT"`
	Retention time.Duration `yaml:"retention" env:"TRACKING_RETENTION" env-default:"8760h"`
}

type WaitlistConfig struct {
	Delay time.Duration `yaml:"delay" env:"WAITLIST_DELAY" env-default:"1s"`
}

type HeroConfig struct {
	TypewriterInterval time.Duration `yaml:"typewriter_interval" env:"TYPEWRITER_INTERVAL" env-default:"90ms"`
	KeyframeStep       float64       `yaml:"keyframe_step" env:"KEYFRAME_STEP" env-default:"50"`
}

// Config is the complete server configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	Tracking TrackingConfig `yaml:"tracking"`
	Waitlist WaitlistConfig `yaml:"waitlist"`
	Hero     HeroConfig     `yaml:"hero"`
}

// Load reads the YAML file at path, overlaid by environment variables. A
// missing file is not an error; the environment and defaults apply.
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		err := cleanenv.ReadConfig(path, &cfg)
		if err == nil {
			return &cfg, cfg.validate()
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}
	return &cfg, cfg.validate()
}

func (c *Config) validate() error {
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("invalid server mode %q", c.Server.Mode)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q", c.Log.Format)
	}
	if c.Hero.KeyframeStep < 0 {
		return fmt.Errorf("keyframe step must not be negative, got %v", c.Hero.KeyframeStep)
	}
	return nil
}

// Addr is the listen address of the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Server.Port
}

// LogLevel parses the configured level, falling back to info.
func (c *Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// WriteYAML writes the effective configuration. The tracking salt is masked.
func (c *Config) WriteYAML(w io.Writer) error {
	out := *c
	if out.Tracking.Salt != "" {
		out.Tracking.Salt = "********"
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&out); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return enc.Close()
}
