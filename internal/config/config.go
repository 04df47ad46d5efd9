package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// EnvPrefix prefixes every environment variable the service reads
const EnvPrefix = "BANKSYNTH"

// ConfigFileEnv names the variable holding an optional config file path
const ConfigFileEnv = EnvPrefix + "_CONFIG"

// Config holds the runtime settings of the server and CLI
type Config struct {
	HTTP        HTTPConfig        `mapstructure:"http"`
	GRPC        GRPCConfig        `mapstructure:"grpc"`
	Auth        AuthConfig        `mapstructure:"auth"`
	Output      OutputConfig      `mapstructure:"output"`
	Store       StoreConfig       `mapstructure:"store"`
	ObjectStore ObjectStoreConfig `mapstructure:"objectstore"`
	Log         LogConfig         `mapstructure:"log"`
}

type HTTPConfig struct {
	Addr string `mapstructure:"addr" validate:"required"`
}

type GRPCConfig struct {
	Addr string `mapstructure:"addr" validate:"required"`
}

// AuthConfig holds the shared API token; empty disables auth
type AuthConfig struct {
	Token string `mapstructure:"token"`
}

type OutputConfig struct {
	Dir string `mapstructure:"dir" validate:"required"`
}

type StoreConfig struct {
	Capacity int `mapstructure:"capacity" validate:"gte=1,lte=1024"`
}

// ObjectStoreConfig configures the archive sink; it is disabled when Endpoint is empty
type ObjectStoreConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key" validate:"required_with=Endpoint"`
	SecretKey string `mapstructure:"secret_key" validate:"required_with=Endpoint"`
	Bucket    string `mapstructure:"bucket" validate:"required_with=Endpoint"`
	Region    string `mapstructure:"region"`
	UseSSL    bool   `mapstructure:"use_ssl"`
}

// Enabled reports whether an object store is configured
func (c ObjectStoreConfig) Enabled() bool {
	return c.Endpoint != ""
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
}

// ZapLevel returns the configured log level
func (c LogConfig) ZapLevel() zapcore.Level {
	level, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return zapcore.InfoLevel
	}
	return level
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http.addr", ":8081")
	v.SetDefault("grpc.addr", ":8080")
	v.SetDefault("auth.token", "")
	v.SetDefault("output.dir", "data")
	v.SetDefault("store.capacity", 8)
	v.SetDefault("objectstore.endpoint", "")
	v.SetDefault("objectstore.access_key", "")
	v.SetDefault("objectstore.secret_key", "")
	v.SetDefault("objectstore.bucket", "banksynth")
	v.SetDefault("objectstore.region", "")
	v.SetDefault("objectstore.use_ssl", false)
	v.SetDefault("log.level", "info")
}

// Load builds the configuration.
//
// Logic:
//  1. Load .env into the process environment when present
//  2. Apply defaults
//  3. Read the file named by BANKSYNTH_CONFIG when set
//  4. Override with BANKSYNTH_* variables (BANKSYNTH_HTTP_ADDR sets http.addr)
//  5. Validate
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	if path := os.Getenv(ConfigFileEnv); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
