package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// envPrefix: PETCARE_SERVER_PORT, PETCARE_PROVIDERS_IMAGGA_API_KEY, etc.
const envPrefix = "PETCARE"

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	MinIO     MinIOConfig     `mapstructure:"minio"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Providers ProvidersConfig `mapstructure:"providers"`
	Detection DetectionConfig `mapstructure:"detection"`
}

type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	App    string `mapstructure:"app"`
}

// DatabaseConfig: si DSN está vacío se usa el repo in-memory.
type DatabaseConfig struct {
	DSN string `mapstructure:"dsn"`
}

// RedisConfig: si Addr está vacío el cache de detecciones queda en memoria.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// MinIOConfig habilita referencias s3://bucket/key a imágenes.
type MinIOConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	UseSSL    bool   `mapstructure:"use_ssl"`
}

type AuthConfig struct {
	OdinBaseURL string `mapstructure:"odin_base_url"`
	OdinAPIKey  string `mapstructure:"odin_api_key"`
}

// ProvidersConfig: un proveedor sin credencial se omite, no es error.
type ProvidersConfig struct {
	GoogleVision GoogleVisionConfig `mapstructure:"googlevision"`
	Imagga       ImaggaConfig       `mapstructure:"imagga"`
	Gemini       GeminiConfig       `mapstructure:"gemini"`
}

type GoogleVisionConfig struct {
	Endpoint string `mapstructure:"endpoint"`
	APIKey   string `mapstructure:"api_key"`
}

type ImaggaConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	APIKey    string `mapstructure:"api_key"`
	APISecret string `mapstructure:"api_secret"`
}

type GeminiConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

type DetectionConfig struct {
	ProviderTimeout time.Duration `mapstructure:"provider_timeout"`
	CacheTTL        time.Duration `mapstructure:"cache_ttl"`
	MaxImageBytes   int64         `mapstructure:"max_image_bytes"`

	// AllowPrivateImageHosts deja que imageUrl apunte a la red interna.
	AllowPrivateImageHosts bool `mapstructure:"allow_private_image_hosts"`
}

func (c *Config) Validate() error {
	var errs []error
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port out of range: %d", c.Server.Port))
	}
	if c.Detection.ProviderTimeout <= 0 {
		errs = append(errs, errors.New("detection.provider_timeout must be > 0"))
	}
	if c.Detection.MaxImageBytes <= 0 {
		errs = append(errs, errors.New("detection.max_image_bytes must be > 0"))
	}
	if c.Providers.Imagga.APIKey != "" && c.Providers.Imagga.APISecret == "" {
		errs = append(errs, errors.New("providers.imagga.api_secret required when api_key is set"))
	}
	return errors.Join(errs...)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// setDefaults también registra cada key para que AutomaticEnv la resuelva en Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 5*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.app", "pet-care-insights")

	v.SetDefault("database.dsn", "")

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("minio.endpoint", "")
	v.SetDefault("minio.access_key", "")
	v.SetDefault("minio.secret_key", "")
	v.SetDefault("minio.use_ssl", true)

	v.SetDefault("auth.odin_base_url", "")
	v.SetDefault("auth.odin_api_key", "")

	v.SetDefault("providers.googlevision.endpoint", "https://vision.googleapis.com")
	v.SetDefault("providers.googlevision.api_key", "")
	v.SetDefault("providers.imagga.endpoint", "https://api.imagga.com")
	v.SetDefault("providers.imagga.api_key", "")
	v.SetDefault("providers.imagga.api_secret", "")
	v.SetDefault("providers.gemini.api_key", "")
	v.SetDefault("providers.gemini.model", "gemini-2.5-flash")

	v.SetDefault("detection.provider_timeout", 8*time.Second)
	v.SetDefault("detection.cache_ttl", 24*time.Hour)
	v.SetDefault("detection.max_image_bytes", int64(10<<20))
	v.SetDefault("detection.allow_private_image_hosts", false)
}

// Load lee defaults + env y, si path no es vacío, el YAML indicado.
func Load(path string) (*Config, error) {
	v := newViper()
	if strings.TrimSpace(path) != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %q: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
