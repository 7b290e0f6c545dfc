package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/de-tools/playbill/pkg/services/pricing"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const EnvPrefix = "PLAYBILL"

type Config struct {
	Locale   string        `mapstructure:"locale" validate:"required"`
	Currency string        `mapstructure:"currency" validate:"required,len=3"`
	Format   string        `mapstructure:"format" validate:"required"`
	LogLevel string        `mapstructure:"log_level" validate:"oneof=trace debug info warn error"`
	Pricing  pricing.Rates `mapstructure:"pricing"`
	Catalog  Catalog       `mapstructure:"catalog"`
	AWS      AWS           `mapstructure:"aws"`
	Server   Server        `mapstructure:"server"`
}

// Catalog points at the play catalog: a document (Path) or a SQL table
// (Driver, DSN, Table).
type Catalog struct {
	Path   string `mapstructure:"path"`
	Driver string `mapstructure:"driver" validate:"omitempty,oneof=pgx databricks snowflake"`
	DSN    string `mapstructure:"dsn" validate:"required_with=Driver"`
	Table  string `mapstructure:"table"`
}

type AWS struct {
	Profile string `mapstructure:"profile"`
	Region  string `mapstructure:"region"`
}

type Server struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port" validate:"gte=1,lte=65535"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gte=0"`
}

func (s Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func setDefaults(v *viper.Viper) {
	v.SetDefault("locale", "en-US")
	v.SetDefault("currency", "USD")
	v.SetDefault("format", "text")
	v.SetDefault("log_level", "info")
	pricing.SetDefaults(v, "pricing")
	v.SetDefault("catalog.path", "")
	v.SetDefault("catalog.driver", "")
	v.SetDefault("catalog.dsn", "")
	v.SetDefault("catalog.table", "plays")
	v.SetDefault("aws.profile", "")
	v.SetDefault("aws.region", "us-east-1")
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
}

// Load merges defaults, the optional config file at path and PLAYBILL_*
// environment variables, e.g. PLAYBILL_PRICING_TRAGEDY_BASE or
// PLAYBILL_SERVER_PORT.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
