package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const EnvPrefix = "ELYSIUM"

type Config struct {
	Dev      bool     `mapstructure:"dev" json:"dev" jsonschema:"description=Enable dev mode (reload script, verbose errors)"`
	Server   Server   `mapstructure:"server" json:"server"`
	Database Database `mapstructure:"database" json:"database"`
	Log      Log      `mapstructure:"log" json:"log"`
}

type Server struct {
	Addr      string `mapstructure:"addr" json:"addr" validate:"required,listen_addr" jsonschema:"default=:3000"`
	PublicDir string `mapstructure:"public_dir" json:"public_dir" validate:"required" jsonschema:"default=public"`
}

type Database struct {
	Driver string `mapstructure:"driver" json:"driver" validate:"required,oneof=sqlite postgres" jsonschema:"enum=sqlite,enum=postgres,default=sqlite"`
	URL    string `mapstructure:"url" json:"url" validate:"required" jsonschema:"default=data/elysium.db"`
}

type Log struct {
	Level  string `mapstructure:"level" json:"level" validate:"oneof=debug info warn error" jsonschema:"enum=debug,enum=info,enum=warn,enum=error,default=info"`
	Format string `mapstructure:"format" json:"format" validate:"oneof=text json" jsonschema:"enum=text,enum=json,default=text"`
}

func Default() Config {
	return Config{
		Server: Server{
			Addr:      ":3000",
			PublicDir: "public",
		},
		Database: Database{
			Driver: "sqlite",
			URL:    "data/elysium.db",
		},
		Log: Log{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads defaults, then the optional config file, then ELYSIUM_*
// environment variables (ELYSIUM_DATABASE_URL, ELYSIUM_SERVER_ADDR, ...).
// An empty path searches the working directory for elysium.{yaml,toml,json}.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("elysium")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("dev", d.Dev)
	v.SetDefault("server.addr", d.Server.Addr)
	v.SetDefault("server.public_dir", d.Server.PublicDir)
	v.SetDefault("database.driver", d.Database.Driver)
	v.SetDefault("database.url", d.Database.URL)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
}
