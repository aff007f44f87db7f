package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// DefaultPort is the port used when neither PORT nor SERVER_PORT is set
const DefaultPort = 8050

var validate = validator.New()

// Load loads configuration from defaults, an optional config file and environment variables
func Load() (*Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config

	cfg.Server.Host = v.GetString("server_host")
	cfg.Server.Port = v.GetInt("server_port")
	// PORT is the conventional hosting override and wins over server_port
	if v.IsSet("port") && v.GetInt("port") != 0 {
		cfg.Server.Port = v.GetInt("port")
	}

	cfg.Log.Level = strings.ToLower(v.GetString("log_level"))
	cfg.Log.Format = strings.ToLower(v.GetString("log_format"))

	cfg.Store.Path = v.GetString("store_path")
	cfg.Upload.MaxBytes = v.GetInt64("upload_max_bytes")
	cfg.History.Limit = v.GetInt("history_limit")

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server_host", "0.0.0.0")
	v.SetDefault("server_port", DefaultPort)

	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")

	v.SetDefault("store_path", "wellviewer.db")
	v.SetDefault("upload_max_bytes", 32<<20)
	v.SetDefault("history_limit", 50)
}
