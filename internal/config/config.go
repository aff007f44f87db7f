package config

import "fmt"

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig
	Log     LogConfig
	Store   StoreConfig
	Upload  UploadConfig
	History HistoryConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port" validate:"min=1,max=65535"`
}

// Addr returns the listen address
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=json console"`
}

// StoreConfig holds the build history database location.
// An empty path disables the history.
type StoreConfig struct {
	Path string `mapstructure:"path"`
}

// Enabled reports whether build history is persisted
func (c StoreConfig) Enabled() bool {
	return c.Path != ""
}

// UploadConfig bounds accepted uploads
type UploadConfig struct {
	MaxBytes int64 `mapstructure:"max_bytes" validate:"min=1"`
}

// HistoryConfig controls build history listing
type HistoryConfig struct {
	Limit int `mapstructure:"limit" validate:"min=1,max=1000"`
}
