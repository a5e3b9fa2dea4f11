package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vancomm/minesweeper/internal/mines"
)

type LogConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
}

type Config struct {
	Mode           string    `mapstructure:"mode"`
	Addr           string    `mapstructure:"addr"`
	BasePath       string    `mapstructure:"base_path"`
	DefaultParams  string    `mapstructure:"default_params"`
	MaxRows        int       `mapstructure:"max_rows"`
	MaxCols        int       `mapstructure:"max_cols"`
	AllowedOrigins []string  `mapstructure:"allowed_origins"`
	Log            LogConfig `mapstructure:"log"`
}

const EnvPrefix = "MINES"

func setDefaults(v *viper.Viper) {
	v.SetDefault("mode", "development")
	v.SetDefault("addr", ":8080")
	v.SetDefault("base_path", "/v1")
	v.SetDefault("default_params", mines.DefaultParams.String())
	v.SetDefault("max_rows", 100)
	v.SetDefault("max_cols", 100)
	v.SetDefault("allowed_origins", []string{})
	v.SetDefault("log.level", "")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age", 28)
}

// Load reads the config file at path, if any, then applies MINES_*
// environment overrides (MINES_LOG_FILE for log.file and so on).
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("unable to read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unable to parse config: %w", err)
	}
	params, err := c.Params()
	if err != nil {
		return nil, fmt.Errorf("invalid default_params: %w", err)
	}
	if err := params.Within(c.MaxRows, c.MaxCols); err != nil {
		return nil, fmt.Errorf("invalid default_params: %w", err)
	}
	return &c, nil
}

func (c Config) Production() bool {
	return c.Mode == "production"
}

func (c Config) Development() bool {
	return c.Mode != "production"
}

func (c Config) Params() (mines.GameParams, error) {
	return mines.ParseParams(c.DefaultParams)
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"mode":            c.Mode,
		"addr":            c.Addr,
		"base_path":       c.BasePath,
		"default_params":  c.DefaultParams,
		"max_rows":        c.MaxRows,
		"max_cols":        c.MaxCols,
		"allowed_origins": c.AllowedOrigins,
		"log_level":       c.Log.Level,
		"log_file":        c.Log.File,
		"log_max_size":    c.Log.MaxSize,
		"log_max_backups": c.Log.MaxBackups,
		"log_max_age":     c.Log.MaxAge,
	}
}
