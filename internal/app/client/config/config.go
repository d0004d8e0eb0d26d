package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultServerAddress = "localhost:8080"
	defaultLogLevel      = "info"
	defaultEnv           = "local"
	defaultConfigDir     = ".dashboard"
	defaultTimeout       = 30
)

type Config struct {
	Env            string `mapstructure:"app_env"`
	ServerAddress  string `mapstructure:"server_address"`
	APIToken       string `mapstructure:"api_token"`
	LogLevel       string `mapstructure:"log_level"`
	ConfigDir      string `mapstructure:"config_dir"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	EnableTLS      bool   `mapstructure:"enable_tls"`
}

// MustLoad загружает конфигурацию клиента из .env, файла конфигурации и окружения.
func MustLoad() *Config {
	envPath := ".env"
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		envPath = "../.env"
	}
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			fmt.Printf("Ошибка загрузки .env файла: %v\n", err)
		}
	}

	viper.AutomaticEnv()

	config := FromViper(viper.GetViper())
	if err := config.validate(); err != nil {
		panic(fmt.Sprintf("Ошибка конфигурации: %v", err))
	}
	return config
}

// FromViper собирает конфигурацию из переданного экземпляра viper.
func FromViper(v *viper.Viper) *Config {
	v.SetDefault("APP_ENV", defaultEnv)
	v.SetDefault("SERVER_ADDRESS", defaultServerAddress)
	v.SetDefault("LOG_LEVEL", defaultLogLevel)
	v.SetDefault("CONFIG_DIR", defaultConfigDir)
	v.SetDefault("TIMEOUT_SECONDS", defaultTimeout)
	v.SetDefault("ENABLE_TLS", false)

	configDir := v.GetString("CONFIG_DIR")
	if configDir == defaultConfigDir {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = "."
		}
		configDir = filepath.Join(homeDir, configDir)
	}

	return &Config{
		Env:            v.GetString("APP_ENV"),
		ServerAddress:  v.GetString("SERVER_ADDRESS"),
		APIToken:       v.GetString("API_TOKEN"),
		LogLevel:       v.GetString("LOG_LEVEL"),
		ConfigDir:      configDir,
		TimeoutSeconds: v.GetInt("TIMEOUT_SECONDS"),
		EnableTLS:      v.GetBool("ENABLE_TLS"),
	}
}

func (c *Config) validate() error {
	if c.ServerAddress == "" {
		return fmt.Errorf("server_address не может быть пустым")
	}
	if c.TimeoutSeconds <= 0 {
		return fmt.Errorf("timeout_seconds должен быть положительным")
	}
	return nil
}

// BaseURL адрес сервера со схемой. Адрес с явной схемой не меняется.
func (c *Config) BaseURL() string {
	if hasScheme(c.ServerAddress) {
		return c.ServerAddress
	}
	if c.EnableTLS {
		return "https://" + c.ServerAddress
	}
	return "http://" + c.ServerAddress
}

func hasScheme(addr string) bool {
	return strings.HasPrefix(addr, "http://") || strings.HasPrefix(addr, "https://")
}

func (c *Config) IsLocal() bool {
	return c.Env == "local" || c.Env == ""
}
