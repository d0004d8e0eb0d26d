package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath  = ".env"
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	ImageBackendCloudinary = "cloudinary"
	ImageBackendLocal      = "local"
	ImageBackendNone       = "none"
)

const (
	defaultRunAddress      = ":8080"
	defaultDatabaseURI     = "sqlite3://dashboard.db"
	defaultLogLevel        = "info"
	defaultUploadDir       = "uploads"
	defaultUploadPublicURL = "/uploads"
	defaultUploadTimeout   = 120 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultMaxUploadBytes  = 10 << 20
)

type Config struct {
	Env    string
	DB     DB
	Server Server
	Logger Logger
	Auth   Auth
	Images Images
}

type DB struct {
	DatabaseURI string `env:"DATABASE_URI"`
	Migrations  string `env:"MIGRATIONS_PATH"`
}

type Server struct {
	RunAddress      string        `env:"RUN_ADDRESS"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
	MaxUploadBytes  int64         `env:"MAX_UPLOAD_BYTES"`
}

type Logger struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	File     string `env:"LOG_FILE"`
}

// Auth включает проверку bearer токена, если задан bcrypt хеш.
type Auth struct {
	TokenHash string `env:"AUTH_TOKEN_HASH"`
}

type Images struct {
	Backend       string        `env:"IMAGE_BACKEND"`
	CloudinaryURL string        `env:"CLOUDINARY_URL"`
	CloudName     string        `env:"CLOUDINARY_CLOUD_NAME"`
	APIKey        string        `env:"CLOUDINARY_API_KEY"`
	APISecret     string        `env:"CLOUDINARY_API_SECRET"`
	LocalDir      string        `env:"UPLOAD_DIR"`
	PublicURL     string        `env:"UPLOAD_PUBLIC_URL"`
	UploadTimeout time.Duration `env:"UPLOAD_TIMEOUT"`
}

// CloudinaryConfigured сообщает, заданы ли учетные данные Cloudinary.
func (i Images) CloudinaryConfigured() bool {
	if i.CloudinaryURL != "" {
		return true
	}
	return i.CloudName != "" && i.APIKey != "" && i.APISecret != ""
}

// ResolvedBackend возвращает бэкенд изображений с учетом автоопределения.
func (i Images) ResolvedBackend() string {
	switch strings.ToLower(strings.TrimSpace(i.Backend)) {
	case ImageBackendCloudinary:
		return ImageBackendCloudinary
	case ImageBackendLocal:
		return ImageBackendLocal
	case ImageBackendNone:
		return ImageBackendNone
	}
	if i.CloudinaryConfigured() {
		return ImageBackendCloudinary
	}
	return ImageBackendLocal
}

func MustLoad() *Config {
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			log.Printf("failed to load %s: %v", envPath, err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_env", EnvLocal)
	v.SetDefault("run_address", defaultRunAddress)
	v.SetDefault("database_uri", defaultDatabaseURI)
	v.SetDefault("log_level", defaultLogLevel)
	v.SetDefault("upload_dir", defaultUploadDir)
	v.SetDefault("upload_public_url", defaultUploadPublicURL)
	v.SetDefault("upload_timeout", defaultUploadTimeout)
	v.SetDefault("shutdown_timeout", defaultShutdownTimeout)
	v.SetDefault("max_upload_bytes", defaultMaxUploadBytes)
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		Env: v.GetString("app_env"),
		DB: DB{
			DatabaseURI: v.GetString("database_uri"),
			Migrations:  v.GetString("migrations_path"),
		},
		Server: Server{
			RunAddress:      v.GetString("run_address"),
			ShutdownTimeout: v.GetDuration("shutdown_timeout"),
			MaxUploadBytes:  v.GetInt64("max_upload_bytes"),
		},
		Logger: Logger{
			LogLevel: v.GetString("log_level"),
			File:     v.GetString("log_file"),
		},
		Auth: Auth{
			TokenHash: v.GetString("auth_token_hash"),
		},
		Images: Images{
			Backend:       v.GetString("image_backend"),
			CloudinaryURL: v.GetString("cloudinary_url"),
			CloudName:     v.GetString("cloudinary_cloud_name"),
			APIKey:        v.GetString("cloudinary_api_key"),
			APISecret:     v.GetString("cloudinary_api_secret"),
			LocalDir:      v.GetString("upload_dir"),
			PublicURL:     strings.TrimRight(v.GetString("upload_public_url"), "/"),
			UploadTimeout: v.GetDuration("upload_timeout"),
		},
	}
}
