package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Data backends.
const (
	BackendFile     = "file"
	BackendPostgres = "postgres"
)

// Upload backends.
const (
	UploadLocal = "local"
	UploadS3    = "s3"
)

type Config struct {
	Env  string
	Port int

	Data     DataConfig
	Database DatabaseConfig
	Uploads  UploadConfig
	Session  SessionConfig
	CORS     CORSConfig
	Log      LogConfig
}

// DataConfig selects the content backing store.
type DataConfig struct {
	Backend string
	Dir     string
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

// UploadConfig selects where uploaded documents land.
type UploadConfig struct {
	Backend       string
	Dir           string
	PublicBaseURL string
	MaxSizeBytes  int64

	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3UseSSL    bool
}

// SessionConfig holds the admin gate secrets. Either AdminPassword or
// AdminPasswordHash (bcrypt) must be set; Load refuses to start without
// them so no default credential can ship.
type SessionConfig struct {
	AdminPassword     string
	AdminPasswordHash string
	Secret            string
	TTL               time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// With SetConfigFile, viper reports a missing file as fs.ErrNotExist
		// rather than ConfigFileNotFoundError.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")

	cfg.Data = DataConfig{
		Backend: strings.ToLower(v.GetString("DATA_BACKEND")),
		Dir:     v.GetString("DATA_DIR"),
	}
	if cfg.Data.Backend != BackendFile && cfg.Data.Backend != BackendPostgres {
		return nil, errors.New(`DATA_BACKEND must be "file" or "postgres"`)
	}

	cfg.Database = DatabaseConfig{
		Host:         v.GetString("DB_HOST"),
		Port:         v.GetInt("DB_PORT"),
		User:         v.GetString("DB_USER"),
		Password:     v.GetString("DB_PASSWORD"),
		Name:         v.GetString("DB_NAME"),
		SSLMode:      v.GetString("DB_SSL_MODE"),
		MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
	}

	maxUpload := v.GetInt64("MAX_UPLOAD_SIZE")
	if maxUpload <= 0 {
		maxUpload = 10 * 1024 * 1024
	}
	cfg.Uploads = UploadConfig{
		Backend:       strings.ToLower(v.GetString("UPLOAD_BACKEND")),
		Dir:           v.GetString("UPLOAD_DIR"),
		PublicBaseURL: strings.TrimRight(v.GetString("PUBLIC_BASE_URL"), "/"),
		MaxSizeBytes:  maxUpload,
		S3Endpoint:    v.GetString("S3_ENDPOINT"),
		S3AccessKey:   v.GetString("S3_ACCESS_KEY"),
		S3SecretKey:   v.GetString("S3_SECRET_KEY"),
		S3Bucket:      v.GetString("S3_BUCKET"),
		S3UseSSL:      v.GetBool("S3_USE_SSL"),
	}
	if cfg.Uploads.Backend != UploadLocal && cfg.Uploads.Backend != UploadS3 {
		return nil, errors.New(`UPLOAD_BACKEND must be "local" or "s3"`)
	}

	cfg.Session = SessionConfig{
		AdminPassword:     v.GetString("ADMIN_PASSWORD"),
		AdminPasswordHash: v.GetString("ADMIN_PASSWORD_HASH"),
		Secret:            v.GetString("SESSION_SECRET"),
		TTL:               parseDuration(v.GetString("SESSION_TTL"), 8*time.Hour),
	}
	if cfg.Session.AdminPassword == "" && cfg.Session.AdminPasswordHash == "" {
		return nil, errors.New("ADMIN_PASSWORD or ADMIN_PASSWORD_HASH must be set")
	}
	if cfg.Session.Secret == "" {
		return nil, errors.New("SESSION_SECRET must be set")
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)

	v.SetDefault("DATA_BACKEND", BackendFile)
	v.SetDefault("DATA_DIR", "./data")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "pac_site")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)

	v.SetDefault("UPLOAD_BACKEND", UploadLocal)
	v.SetDefault("UPLOAD_DIR", "./public/uploads")
	v.SetDefault("PUBLIC_BASE_URL", "")
	v.SetDefault("MAX_UPLOAD_SIZE", 10*1024*1024)

	v.SetDefault("S3_ENDPOINT", "")
	v.SetDefault("S3_ACCESS_KEY", "")
	v.SetDefault("S3_SECRET_KEY", "")
	v.SetDefault("S3_BUCKET", "pac-uploads")
	v.SetDefault("S3_USE_SSL", true)

	// ADMIN_PASSWORD, ADMIN_PASSWORD_HASH and SESSION_SECRET deliberately
	// have no defaults.
	v.SetDefault("SESSION_TTL", "8h")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
