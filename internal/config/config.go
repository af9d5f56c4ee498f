package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// envFiles are loaded in order; a variable set by an earlier file or by the
// real environment is never overridden.
var envFiles = []string{".env.local", ".env.development", ".env"}

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Kafka     KafkaConfig
	Media     MediaConfig
}

type ServerConfig struct {
	Port           string
	Env            string
	PublicBaseURL  string
	AllowedOrigins []string
}

func (s ServerConfig) IsDevelopment() bool {
	return s.Env == "development"
}

type DatabaseConfig struct {
	Host        string
	Port        string
	User        string
	Password    string
	Name        string
	SSLMode     string
	AutoMigrate bool
}

// DSN returns a postgres:// connection URL for pgx.
func (d DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     d.Host + ":" + d.Port,
		Path:     "/" + d.Name,
		RawQuery: url.Values{"sslmode": []string{d.SSLMode}}.Encode(),
	}
	return u.String()
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// Enabled reports whether a Redis host was configured.
func (r RedisConfig) Enabled() bool {
	return r.Host != ""
}

func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%s", r.Host, r.Port)
}

type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

type KafkaConfig struct {
	Brokers     []string
	OrdersTopic string
}

func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0
}

type MediaConfig struct {
	Disk string // local | s3
	Root string
	URL  string
	S3   S3Config
}

type S3Config struct {
	Bucket    string
	Region    string
	Key       string
	Secret    string
	Endpoint  string
	PublicURL string
}

func Load() *Config {
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.Printf("Warning: Could not read %s: %v", file, err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()

	// PORT, NODE_ENV, DB_USERNAME and DB_DATABASE are accepted as aliases.
	_ = v.BindEnv("SERVER_PORT", "SERVER_PORT", "PORT")
	_ = v.BindEnv("SERVER_ENV", "SERVER_ENV", "NODE_ENV")
	_ = v.BindEnv("DB_USER", "DB_USER", "DB_USERNAME")
	_ = v.BindEnv("DB_NAME", "DB_NAME", "DB_DATABASE")

	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("SERVER_ENV", "development")
	v.SetDefault("PUBLIC_BASE_URL", "http://localhost:8080")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "postgres")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_AUTO_MIGRATE", false)
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("RATE_LIMIT_REQUESTS", 100)
	v.SetDefault("RATE_LIMIT_WINDOW", time.Minute)
	v.SetDefault("KAFKA_ORDERS_TOPIC", "orders")
	v.SetDefault("MEDIA_DISK", "local")
	v.SetDefault("MEDIA_ROOT", "uploads")
	v.SetDefault("MEDIA_URL", "/uploads")
	v.SetDefault("S3_REGION", "us-east-1")

	return &Config{
		Server: ServerConfig{
			Port:           v.GetString("SERVER_PORT"),
			Env:            v.GetString("SERVER_ENV"),
			PublicBaseURL:  strings.TrimRight(v.GetString("PUBLIC_BASE_URL"), "/"),
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Database: DatabaseConfig{
			Host:        v.GetString("DB_HOST"),
			Port:        v.GetString("DB_PORT"),
			User:        v.GetString("DB_USER"),
			Password:    v.GetString("DB_PASSWORD"),
			Name:        v.GetString("DB_NAME"),
			SSLMode:     v.GetString("DB_SSLMODE"),
			AutoMigrate: v.GetBool("DB_AUTO_MIGRATE"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		RateLimit: RateLimitConfig{
			Requests: v.GetInt("RATE_LIMIT_REQUESTS"),
			Window:   v.GetDuration("RATE_LIMIT_WINDOW"),
		},
		Kafka: KafkaConfig{
			Brokers:     splitList(v.GetString("KAFKA_BROKERS")),
			OrdersTopic: v.GetString("KAFKA_ORDERS_TOPIC"),
		},
		Media: MediaConfig{
			Disk: v.GetString("MEDIA_DISK"),
			Root: v.GetString("MEDIA_ROOT"),
			URL:  strings.TrimRight(v.GetString("MEDIA_URL"), "/"),
			S3: S3Config{
				Bucket:    v.GetString("S3_BUCKET"),
				Region:    v.GetString("S3_REGION"),
				Key:       v.GetString("S3_ACCESS_KEY"),
				Secret:    v.GetString("S3_SECRET_KEY"),
				Endpoint:  v.GetString("S3_ENDPOINT"),
				PublicURL: strings.TrimRight(v.GetString("S3_PUBLIC_URL"), "/"),
			},
		},
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
