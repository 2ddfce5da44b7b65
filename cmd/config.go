package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"printorders/internal/core/domain/model/stage"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8082"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME"`
	DBSslMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	S3Bucket    string `env:"S3_BUCKET"`
	S3Region    string `env:"S3_REGION"`
	S3AccessKey string `env:"S3_ACCESS_KEY"`
	S3SecretKey string `env:"S3_SECRET_KEY"`
	S3Endpoint  string `env:"S3_ENDPOINT"`

	UploadURLTTL   time.Duration `env:"ARTIFACT_UPLOAD_URL_TTL" envDefault:"60s"`
	ViewURLTTL     time.Duration `env:"ARTIFACT_VIEW_URL_TTL" envDefault:"60s"`
	LocalUploadDir string        `env:"LOCAL_UPLOAD_DIR" envDefault:"uploads"`

	AuthJWTSecret       string        `env:"AUTH_JWT_SECRET"`
	AuthJWTIssuer       string        `env:"AUTH_JWT_ISSUER"`
	AuthRoleClaimMaxAge time.Duration `env:"AUTH_ROLE_CLAIM_MAX_AGE" envDefault:"1h"`

	StageUnknownPolicy string `env:"STAGE_UNKNOWN_POLICY" envDefault:"permissive"`
	StatsTimezone      string `env:"STATS_TIMEZONE"`
	StatsDueSoonDays   int    `env:"STATS_DUE_SOON_DAYS" envDefault:"3"`

	KafkaHost              []string `env:"KAFKA_HOST" envSeparator:","`
	KafkaOrderChangedTopic string   `env:"KAFKA_ORDER_CHANGED_TOPIC" envDefault:"print-order-stage-changed"`

	WooCommerceURL            string `env:"WOOCOMMERCE_URL"`
	WooCommerceConsumerKey    string `env:"WOOCOMMERCE_CONSUMER_KEY"`
	WooCommerceConsumerSecret string `env:"WOOCOMMERCE_CONSUMER_SECRET"`

	UpstreamSyncSchedule  string `env:"UPSTREAM_SYNC_SCHEDULE"`
	StatsSnapshotSchedule string `env:"STATS_SNAPSHOT_SCHEDULE"`

	OtelExporterEndpoint string `env:"OTEL_EXPORTER_ENDPOINT"`
}

// LoadConfig reads an optional .env file from the working directory and then
// parses the process environment. Variables already set win over the file.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if _, err := cfg.UnknownStagePolicy(); err != nil {
		return Config{}, err
	}
	if _, err := cfg.StatsLocation(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DSN builds the postgres connection string for gorm.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// UnknownStagePolicy parses STAGE_UNKNOWN_POLICY.
func (c Config) UnknownStagePolicy() (stage.UnknownPolicy, error) {
	return stage.ParseUnknownPolicy(c.StageUnknownPolicy)
}

// StatsLocation resolves STATS_TIMEZONE; empty means the process local zone.
func (c Config) StatsLocation() (*time.Location, error) {
	if c.StatsTimezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.StatsTimezone)
	if err != nil {
		return nil, fmt.Errorf("STATS_TIMEZONE: %w", err)
	}
	return loc, nil
}
