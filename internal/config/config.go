package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Env      Env
	Server   ServerConfig
	Database DatabaseConfig
	Minio    MinioConfig
	NATS     NATSConfig
	Upload   UploadConfig
	Tasks    TaskConfig
	Notifier NotifierConfig
}

type Env struct {
	Env string `envconfig:"ENV" default:"DEV"`
}

type ServerConfig struct {
	Host string `envconfig:"SERVER_HOST" default:"localhost"`
	Port string `envconfig:"SERVER_PORT" default:"8080"`
}

type DatabaseConfig struct {
	Host           string        `envconfig:"DB_HOST" required:"true"`
	Port           int           `envconfig:"DB_PORT" default:"5432"`
	User           string        `envconfig:"DB_USER" required:"true"`
	Password       string        `envconfig:"DB_PASSWORD" required:"true"`
	Name           string        `envconfig:"DB_NAME" required:"true"`
	SSLMode        string        `envconfig:"DB_SSLMODE" default:"disable"`
	MaxOpenCons    int           `envconfig:"DB_MAX_OPEN_CONS" default:"25"`
	MaxIdleCons    int           `envconfig:"DB_MAX_IDLE_CONS" default:"5"`
	ConMaxLifeTime time.Duration `envconfig:"DB_CONMAX_LIFE_TIME" default:"5m"`
}

type MinioConfig struct {
	Endpoint      string `envconfig:"MINIO_ENDPOINT" required:"true"`
	BucketName    string `envconfig:"MINIO_BUCKET_NAME" default:"jc1976bucket"`
	AccessKey     string `envconfig:"MINIO_ACCESS_KEY" required:"true"`
	SecretKey     string `envconfig:"MINIO_SECRET_KEY" required:"true"`
	UseSSL        bool   `envconfig:"MINIO_USE_SSL" default:"false"`
	PublicBaseURL string `envconfig:"MINIO_PUBLIC_BASE_URL" default:"http://localhost:9000"`
}

type NATSConfig struct {
	URL          string `envconfig:"NATS_URL" required:"true"`
	StreamName   string `envconfig:"NATS_STREAM_NAME" default:"STORAGE_TASKS"`
	Subject      string `envconfig:"NATS_SUBJECT" default:"storage.tasks"`
	ConsumerName string `envconfig:"NATS_CONSUMER_NAME" default:"book-explorer-worker"`
	DeliverGroup string `envconfig:"NATS_DELIVER_GROUP" default:"storage-workers"`
}

// UploadConfig carries the validation rules for uploaded book lists. The
// required header set is injected so alternate schemas stay testable.
type UploadConfig struct {
	RequiredHeaders []string `envconfig:"UPLOAD_REQUIRED_HEADERS" default:"BOOK AUTHOR,BOOK TITLE,DATE PUBLISHED,PUBLISHER NAME,UNIQUE IDENTIFER"`
	MaxSizeBytes    int64    `envconfig:"UPLOAD_MAX_SIZE_BYTES" default:"10485760"` // 10MB
}

type TaskConfig struct {
	PollInterval       time.Duration `envconfig:"TASK_POLL_INTERVAL" default:"500ms"`
	UploadWaitBudget   time.Duration `envconfig:"TASK_UPLOAD_WAIT_BUDGET" default:"3s"`
	RetrieveWaitBudget time.Duration `envconfig:"TASK_RETRIEVE_WAIT_BUDGET" default:"5s"`
	MaxAttempts        int           `envconfig:"TASK_MAX_ATTEMPTS" default:"5"`
	RetryBaseDelay     time.Duration `envconfig:"TASK_RETRY_BASE_DELAY" default:"1s"`
	RetryMaxDelay      time.Duration `envconfig:"TASK_RETRY_MAX_DELAY" default:"30s"`
	ResolvedTTL        time.Duration `envconfig:"TASK_RESOLVED_TTL" default:"24h"`
	CleanupEvery       time.Duration `envconfig:"TASK_CLEANUP_EVERY" default:"15m"`
}

type NotifierConfig struct {
	WebhookURL string        `envconfig:"NOTIFIER_WEBHOOK_URL" default:"https://postman-echo.com/post"`
	Timeout    time.Duration `envconfig:"NOTIFIER_TIMEOUT" default:"10s"`
}

func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
