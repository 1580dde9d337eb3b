package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Twilio     TwilioConfig     `yaml:"twilio"`
	Whisper    WhisperConfig    `yaml:"whisper"`
	Classifier ClassifierConfig `yaml:"classifier"`
	Notify     NotifyConfig     `yaml:"notify"`
	Audio      AudioConfig      `yaml:"audio"`
	CORS       CORSConfig       `yaml:"cors"`
	Log        LogConfig        `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"5001"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"120s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	WebhookPerMin   int           `yaml:"webhook_per_min"  env:"SERVER_WEBHOOK_PER_MIN"  env-default:"120"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	MigrateOnStart  bool          `yaml:"migrate_on_start"   env:"DATABASE_MIGRATE_ON_START"   env-default:"true"`
}

// TwilioConfig holds the WhatsApp transport credentials.
type TwilioConfig struct {
	AccountSID      string        `yaml:"account_sid"      env:"TWILIO_ACCOUNT_SID" env-required:"true"`
	AuthToken       string        `yaml:"auth_token"       env:"TWILIO_AUTH_TOKEN"  env-required:"true"`
	FromNumber      string        `yaml:"from_number"      env:"TWILIO_PHONE"       env-default:"whatsapp:+1234567890"`
	BaseURL         string        `yaml:"base_url"         env:"TWILIO_BASE_URL"    env-default:"https://api.twilio.com"`
	SendTimeout     time.Duration `yaml:"send_timeout"     env:"TWILIO_SEND_TIMEOUT"     env-default:"15s"`
	DownloadTimeout time.Duration `yaml:"download_timeout" env:"TWILIO_DOWNLOAD_TIMEOUT" env-default:"30s"`
}

// WhisperConfig holds the transcription collaborator settings.
type WhisperConfig struct {
	BaseURL  string        `yaml:"base_url" env:"WHISPER_BASE_URL" env-default:"http://localhost:9000"`
	Language string        `yaml:"language" env:"WHISPER_LANGUAGE" env-default:"en"`
	Timeout  time.Duration `yaml:"timeout"  env:"WHISPER_TIMEOUT"  env-default:"60s"`
}

// ClassifierConfig holds the grocery classification collaborator settings.
type ClassifierConfig struct {
	BaseURL string        `yaml:"base_url" env:"CLASSIFIER_BASE_URL" env-default:"http://localhost:9100"`
	Timeout time.Duration `yaml:"timeout"  env:"CLASSIFIER_TIMEOUT"  env-default:"30s"`
}

// NotifyConfig holds notification fan-out settings. TestRecipients is an
// explicit allow-list merged into the resolved recipient set; it replaces the
// hardcoded test shopkeeper the original deployment carried.
type NotifyConfig struct {
	TestRecipientsRaw string `yaml:"test_recipients" env:"NOTIFY_TEST_RECIPIENTS"`

	// TestRecipients is parsed from TestRecipientsRaw during validation.
	TestRecipients []string `yaml:"-" env:"-"`
}

// AudioConfig holds voice-note cache settings.
type AudioConfig struct {
	CacheDir      string `yaml:"cache_dir"      env:"AUDIO_CACHE_DIR"      env-default:"audio_cache"`
	RetentionDays int    `yaml:"retention_days" env:"AUDIO_RETENTION_DAYS" env-default:"30"`
}

// CORSConfig holds CORS settings for the admin surface.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
