package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config carries everything a component needs at construction time.
// Nothing in internal/ reads the environment directly; main builds one of
// these and hands the relevant section to each component.
type Config struct {
	Server   ServerConfig
	Twilio   TwilioConfig
	Deepgram DeepgramConfig
	Mail     MailConfig
	Database DatabaseConfig
	Pipeline PipelineConfig
	API      APIConfig
	LogLevel string
}

type ServerConfig struct {
	Port string
	// PublicBaseURL is the externally reachable base URL used when building
	// webhook callback addresses in call-control markup.
	PublicBaseURL string
}

type TwilioConfig struct {
	AccountSID string
	AuthToken  string
	APIBaseURL string
}

type DeepgramConfig struct {
	APIKey  string
	BaseURL string
}

type MailConfig struct {
	APIKey    string
	BaseURL   string
	Sender    string
	Recipient string
}

type DatabaseConfig struct {
	// PostgresURI empty means the in-memory store is used.
	PostgresURI string
}

type PipelineConfig struct {
	PollAttempts     int
	PollInterval     time.Duration
	MaxRecordingSecs int
}

type APIConfig struct {
	// BearerSecret protects the transcript management endpoints.
	BearerSecret string
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:          envOrDefault("PORT", "8080"),
			PublicBaseURL: os.Getenv("PUBLIC_BASE_URL"),
		},
		Twilio: TwilioConfig{
			AccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
			AuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
			APIBaseURL: envOrDefault("TWILIO_API_BASE_URL", "https://api.twilio.com"),
		},
		Deepgram: DeepgramConfig{
			APIKey:  os.Getenv("DEEPGRAM_API_KEY"),
			BaseURL: envOrDefault("DEEPGRAM_BASE_URL", "https://api.deepgram.com"),
		},
		Mail: MailConfig{
			APIKey:    os.Getenv("MAIL_API_KEY"),
			BaseURL:   envOrDefault("MAIL_API_BASE_URL", "https://api.resend.com"),
			Sender:    os.Getenv("MAIL_SENDER"),
			Recipient: os.Getenv("MAIL_RECIPIENT"),
		},
		Database: DatabaseConfig{
			PostgresURI: os.Getenv("POSTGRES_URI"),
		},
		Pipeline: PipelineConfig{
			PollAttempts:     envIntOrDefault("RECORDING_POLL_ATTEMPTS", 10),
			PollInterval:     envDurationOrDefault("RECORDING_POLL_INTERVAL", time.Second),
			MaxRecordingSecs: envIntOrDefault("MAX_RECORDING_SECONDS", 120),
		},
		API: APIConfig{
			BearerSecret: os.Getenv("API_BEARER_SECRET"),
		},
		LogLevel: os.Getenv("LOG_LEVEL"),
	}
}

// Validate checks the credentials the pipeline cannot run without. Mail and
// Postgres are individually optional, but at least one transcript sink must
// be configured.
func (c *Config) Validate() error {
	if c.Twilio.AccountSID == "" || c.Twilio.AuthToken == "" {
		return fmt.Errorf("config: TWILIO_ACCOUNT_SID and TWILIO_AUTH_TOKEN are required")
	}
	if c.Deepgram.APIKey == "" {
		return fmt.Errorf("config: DEEPGRAM_API_KEY is required")
	}
	if !c.Mail.Enabled() && c.Database.PostgresURI == "" {
		return fmt.Errorf("config: configure POSTGRES_URI or mail delivery (MAIL_API_KEY, MAIL_SENDER, MAIL_RECIPIENT)")
	}
	if c.Pipeline.PollAttempts <= 0 {
		return fmt.Errorf("config: RECORDING_POLL_ATTEMPTS must be positive")
	}
	return nil
}

func (m MailConfig) Enabled() bool {
	return m.APIKey != "" && m.Sender != "" && m.Recipient != ""
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOrDefault(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envDurationOrDefault(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
