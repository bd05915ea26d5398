package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"sigs.k8s.io/yaml"
)

const (
	DEFAULT_CONFIG_PATH = "/config/config.yaml"
	DEFAULT_DOTENV_PATH = ".env"

	DEFAULT_LOG_LEVEL   = "info"
	DEFAULT_SERVER_PORT = 8000

	DEFAULT_API_URL = "https://mapi.storyblok.com/v1"
)

// Environment variables that take precedence over the config file
const (
	ENV_SPACE_ID       = "SB_SPACE_ID"
	ENV_TOKEN          = "SB_PAT"
	ENV_WEBHOOK_SECRET = "STORYBLOK_WEBHOOK_SECRET"
)

var logLevel *slog.LevelVar

// Overwritten in tests
var loadDotEnv = godotenv.Load

// Initialize the logger
func init() {
	logLevel = &slog.LevelVar{}
	opts := slog.HandlerOptions{
		Level: logLevel,
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &opts))
	slog.SetDefault(logger)
}

type Config struct {
	LogLevel  string          `json:"logLevel,omitempty"`
	Server    ServerConfig    `json:"server,omitempty"`
	Storyblok StoryblokConfig `json:"storyblok"`
}

type ServerConfig struct {
	Port int       `json:"port,omitempty"`
	SSL  SSLConfig `json:"ssl,omitempty"`
}

type SSLConfig struct {
	Enabled bool   `json:"enabled,omitempty"`
	Cert    string `json:"cert,omitempty"`
	Key     string `json:"key,omitempty"`
}

type StoryblokConfig struct {
	SpaceID       string `json:"space-id,omitempty"`
	Token         string `json:"token,omitempty"`
	WebhookSecret string `json:"webhook-secret,omitempty"`
	API           string `json:"api,omitempty"`
}

// Returns a Config with default values set
func DefaultConfig() Config {
	return Config{
		LogLevel: DEFAULT_LOG_LEVEL,
		Server: ServerConfig{
			Port: DEFAULT_SERVER_PORT,
		},
		Storyblok: StoryblokConfig{
			API: DEFAULT_API_URL,
		},
	}
}

// Loads config from file and environment, returns error if config is invalid.
// Command specific requirements are checked with ValidateServer and ValidateSeed.
// Arguments:
//
//		path: Path to config file, if empty will use DEFAULT_CONFIG_PATH
//		env: Determines if enviroment variables in the file will be expanded before decoding
//	 logLevelOverride: Override the log level given by the config
func LoadConfig(path string, env bool, logLevelOverride string) (Config, error) {
	err := loadDotEnv(DEFAULT_DOTENV_PATH)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load '%s': %w", DEFAULT_DOTENV_PATH, err)
	}

	c, err := loadConfigFile(path, env)
	if err != nil {
		return Config{}, fmt.Errorf("failed to load configuration file '%s': %w", path, err)
	}
	c.applyEnvOverrides()

	if logLevelOverride == "" {
		err = setLogLevel(c.LogLevel)
	} else {
		err = setLogLevel(logLevelOverride)
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to set log level to '%s': %w", logLevelOverride, err)
	}

	if c.Server.SSL.Enabled && (c.Server.SSL.Cert == "" || c.Server.SSL.Key == "") {
		return Config{}, fmt.Errorf("incomplete SSL configuration: cert and key must be set if SSL is enabled")
	}

	if c.Storyblok.API == "" {
		c.Storyblok.API = DEFAULT_API_URL
	}
	c.Storyblok.API = strings.TrimSuffix(c.Storyblok.API, "/")

	return c, nil
}

// Check that everything needed to receive webhooks is configured
func (c Config) ValidateServer() error {
	if c.Storyblok.WebhookSecret == "" {
		return fmt.Errorf("storyblok webhook secret must be set, either in the configuration or via %s", ENV_WEBHOOK_SECRET)
	}
	return nil
}

// Check that everything needed to talk to the management api is configured
func (c Config) ValidateSeed() error {
	if c.Storyblok.SpaceID == "" {
		return fmt.Errorf("storyblok space id must be set, either in the configuration or via %s", ENV_SPACE_ID)
	}
	if c.Storyblok.Token == "" {
		return fmt.Errorf("storyblok access token must be set, either in the configuration or via %s", ENV_TOKEN)
	}
	return nil
}

func loadConfigFile(path string, env bool) (Config, error) {
	c := DefaultConfig()

	p := path
	if p == "" {
		p = DEFAULT_CONFIG_PATH
	}

	// #nosec G304 -- Local users can decide on their file path themselves.
	f, err := os.ReadFile(p)
	if path == "" && os.IsNotExist(err) {
		slog.Info("No config file specified and default file does not exist, falling back to default values.", slog.String("default-path", p))
		return c, nil
	} else if err != nil {
		return Config{}, fmt.Errorf("failed to read config file '%s': %w", p, err)
	}

	if env {
		f = []byte(os.ExpandEnv(string(f)))
	}

	err = yaml.Unmarshal(f, &c)
	if err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config file '%s': %w", p, err)
	}

	return c, nil
}

// Secrets from the environment win over the config file
func (c *Config) applyEnvOverrides() {
	if v, ok := os.LookupEnv(ENV_SPACE_ID); ok && v != "" {
		c.Storyblok.SpaceID = v
	}
	if v, ok := os.LookupEnv(ENV_TOKEN); ok && v != "" {
		c.Storyblok.Token = v
	}
	if v, ok := os.LookupEnv(ENV_WEBHOOK_SECRET); ok && v != "" {
		c.Storyblok.WebhookSecret = v
	}
}

// Parse a given string and set the resulting log level
func setLogLevel(level string) error {
	switch strings.ToLower(level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		return fmt.Errorf("invalid log level '%s'", level)
	}
	return nil
}
