package config

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const (
	// DefaultBaseURL is the address of the TVMaze API.
	DefaultBaseURL = "https://api.tvmaze.com"

	// DefaultPlaceholderImageURL is shown when a show has no image or its image fails to load.
	DefaultPlaceholderImageURL = "https://via.placeholder.com/210x295/667eea/ffffff?text=No+Image"

	// DefaultUserAgent is the default User-Agent string sent with all HTTP requests.
	DefaultUserAgent = "ShowSearch/1.0 (+https://github.com/Belphemur/ShowSearch)"

	// DefaultDemoQuery is searched once shortly after a front end becomes ready.
	DefaultDemoQuery = "girls"

	defaultDemoDelay = 500 * time.Millisecond
)

type Config struct {
	BaseURL               string `mapstructure:"base_url"`
	PlaceholderImageURL   string `mapstructure:"placeholder_image_url"`
	ProxyConnectionString string `mapstructure:"proxy_connection_string"`
	ClientTimeout         string `mapstructure:"client_timeout"` // Go duration string like "30s", "1m", etc.
	UserAgent             string `mapstructure:"user_agent"`
	Server                struct {
		Port    int    `mapstructure:"port"`
		Address string `mapstructure:"address"`
	} `mapstructure:"server"`
	Metrics struct {
		Enabled bool `mapstructure:"enabled"`
		Port    int  `mapstructure:"port"`
	} `mapstructure:"metrics"`
	Demo struct {
		Query string `mapstructure:"query"`
		Delay string `mapstructure:"delay"` // Go duration string
	} `mapstructure:"demo"`
	LogLevel  string `mapstructure:"log_level"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

var (
	globalConfig *Config
	logger       zerolog.Logger
)

func init() {
	// Initialize zerolog with console writer for human-readable output
	logger = newConsoleLogger(os.Stdout, false)

	config, err := LoadConfig()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load config")
	}
	Apply(config)
}

func newConsoleLogger(out io.Writer, noColor bool) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{
		Out:     out,
		NoColor: noColor,
	}).With().Timestamp().Logger()
}

// Apply makes cfg the process-wide configuration and sets the log level it asks for.
func Apply(cfg *Config) {
	level := zerolog.InfoLevel
	if cfg.LogLevel != "" {
		if parsedLevel, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
			level = parsedLevel
		} else {
			logger.Warn().Str("invalid_level", cfg.LogLevel).Msg("Invalid log level, using default 'info'")
		}
	}

	zerolog.SetGlobalLevel(level)
	logger = logger.Level(level)
	globalConfig = cfg

	logger.Debug().Str("level", level.String()).Msg("Logging configured")
}

// LoadConfig reads config.yaml (if any), APP_* environment variables and
// flags bound to the global viper instance.
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Environment variable support
	viper.AutomaticEnv()
	viper.SetEnvPrefix("APP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	_ = viper.BindEnv("log_level", "LOG_LEVEL")

	viper.SetDefault("base_url", DefaultBaseURL)
	viper.SetDefault("placeholder_image_url", DefaultPlaceholderImageURL)
	viper.SetDefault("client_timeout", "30s")
	viper.SetDefault("server.address", "localhost")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("metrics.enabled", false)
	viper.SetDefault("metrics.port", 9090)
	viper.SetDefault("demo.query", DefaultDemoQuery)
	viper.SetDefault("demo.delay", defaultDemoDelay.String())

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}
	if config.UserAgent == "" {
		config.UserAgent = DefaultUserAgent
	}
	config.BaseURL = strings.TrimRight(config.BaseURL, "/")

	return &config, nil
}

// DemoDelay parses Demo.Delay, falling back to 500ms when it is unset or invalid.
func (c *Config) DemoDelay() time.Duration {
	if c.Demo.Delay == "" {
		return defaultDemoDelay
	}
	d, err := time.ParseDuration(c.Demo.Delay)
	if err != nil || d < 0 {
		logger.Warn().Str("delay", c.Demo.Delay).Msg("Invalid demo delay, using default 500ms")
		return defaultDemoDelay
	}
	return d
}

func GetConfig() *Config {
	return globalConfig
}

func GetUserAgent() string {
	if globalConfig != nil && globalConfig.UserAgent != "" {
		return globalConfig.UserAgent
	}

	return DefaultUserAgent
}

func GetLogger() zerolog.Logger {
	return logger
}

// SetLogOutput redirects the logger, keeping the configured level. The TUI uses
// it to keep log lines off the terminal it draws on.
func SetLogOutput(out io.Writer) {
	level := logger.GetLevel()
	logger = newConsoleLogger(out, true).Level(level)
}
