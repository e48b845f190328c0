// Package config loads the alert bot configuration from a YAML file or
// command-line flags, and the secrets from the environment.
package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/vadiminshakov/trendalert/internal/domain"
)

// Supported platforms.
const (
	PlatformBinance     = "binance"
	PlatformBybit       = "bybit"
	PlatformHyperliquid = "hyperliquid"
)

// Environment variables.
const (
	EnvTelegramToken  = "TELEGRAM_TOKEN"
	EnvTelegramChatID = "TELEGRAM_CHAT_ID"
)

// Defaults.
const (
	DefaultPlatform         = PlatformBinance
	DefaultMarketType       = domain.MarketTypeFutures
	DefaultPair             = "BTC_USDT"
	DefaultTimeframe        = "15m"
	DefaultCandleLimit      = 100
	DefaultPeriod           = 10
	DefaultMultiplier       = 3.0
	DefaultPollInterval     = 15 * time.Minute
	DefaultRecoveryInterval = 60 * time.Second
	DefaultFetchRetries     = 2
)

// Config is the validated runtime configuration: market, indicator and polling
// settings from the file or flags, Telegram secrets from the environment.
type Config struct {
	Platform             string
	MarketType           domain.MarketType
	Pair                 domain.Pair
	Timeframe            string
	CandleLimit          int
	SuperTrendPeriod     int
	SuperTrendMultiplier float64
	PollInterval         time.Duration
	RecoveryInterval     time.Duration
	FetchRetries         int
	// HTTPAddr address of the status/metrics server, empty disables it.
	HTTPAddr string
	Debug    bool

	TelegramToken  string
	TelegramChatID int64
	// TelegramChannel public channel username (@name), set instead of TelegramChatID.
	TelegramChannel string
}

// ConfigTmp mirrors the YAML file.
type ConfigTmp struct {
	Platform             string        `yaml:"platform"`
	MarketType           string        `yaml:"market_type,omitempty"`
	Pair                 string        `yaml:"pair"`
	Timeframe            string        `yaml:"timeframe,omitempty"`
	CandleLimit          int           `yaml:"candle_limit,omitempty"`
	SuperTrendPeriod     int           `yaml:"supertrend_period,omitempty"`
	SuperTrendMultiplier float64       `yaml:"supertrend_multiplier,omitempty"`
	PollInterval         time.Duration `yaml:"poll_interval,omitempty"`
	RecoveryInterval     time.Duration `yaml:"recovery_interval,omitempty"`
	FetchRetries         *int          `yaml:"fetch_retries,omitempty"`
	HTTPAddr             string        `yaml:"http_addr,omitempty"`
}

// Get reads the configuration from os.Args and the environment.
// A .env file in the working directory is loaded first when present.
func Get() (Config, error) {
	_ = godotenv.Load()
	return parse(os.Args[1:], os.Getenv)
}

func parse(args []string, getenv func(string) string) (Config, error) {
	fs := flag.NewFlagSet("trendalert", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to yaml config")
	platform := fs.String("platform", DefaultPlatform, "exchange platform: binance, bybit or hyperliquid")
	marketType := fs.String("market", string(DefaultMarketType), "market type: spot or futures")
	pair := fs.String("pair", DefaultPair, "trade pair, example: BTC_USDT")
	timeframe := fs.String("timeframe", DefaultTimeframe, "candle timeframe, example: 15m")
	limit := fs.Int("limit", DefaultCandleLimit, "number of candles used for the indicator")
	period := fs.Int("period", DefaultPeriod, "SuperTrend ATR period")
	multiplier := fs.Float64("multiplier", DefaultMultiplier, "SuperTrend ATR multiplier")
	pollInterval := fs.Duration("pollinterval", DefaultPollInterval, "market check interval")
	recoveryInterval := fs.Duration("recoveryinterval", DefaultRecoveryInterval, "pause after a failed check")
	retries := fs.Int("retries", DefaultFetchRetries, "extra attempts for a failed candle fetch")
	httpAddr := fs.String("http", "", "status and metrics server address, example: :8080")
	debug := fs.Bool("debug", false, "enable debug logging")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	tmp := ConfigTmp{
		Platform:             *platform,
		MarketType:           *marketType,
		Pair:                 *pair,
		Timeframe:            *timeframe,
		CandleLimit:          *limit,
		SuperTrendPeriod:     *period,
		SuperTrendMultiplier: *multiplier,
		PollInterval:         *pollInterval,
		RecoveryInterval:     *recoveryInterval,
		FetchRetries:         retries,
		HTTPAddr:             *httpAddr,
	}
	if *configPath != "" {
		var err error
		tmp, err = readYaml(*configPath)
		if err != nil {
			return Config{}, err
		}
	}

	conf, err := fromTmp(tmp)
	if err != nil {
		return Config{}, err
	}
	conf.Debug = *debug

	if err := conf.loadSecrets(getenv); err != nil {
		return Config{}, err
	}

	return conf, nil
}

func readYaml(path string) (ConfigTmp, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return ConfigTmp{}, errors.Wrapf(err, "failed to read config %s", path)
	}

	var tmp ConfigTmp
	if err := yaml.Unmarshal(f, &tmp); err != nil {
		return ConfigTmp{}, errors.Wrapf(err, "failed to parse config %s", path)
	}
	return tmp, nil
}

// Validate reports whether c would load as a configuration.
func (c ConfigTmp) Validate() error {
	_, err := fromTmp(c)
	return err
}

// Yaml validates c and renders it as a complete config file, omitted fields
// filled with their defaults.
func (c ConfigTmp) Yaml() ([]byte, error) {
	conf, err := fromTmp(c)
	if err != nil {
		return nil, err
	}
	return conf.Yaml()
}

// fromTmp fills defaults for omitted fields and validates the result.
func fromTmp(c ConfigTmp) (Config, error) {
	pair, err := domain.ParsePair(c.Pair)
	if err != nil {
		return Config{}, fmt.Errorf("incorrect 'pair' param: %s, error: %w", c.Pair, err)
	}

	conf := Config{
		Platform:             c.Platform,
		MarketType:           domain.MarketType(c.MarketType),
		Pair:                 pair,
		Timeframe:            c.Timeframe,
		CandleLimit:          c.CandleLimit,
		SuperTrendPeriod:     c.SuperTrendPeriod,
		SuperTrendMultiplier: c.SuperTrendMultiplier,
		PollInterval:         c.PollInterval,
		RecoveryInterval:     c.RecoveryInterval,
		FetchRetries:         DefaultFetchRetries,
		HTTPAddr:             c.HTTPAddr,
	}
	if c.FetchRetries != nil {
		conf.FetchRetries = *c.FetchRetries
	}
	if conf.Platform == "" {
		conf.Platform = DefaultPlatform
	}
	if conf.MarketType == "" {
		conf.MarketType = DefaultMarketType
	}
	if conf.Timeframe == "" {
		conf.Timeframe = DefaultTimeframe
	}
	if conf.CandleLimit == 0 {
		conf.CandleLimit = DefaultCandleLimit
	}
	if conf.SuperTrendPeriod == 0 {
		conf.SuperTrendPeriod = DefaultPeriod
	}
	if conf.SuperTrendMultiplier == 0 {
		conf.SuperTrendMultiplier = DefaultMultiplier
	}
	if conf.PollInterval == 0 {
		conf.PollInterval = DefaultPollInterval
	}
	if conf.RecoveryInterval == 0 {
		conf.RecoveryInterval = DefaultRecoveryInterval
	}

	return conf, conf.validate()
}

func (c Config) validate() error {
	switch c.Platform {
	case PlatformBinance, PlatformBybit, PlatformHyperliquid:
	default:
		return fmt.Errorf("unsupported platform: %s", c.Platform)
	}
	if !c.MarketType.IsValid() {
		return fmt.Errorf("unsupported market type: %s", c.MarketType)
	}
	if c.Platform == PlatformHyperliquid && c.MarketType != domain.MarketTypeFutures {
		return fmt.Errorf("hyperliquid supports only the %s market", domain.MarketTypeFutures)
	}
	if _, err := domain.ParseInterval(c.Timeframe); err != nil {
		return fmt.Errorf("incorrect 'timeframe' param: %w", err)
	}
	if c.SuperTrendPeriod < 1 {
		return fmt.Errorf("supertrend period must be at least 1, got %d", c.SuperTrendPeriod)
	}
	if c.SuperTrendMultiplier <= 0 {
		return fmt.Errorf("supertrend multiplier must be positive, got %v", c.SuperTrendMultiplier)
	}
	if c.CandleLimit <= c.SuperTrendPeriod {
		return fmt.Errorf("candle limit %d must be greater than supertrend period %d", c.CandleLimit, c.SuperTrendPeriod)
	}
	if c.PollInterval <= 0 || c.RecoveryInterval <= 0 {
		return errors.New("poll and recovery intervals must be positive")
	}
	if c.FetchRetries < 0 {
		return fmt.Errorf("fetch retries must not be negative, got %d", c.FetchRetries)
	}
	return nil
}

func (c *Config) loadSecrets(getenv func(string) string) error {
	c.TelegramToken = getenv(EnvTelegramToken)
	rawChatID := getenv(EnvTelegramChatID)
	if c.TelegramToken == "" || rawChatID == "" {
		return fmt.Errorf("%s and %s environment variables must be set", EnvTelegramToken, EnvTelegramChatID)
	}

	if strings.HasPrefix(rawChatID, "@") {
		if len(rawChatID) < 2 || strings.ContainsAny(rawChatID, " \t") {
			return fmt.Errorf("invalid %s channel username %q", EnvTelegramChatID, rawChatID)
		}
		c.TelegramChannel = rawChatID
		return nil
	}

	chatID, err := strconv.ParseInt(rawChatID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", EnvTelegramChatID, rawChatID, err)
	}
	c.TelegramChatID = chatID
	return nil
}

// Yaml renders the non-secret part of the configuration as a config file.
func (c Config) Yaml() ([]byte, error) {
	retries := c.FetchRetries
	return yaml.Marshal(ConfigTmp{
		Platform:             c.Platform,
		MarketType:           string(c.MarketType),
		Pair:                 c.Pair.String(),
		Timeframe:            c.Timeframe,
		CandleLimit:          c.CandleLimit,
		SuperTrendPeriod:     c.SuperTrendPeriod,
		SuperTrendMultiplier: c.SuperTrendMultiplier,
		PollInterval:         c.PollInterval,
		RecoveryInterval:     c.RecoveryInterval,
		FetchRetries:         &retries,
		HTTPAddr:             c.HTTPAddr,
	})
}
