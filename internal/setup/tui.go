package setup

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/vadiminshakov/trendalert/config"
	"github.com/vadiminshakov/trendalert/internal/domain"
)

// DefaultConfigFile file written by the wizard.
const DefaultConfigFile = "config.gen.yaml"

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(highlight).
			Padding(1, 2).
			Bold(true).
			MarginBottom(1)

	stepStyle = lipgloss.NewStyle().
			Foreground(special).
			Bold(true).
			MarginTop(1).
			MarginBottom(0)
)

// answers raw wizard input.
type answers struct {
	platform     string
	marketType   string
	pair         string
	timeframe    string
	period       string
	multiplier   string
	pollInterval string
	httpAddr     string
}

func defaultAnswers() answers {
	return answers{
		platform:     config.DefaultPlatform,
		marketType:   string(config.DefaultMarketType),
		pair:         config.DefaultPair,
		timeframe:    config.DefaultTimeframe,
		period:       strconv.Itoa(config.DefaultPeriod),
		multiplier:   strconv.FormatFloat(config.DefaultMultiplier, 'f', -1, 64),
		pollInterval: config.DefaultPollInterval.String(),
	}
}

// RunTUI launches the terminal configuration wizard and returns the path of the written config.
func RunTUI() (string, error) {
	a := defaultAnswers()
	var confirm bool

	step := func(title string) {
		fmt.Print("\033[H\033[2J") // Clear screen
		fmt.Println(headerStyle.Render("TRENDALERT CONFIG WIZARD"))
		fmt.Println(stepStyle.Render(title))
	}

	// step 1: market
	fmt.Print("\033[H\033[2J")
	fmt.Println(headerStyle.Render("TRENDALERT CONFIG WIZARD"))
	fmt.Println(lipgloss.NewStyle().Foreground(subtle).Render("SuperTrend alerts straight to your Telegram.\n"))
	fmt.Println(stepStyle.Render("STEP 1: MARKET"))
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Select Exchange Platform").
				Options(
					huh.NewOption("Binance", config.PlatformBinance),
					huh.NewOption("Bybit", config.PlatformBybit),
					huh.NewOption("Hyperliquid", config.PlatformHyperliquid),
				).
				Value(&a.platform),
			huh.NewSelect[string]().
				Title("Spot or Futures?").
				Options(
					huh.NewOption("Futures", string(domain.MarketTypeFutures)),
					huh.NewOption("Spot", string(domain.MarketTypeSpot)),
				).
				Value(&a.marketType),
		),
	).Run()
	if err != nil {
		return "", err
	}

	step("STEP 2: ASSET")
	err = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Trading Pair").
				Description("Must contain underscore (e.g. BTC_USDT)").
				Value(&a.pair).
				Validate(validatePair),
			huh.NewInput().
				Title("Timeframe").
				Description("Candle size (e.g. 5m, 15m, 1h, 4h)").
				Value(&a.timeframe).
				Validate(validateTimeframe),
		),
	).Run()
	if err != nil {
		return "", err
	}

	step("STEP 3: SUPERTREND")
	err = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("ATR Period").
				Value(&a.period).
				Validate(validatePeriod),
			huh.NewInput().
				Title("Multiplier").
				Value(&a.multiplier).
				Validate(validateMultiplier),
		),
	).Run()
	if err != nil {
		return "", err
	}

	step("STEP 4: TIMING")
	err = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Check Interval").
				Description("Duration string (e.g. 5m, 15m, 1h)").
				Value(&a.pollInterval).
				Validate(func(s string) error {
					_, err := time.ParseDuration(s)
					return err
				}),
			huh.NewInput().
				Title("Status Server Address").
				Description("Optional, e.g. :8080. Leave empty to disable").
				Value(&a.httpAddr),
		),
	).Run()
	if err != nil {
		return "", err
	}

	tmp, err := a.configTmp()
	if err != nil {
		return "", err
	}

	step("FINAL CONFIRMATION")
	summary := fmt.Sprintf(
		"Platform: %s\nMarket: %s\nPair: %s\nTimeframe: %s\nSuperTrend: %d x %v\nInterval: %s\n",
		tmp.Platform, tmp.MarketType, tmp.Pair, tmp.Timeframe, tmp.SuperTrendPeriod, tmp.SuperTrendMultiplier, tmp.PollInterval,
	)
	fmt.Println(lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(1).Render(summary))

	err = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Save Configuration?").
				Affirmative("Yes, save and start").
				Negative("No, exit").
				Value(&confirm),
		),
	).Run()
	if err != nil {
		return "", err
	}
	if !confirm {
		return "", errors.New("setup cancelled by user")
	}

	if err := writeConfig(DefaultConfigFile, tmp); err != nil {
		return "", err
	}

	fmt.Println(lipgloss.NewStyle().Foreground(special).Render(fmt.Sprintf("\n✓ Configuration saved to %s\nStarting bot...", DefaultConfigFile)))
	time.Sleep(1500 * time.Millisecond) // small pause to read success message
	return DefaultConfigFile, nil
}

// configTmp converts validated answers into the config file layout.
func (a answers) configTmp() (config.ConfigTmp, error) {
	period, err := strconv.Atoi(a.period)
	if err != nil {
		return config.ConfigTmp{}, errors.Wrap(err, "invalid period")
	}
	multiplier, err := strconv.ParseFloat(a.multiplier, 64)
	if err != nil {
		return config.ConfigTmp{}, errors.Wrap(err, "invalid multiplier")
	}
	pollInterval, err := time.ParseDuration(a.pollInterval)
	if err != nil {
		return config.ConfigTmp{}, errors.Wrap(err, "invalid check interval")
	}

	tmp := config.ConfigTmp{
		Platform:             a.platform,
		MarketType:           a.marketType,
		Pair:                 a.pair,
		Timeframe:            a.timeframe,
		SuperTrendPeriod:     period,
		SuperTrendMultiplier: multiplier,
		PollInterval:         pollInterval,
		HTTPAddr:             a.httpAddr,
	}
	return tmp, tmp.Validate()
}

func writeConfig(path string, tmp config.ConfigTmp) error {
	data, err := tmp.Yaml()
	if err != nil {
		return errors.Wrap(err, "failed to generate yaml")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(err, "failed to save config file")
	}
	return nil
}

func validatePair(s string) error {
	if s == "" {
		return errors.New("pair cannot be empty")
	}
	if _, err := domain.ParsePair(s); err != nil {
		return errors.New("invalid format: must be BASE_QUOTE (e.g. BTC_USDT)")
	}
	return nil
}

func validateTimeframe(s string) error {
	_, err := domain.ParseInterval(s)
	return err
}

func validatePeriod(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return errors.New("must be a positive integer")
	}
	return nil
}

func validateMultiplier(s string) error {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return errors.New("must be a valid number")
	}
	if !d.IsPositive() {
		return errors.New("must be greater than 0")
	}
	return nil
}
