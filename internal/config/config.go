package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/Veraticus/tally/internal/common"
	"github.com/Veraticus/tally/internal/ledger"
	"github.com/Veraticus/tally/internal/model"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable viper consults.
const EnvPrefix = "TALLY"

// Configuration keys.
const (
	KeyInitialBalance = "atm.initial_balance"
	KeyInitialPIN     = "atm.initial_pin"
	KeyMaxPINAttempts = "atm.max_pin_attempts"
	KeyLogLevel       = "logging.level"
	KeyLogFormat      = "logging.format"
)

// DefaultMaxPINAttempts is how many wrong PINs the ATM accepts before locking out.
const DefaultMaxPINAttempts = 3

// Config is the resolved application configuration.
type Config struct {
	Logging LoggingConfig
	ATM     ATMConfig
}

// ATMConfig configures the ATM simulator.
type ATMConfig struct {
	InitialBalance decimal.Decimal
	InitialPIN     model.PIN
	MaxPINAttempts int
}

// LoggingConfig configures slog.
type LoggingConfig struct {
	Format string
	Level  slog.Level
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyInitialBalance, "0")
	v.SetDefault(KeyInitialPIN, string(model.DefaultPIN))
	v.SetDefault(KeyMaxPINAttempts, DefaultMaxPINAttempts)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
}

// BindEnv makes v read TALLY_* environment variables, e.g. TALLY_ATM_INITIAL_PIN.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load resolves the configuration held by v.
// Precedence is whatever v was set up with: flags, TALLY_* env vars, config file, defaults.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	balance, err := decimal.NewFromString(strings.TrimSpace(v.GetString(KeyInitialBalance)))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", common.ErrInvalidConfig, KeyInitialBalance, err)
	}

	level, err := common.ParseLevel(v.GetString(KeyLogLevel))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		ATM: ATMConfig{
			InitialBalance: balance,
			InitialPIN:     model.PIN(strings.TrimSpace(v.GetString(KeyInitialPIN))),
			MaxPINAttempts: v.GetInt(KeyMaxPINAttempts),
		},
		Logging: LoggingConfig{
			Level:  level,
			Format: strings.ToLower(strings.TrimSpace(v.GetString(KeyLogFormat))),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.ATM.InitialBalance.IsNegative() {
		return fmt.Errorf("%w: %s must not be negative", common.ErrInvalidConfig, KeyInitialBalance)
	}
	if err := c.ATM.InitialPIN.Validate(); err != nil {
		return fmt.Errorf("%w: %s: %w", common.ErrInvalidConfig, KeyInitialPIN, err)
	}
	if c.ATM.MaxPINAttempts < 1 {
		return fmt.Errorf("%w: %s must be at least 1", common.ErrInvalidConfig, KeyMaxPINAttempts)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: %s must be console or json", common.ErrInvalidConfig, KeyLogFormat)
	}
	return nil
}

// LedgerConfig returns the values the ATM ledger starts with.
func (c ATMConfig) LedgerConfig() ledger.Config {
	return ledger.Config{
		InitialBalance: c.InitialBalance,
		InitialPIN:     c.InitialPIN,
	}
}
