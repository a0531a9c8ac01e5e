package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/sutticue/flashcard-game/internal/quizgen"
	"github.com/sutticue/flashcard-game/internal/round"
	"github.com/sutticue/flashcard-game/internal/vocab"
)

// EnvPrefix prefixes every environment variable, e.g. WORDQUIZ_DATA.
const EnvPrefix = "WORDQUIZ"

// DefaultDataPath is the dataset used when none is configured.
const DefaultDataPath = "data/oxford-5000-words.json"

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds application configuration loaded from defaults, an optional
// wordquiz.yaml, the environment and command-line flags, in increasing
// priority.
type Config struct {
	Data        string         `mapstructure:"data"`         // dataset file path or http(s) URL
	Levels      string         `mapstructure:"levels"`       // comma-separated CEFR allow-list
	RoundLength int            `mapstructure:"round_length"` // questions per round
	Distractors string         `mapstructure:"distractors"`  // distractor strategy name
	Picker      string         `mapstructure:"picker"`       // target picker name
	Scheme      string         `mapstructure:"scheme"`       // outcome scheme name
	Thresholds  map[string]int `mapstructure:"thresholds"`   // per-tier minimum accuracy overrides
	AllowSkip   bool           `mapstructure:"allow_skip"`   // whether skip is offered
	Seed        uint64         `mapstructure:"seed"`         // fixed RNG seed, 0 for random
	Log         Log            `mapstructure:"log"`
	Server      Server         `mapstructure:"server"`
}

// Log contains logging settings.
type Log struct {
	Level string `mapstructure:"level"` // debug, info, warn, error
	File  string `mapstructure:"file"`  // log file; required for logs while the TUI runs
	Env   string `mapstructure:"env"`   // "production" selects the JSON encoder
}

// Server contains HTTP adapter settings.
type Server struct {
	Addr            string        `mapstructure:"addr"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxRounds       int           `mapstructure:"max_rounds"`
}

// Options tells Load where to look besides the defaults.
type Options struct {
	// ConfigFile is an explicit config file; it must exist when set.
	ConfigFile string

	// EnvFile is a dotenv file loaded before reading the environment.
	// Missing files are ignored. Empty means ".env".
	EnvFile string

	// Flags are bound on top of everything else. Only flags the user
	// actually set override other sources.
	Flags *pflag.FlagSet

	// Defaults override the built-in defaults, keyed like the config file.
	Defaults map[string]any
}

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"data":        "data",
	"levels":      "levels",
	"rounds":      "round_length",
	"distractors": "distractors",
	"picker":      "picker",
	"scheme":      "scheme",
	"seed":        "seed",
	"log-level":   "log.level",
	"log-file":    "log.file",
	"addr":        "server.addr",
}

// Load reads configuration from defaults, files, environment and flags.
func Load(opts Options) (*Config, error) {
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error loading %s: %w", envFile, err)
	}

	v := viper.New()
	setDefaults(v)
	for k, val := range opts.Defaults {
		v.SetDefault(k, val)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	} else {
		v.SetConfigName("wordquiz")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(dir + "/wordquiz")
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error loading config file: %w", err)
			}
		}
	}

	if opts.Flags != nil {
		if err := bindFlags(v, opts.Flags); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("data", DefaultDataPath)
	v.SetDefault("levels", "B2,C1")
	v.SetDefault("round_length", round.DefaultRoundLength)
	v.SetDefault("distractors", quizgen.DistractorUniform)
	v.SetDefault("picker", quizgen.PickerRandom)
	v.SetDefault("scheme", round.SchemeStars)
	v.SetDefault("allow_skip", true)
	v.SetDefault("seed", 0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("log.env", "development")
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("server.read_timeout", "10s")
	v.SetDefault("server.write_timeout", "10s")
	v.SetDefault("server.shutdown_timeout", "5s")
	v.SetDefault("server.max_rounds", 1000)
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag --%s: %w", name, err)
		}
	}
	return nil
}

// Validate checks names and ranges.
func (c *Config) Validate() error {
	if c.Data == "" {
		return fmt.Errorf("%w: data source is empty", ErrInvalidConfig)
	}
	if c.RoundLength <= 0 {
		return fmt.Errorf("%w: round_length must be positive, got %d", ErrInvalidConfig, c.RoundLength)
	}
	if _, err := vocab.ParseLevels(c.Levels); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if !slices.Contains(quizgen.DistractorStrategies(), strings.ToLower(c.Distractors)) {
		return fmt.Errorf("%w: unknown distractor strategy %q (want one of %s)",
			ErrInvalidConfig, c.Distractors, strings.Join(quizgen.DistractorStrategies(), ", "))
	}
	if !slices.Contains(quizgen.TargetPickers(), strings.ToLower(c.Picker)) {
		return fmt.Errorf("%w: unknown picker %q (want one of %s)",
			ErrInvalidConfig, c.Picker, strings.Join(quizgen.TargetPickers(), ", "))
	}
	if _, err := c.OutcomeScheme(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// LevelSet parses the level allow-list.
func (c *Config) LevelSet() (vocab.LevelSet, error) {
	return vocab.ParseLevels(c.Levels)
}

// OutcomeScheme returns the configured scheme with threshold overrides applied.
func (c *Config) OutcomeScheme() (round.OutcomeScheme, error) {
	scheme, err := round.SchemeByName(c.Scheme)
	if err != nil {
		return round.OutcomeScheme{}, err
	}
	if len(c.Thresholds) == 0 {
		return scheme, nil
	}
	mins := make(map[round.Tier]int, len(c.Thresholds))
	for tier, m := range c.Thresholds {
		mins[round.Tier(strings.ToLower(tier))] = m
	}
	return scheme.WithThresholds(mins)
}

// QuizConfig returns the question generator settings.
func (c *Config) QuizConfig() quizgen.Config {
	qc := quizgen.DefaultConfig()
	qc.Distractors = c.Distractors
	qc.Picker = c.Picker
	return qc
}

// RoundConfig returns the round settings.
func (c *Config) RoundConfig() (round.Config, error) {
	scheme, err := c.OutcomeScheme()
	if err != nil {
		return round.Config{}, err
	}
	return round.Config{
		RoundLength: c.RoundLength,
		AllowSkip:   c.AllowSkip,
		Scheme:      scheme,
	}, nil
}
