package setup

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/povarna/generative-ai-with-go/advent-of-code/internal/aoc"
	"github.com/povarna/generative-ai-with-go/advent-of-code/internal/config"
	"github.com/povarna/generative-ai-with-go/advent-of-code/internal/input"
	"github.com/povarna/generative-ai-with-go/advent-of-code/internal/runner"
	"github.com/rs/zerolog"
)

// Config holds the settings read from the environment. Non-empty values override
// the ones from the YAML file.
type Config struct {
	ConfigPath string
	InputsDir  string
	APIPort    string
	LogLevel   string
}

type Dependencies struct {
	Settings *config.Config
	Runner   *runner.Runner
	Logger   *zerolog.Logger
}

func LoadConfig() *Config {
	return &Config{
		ConfigPath: getEnv("AOC_CONFIG_PATH", config.DefaultPath),
		InputsDir:  getEnv("AOC_INPUTS_DIR", ""),
		APIPort:    getEnv("AOC_API_PORT", ""),
		LogLevel:   getEnv("LOG_LEVEL", ""),
	}
}

func Wire(cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	settings, err := config.Load(cfg.ConfigPath)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Warn().Str("path", cfg.ConfigPath).Msg("Config file not found, using defaults")
		settings = config.Default()
	} else if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.InputsDir != "" {
		settings.InputsDir = cfg.InputsDir
	}
	if cfg.APIPort != "" {
		settings.API.Port = cfg.APIPort
	}
	if cfg.LogLevel != "" {
		settings.LogLevel = cfg.LogLevel
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	if lvl, err := zerolog.ParseLevel(settings.LogLevel); err == nil {
		l := logger.Level(lvl)
		logger = &l
	}

	registry, err := aoc.NewRegistry()
	if err != nil {
		return nil, fmt.Errorf("failed to register puzzles: %w", err)
	}

	loader := input.NewFileLoader(settings.InputsDir)
	run := runner.NewRunner(registry, loader, logger)

	logger.Debug().
		Str("inputs_dir", settings.InputsDir).
		Int("puzzles", len(registry.List())).
		Msg("Dependencies wired")

	return &Dependencies{
		Settings: settings,
		Runner:   run,
		Logger:   logger,
	}, nil
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}
