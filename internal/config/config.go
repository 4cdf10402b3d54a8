package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/atomicstack/navmenu/internal/app"
	"github.com/atomicstack/navmenu/internal/menu"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

// environment lists the NAVMENU_* variables; flags take precedence.
type environment struct {
	Width     int           `env:"WIDTH" envDefault:"0"`
	Height    int           `env:"HEIGHT" envDefault:"0"`
	Footer    bool          `env:"FOOTER" envDefault:"true"`
	Trace     bool          `env:"TRACE"`
	LogFile   string        `env:"LOG_FILE"`
	Dwell     time.Duration `env:"DWELL" envDefault:"300ms"`
	LinksFile string        `env:"LINKS_FILE"`
	Watch     bool          `env:"WATCH"`
}

const envPrefix = "NAVMENU_"

// Load parses configuration from CLI arguments, the process environment and
// an optional .env file in the working directory.
func Load() (Config, error) {
	if err := loadDotenv(); err != nil {
		return Config{}, err
	}
	return LoadArgs(os.Args[1:], os.Environ())
}

// loadDotenv exports the given files (default .env) into the process
// environment. Missing files are skipped; unreadable or malformed ones fail.
func loadDotenv(filenames ...string) error {
	err := godotenv.Load(filenames...)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load .env: %w", err)
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	var defaults environment
	if err := env.ParseWithOptions(&defaults, env.Options{
		Environment: parseEnv(environ),
		Prefix:      envPrefix,
	}); err != nil {
		return Config{}, fmt.Errorf("environment: %w", err)
	}

	fs := flag.NewFlagSet("navmenu", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	width := fs.Int("width", defaults.Width, "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", defaults.Height, "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", defaults.Footer, "show the key help footer")
	trace := fs.Bool("trace", defaults.Trace, "enable verbose JSON trace logging")
	logFile := fs.String("log-file", defaults.LogFile, "path to the log file")
	dwell := fs.Duration("dwell", defaults.Dwell, "how long the menu stays in the opening/closing states")
	links := fs.String("links", defaults.LinksFile, "YAML file describing the menu links")
	watch := fs.Bool("watch", defaults.Watch, "reload the links file when it changes")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
			Dwell:      *dwell,
			LinksFile:  *links,
			Watch:      *watch,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"width":   strconv.Itoa(*width),
			"height":  strconv.Itoa(*height),
			"footer":  strconv.FormatBool(*footer),
			"trace":   strconv.FormatBool(*trace),
			"logFile": *logFile,
			"dwell":   dwell.String(),
			"links":   *links,
			"watch":   strconv.FormatBool(*watch),
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

var (
	ErrDwell      = errors.New("dwell must be > 0")
	ErrWatchLinks = errors.New("watch requires a links file")
)

// Validate checks values that flag parsing cannot, including that the
// links file, when given, loads cleanly.
func Validate(cfg Config) error {
	if cfg.App.Dwell <= 0 {
		return fmt.Errorf("%w (got %s)", ErrDwell, cfg.App.Dwell)
	}
	if cfg.App.Watch && cfg.App.LinksFile == "" {
		return ErrWatchLinks
	}
	if cfg.App.LinksFile != "" {
		if _, err := menu.LoadFile(cfg.App.LinksFile); err != nil {
			return err
		}
	}
	return nil
}
