package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/packstat/packstat/pkg/service/activity"
	"github.com/packstat/packstat/pkg/service/aggregate"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

// Settings tunes the analysis pipeline. All fields have defaults matching
// the export format's observed characteristics; a TOML file overrides them.
type Settings struct {
	// StopWords are excluded from word-frequency ranking in addition to the
	// built-in list
	StopWords []string `toml:"stop_words"`

	// ChunkSize is the activity log streaming read size in bytes
	ChunkSize int `toml:"chunk_size"`

	// GapMinSeconds / GapMaxSeconds bound the inter-message gap window
	GapMinSeconds int64 `toml:"gap_min_seconds"`
	GapMaxSeconds int64 `toml:"gap_max_seconds"`

	// Workers is the per-conversation worker count (0 = number of CPUs)
	Workers int `toml:"workers"`
}

// DefaultSettings returns the built-in defaults
func DefaultSettings() Settings {
	return Settings{
		ChunkSize:     activity.DefaultChunkSize,
		GapMinSeconds: aggregate.DefaultGapMinSeconds,
		GapMaxSeconds: aggregate.DefaultGapMaxSeconds,
	}
}

// Validate checks the settings are usable
func (s *Settings) Validate() error {
	if s.ChunkSize <= 0 {
		return goerr.New("chunk_size must be positive", goerr.V("chunk_size", s.ChunkSize))
	}
	if s.GapMinSeconds < 0 {
		return goerr.New("gap_min_seconds must not be negative", goerr.V("gap_min_seconds", s.GapMinSeconds))
	}
	if s.GapMaxSeconds <= s.GapMinSeconds {
		return goerr.New("gap_max_seconds must exceed gap_min_seconds",
			goerr.V("gap_min_seconds", s.GapMinSeconds),
			goerr.V("gap_max_seconds", s.GapMaxSeconds),
		)
	}
	if s.Workers < 0 {
		return goerr.New("workers must not be negative", goerr.V("workers", s.Workers))
	}
	return nil
}

// Analyzer carries the optional analyzer configuration file flag
type Analyzer struct {
	configPath string
}

// Flags returns the CLI flags for analyzer configuration
func (x *Analyzer) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "analyzer-config",
			Usage:       "Analyzer configuration file (TOML)",
			Sources:     cli.EnvVars("PACKSTAT_ANALYZER_CONFIG"),
			Destination: &x.configPath,
		},
	}
}

// Configure loads the settings, applying the TOML file over the defaults
// when one is given
func (x *Analyzer) Configure() (Settings, error) {
	settings := DefaultSettings()
	if x.configPath == "" {
		return settings, nil
	}

	data, err := os.ReadFile(x.configPath)
	if err != nil {
		return Settings{}, goerr.Wrap(err, "failed to read analyzer config",
			goerr.V("path", x.configPath))
	}
	if err := toml.Unmarshal(data, &settings); err != nil {
		return Settings{}, goerr.Wrap(err, "failed to parse analyzer config",
			goerr.V("path", x.configPath))
	}
	if err := settings.Validate(); err != nil {
		return Settings{}, goerr.Wrap(err, "invalid analyzer config",
			goerr.V("path", x.configPath))
	}
	return settings, nil
}
