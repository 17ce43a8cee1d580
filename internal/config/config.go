package config

import (
	"fmt"
	"io/ioutil"

	"github.com/drakos74/classifier/internal/data"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// Split holds the partition fractions of a run.
type Split struct {
	Train      float64 `yaml:"train"`
	Validation float64 `yaml:"validation"`
}

// Config describes a classification run.
type Config struct {
	Dataset     string   `yaml:"dataset"`
	Seed        int64    `yaml:"seed"`
	Split       Split    `yaml:"split"`
	Classifiers []string `yaml:"classifiers"`
	Distance    string   `yaml:"distance"`
	LogLevel    string   `yaml:"log_level"`
	ReportDir   string   `yaml:"report_dir"`
	MetricsPort int      `yaml:"metrics_port"`
}

// Default returns the config used when no file is given.
func Default() Config {
	return Config{
		Seed: 7,
		Split: Split{
			Train: 0.6,
		},
		Classifiers: []string{"knn", "bayes"},
		Distance:    "euclidean",
		LogLevel:    "info",
	}
}

// Validate checks the split fractions.
func (c Config) Validate() error {
	for name, f := range map[string]float64{
		"train":      c.Split.Train,
		"validation": c.Split.Validation,
	} {
		if !(f >= 0 && f <= 1) {
			return fmt.Errorf("%s fraction %v outside [0,1]: %w", name, f, data.RangeErr)
		}
	}
	if len(c.Classifiers) == 0 {
		return fmt.Errorf("no classifiers configured: %w", data.FormatErr)
	}
	return nil
}

// Load reads the yaml config at the given path on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("could not load config '%s': %w", path, err)
	}
	err = yaml.Unmarshal(b, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("could not unmarshal config '%s': %v: %w", path, err, data.FormatErr)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	log.Info().Str("path", path).Str("dataset", cfg.Dataset).Msg("loaded config")
	return cfg, nil
}

// MustLoad loads the config at the given path
func MustLoad(path string) Config {
	cfg, err := Load(path)
	if err != nil {
		panic(fmt.Sprintf("could not load config for %s: %s", path, err.Error()))
	}
	return cfg
}
