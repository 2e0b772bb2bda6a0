package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/drakos74/weight-lab/internal/learn"
	"github.com/drakos74/weight-lab/internal/model"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

const (
	path          = "infra/config"
	experimentKey = "experiment"
)

// ErrUnsupportedFormat is returned for config files that are neither json nor yaml.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// Experiment holds the defaults of the experiment and its presentation.
type Experiment struct {
	Parameters model.Parameters `json:"parameters" yaml:"parameters"`
	Rates      []float64        `json:"rates" yaml:"rates"`
	Port       int              `json:"port" yaml:"port"`
	Detail     int              `json:"detail" yaml:"detail"`
}

// Default returns the built-in experiment config.
func Default() Experiment {
	return Experiment{
		Parameters: model.DefaultParameters(),
		Rates:      learn.DefaultRates(),
		Port:       6122,
		Detail:     10,
	}
}

// Load decodes the given file into v, based on the file extension.
func Load(file string, v interface{}) error {
	b, err := ioutil.ReadFile(file)
	if err != nil {
		return fmt.Errorf("could not read config '%s': %w", file, err)
	}

	switch ext := strings.ToLower(filepath.Ext(file)); ext {
	case ".json":
		err = json.Unmarshal(b, v)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, v)
	default:
		return fmt.Errorf("'%s' for %s: %w", ext, file, ErrUnsupportedFormat)
	}
	if err != nil {
		return fmt.Errorf("could not decode config '%s': %w", file, err)
	}
	return nil
}

// LoadExperiment loads the experiment config from the given file on top of the defaults.
// Without a file name the experiment config under infra/config is used when present,
// otherwise the built-in defaults.
func LoadExperiment(file string) (Experiment, error) {
	cfg := Default()
	if file == "" {
		file = fileName(experimentKey)
		if _, err := os.Stat(file); err != nil {
			return cfg, nil
		}
		MustLoad(experimentKey, &cfg)
	} else if err := Load(file, &cfg); err != nil {
		return cfg, err
	}
	if len(cfg.Rates) == 0 {
		cfg.Rates = learn.DefaultRates()
	}
	if err := cfg.Parameters.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid parameters in '%s': %w", file, err)
	}
	log.Info().Str("file", file).Msg("loaded experiment config")
	return cfg, nil
}

// MustLoad loads the config for the given key
func MustLoad(key string, v interface{}) {
	err := Load(fileName(key), v)
	if err != nil {
		panic(fmt.Sprintf("could not load config for %s: %s", key, err.Error()))
	}
	log.Info().Str("config", key).Msg("loaded default config")
}

func fileName(key string) string {
	return filepath.Join(path, fmt.Sprintf("%s.json", key))
}
