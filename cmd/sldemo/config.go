package main

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// config mirrors the skiplist construction knobs plus the demo workload
// size. All fields are optional; zero values fall back to the defaults
// below.
type config struct {
	Levels      int     `yaml:"levels"`
	Probability float64 `yaml:"probability"`
	Capacity    int     `yaml:"capacity"`
	Seed        uint64  `yaml:"seed"`
	Count       int     `yaml:"count"`
}

func defaultDemoConfig() config {
	return config{
		Levels:      4,
		Probability: 0.5,
		Seed:        1,
		Count:       32,
	}
}

func loadConfig(path string) (config, error) {
	cfg := defaultDemoConfig()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "read config %s", path)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	if cfg.Levels < 1 {
		return cfg, errors.Errorf("config %s: levels %d, want >= 1", path, cfg.Levels)
	}
	if cfg.Count < 0 {
		return cfg, errors.Errorf("config %s: count %d, want >= 0", path, cfg.Count)
	}
	return cfg, nil
}
