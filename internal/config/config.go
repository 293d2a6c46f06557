package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDiffusion = 1.0
	DefaultVelocity  = 1.0
	DefaultReaction  = -1.0
	DefaultFeed      = 1.0
	DefaultTFinal    = 5.0
	DefaultRTol      = 1e-6
	DefaultATol      = 1e-8
	DefaultReps      = 5
)

type Config struct {
	Problem Problem `yaml:"problem"`
	Solver  Solver  `yaml:"solver"`
	Bench   Bench   `yaml:"bench"`
}

type Problem struct {
	D  float64 `yaml:"d"`
	Vz float64 `yaml:"vz"`
	K  float64 `yaml:"k"`
	Cf float64 `yaml:"cf"`
	Z0 float64 `yaml:"z0"`
	Zf float64 `yaml:"zf"`
}

type Solver struct {
	RTol   float64 `yaml:"rtol"`
	ATol   float64 `yaml:"atol"`
	TFinal float64 `yaml:"t_final"`
}

type Bench struct {
	Variants []string `yaml:"variants"`
	Sizes    []int    `yaml:"sizes"`
	Reps     int      `yaml:"reps"`
	// NoiseFactor flags a measurement as noisy when the slowest sample
	// exceeds the fastest by more than this ratio. Zero disables it.
	NoiseFactor float64 `yaml:"noise_factor"`
}

func DefaultConfig() *Config {
	return &Config{
		Problem: Problem{
			D:  DefaultDiffusion,
			Vz: DefaultVelocity,
			K:  DefaultReaction,
			Cf: DefaultFeed,
			Z0: 0.0,
			Zf: 1.0,
		},
		Solver: Solver{
			RTol:   DefaultRTol,
			ATol:   DefaultATol,
			TFinal: DefaultTFinal,
		},
		Bench: Bench{
			Variants:    []string{"loop", "vector", "unrolled"},
			Sizes:       []int{10, 20, 40, 80, 160, 320},
			Reps:        DefaultReps,
			NoiseFactor: 10.0,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
