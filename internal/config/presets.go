package config

var Presets = map[string]*Config{
	"quick": {
		Problem: Problem{D: 1.0, Vz: 1.0, K: -1.0, Cf: 1.0, Z0: 0.0, Zf: 1.0},
		Solver:  Solver{RTol: 1e-5, ATol: 1e-7, TFinal: 1.0},
		Bench:   Bench{Variants: []string{"loop", "vector", "unrolled"}, Sizes: []int{10, 40, 160}, Reps: 3, NoiseFactor: 10.0},
	},
	"paper": {
		Problem: Problem{D: 1.0, Vz: 1.0, K: -1.0, Cf: 1.0, Z0: 0.0, Zf: 1.0},
		Solver:  Solver{RTol: 1e-6, ATol: 1e-8, TFinal: 5.0},
		Bench:   Bench{Variants: []string{"loop", "vector", "unrolled"}, Sizes: []int{10, 20, 40, 80, 160, 320, 640, 1280}, Reps: 10, NoiseFactor: 10.0},
	},
	"advective": {
		Problem: Problem{D: 0.0, Vz: 2.0, K: -0.5, Cf: 1.0, Z0: 0.0, Zf: 2.0},
		Solver:  Solver{RTol: 1e-6, ATol: 1e-8, TFinal: 5.0},
		Bench:   Bench{Variants: []string{"loop", "vector", "unrolled"}, Sizes: []int{20, 80, 320}, Reps: 5, NoiseFactor: 10.0},
	},
	"stiff": {
		Problem: Problem{D: 1e-3, Vz: 1.0, K: -50.0, Cf: 1.0, Z0: 0.0, Zf: 1.0},
		Solver:  Solver{RTol: 1e-7, ATol: 1e-9, TFinal: 2.0},
		Bench:   Bench{Variants: []string{"loop", "vector", "unrolled"}, Sizes: []int{20, 80, 320}, Reps: 5, NoiseFactor: 10.0},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
