package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/JonasHarsch/dasslcy/internal/bench"
	"github.com/JonasHarsch/dasslcy/internal/config"
	"github.com/JonasHarsch/dasslcy/internal/dassl"
	"github.com/JonasHarsch/dasslcy/internal/reactor"
	"github.com/JonasHarsch/dasslcy/internal/report"
	"github.com/JonasHarsch/dasslcy/internal/residual"
	"github.com/JonasHarsch/dasslcy/internal/tui"
)

var (
	configFile string
	preset     string

	// Problem parameters
	diffusion float64
	velocity  float64
	reaction  float64
	feed      float64
	z0, zf    float64

	// Solver settings
	rtol, atol float64
	tFinal     float64

	// Benchmark settings
	variants []string
	sizes    []int
	reps     int

	// Output
	live     bool
	showPlot bool
	jsonPath string
	csvPath  string

	// Single-run settings
	gridN int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pfrbench",
		Short: "plug-flow reactor residual kernel benchmark",
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "benchmark all kernel variants across problem sizes",
		RunE:  runSweep,
	}
	addConfigFlags(sweepCmd)
	sweepCmd.Flags().StringSliceVar(&variants, "variants", nil, "kernel variants to time")
	sweepCmd.Flags().IntSliceVar(&sizes, "sizes", nil, "problem sizes to sweep")
	sweepCmd.Flags().IntVar(&reps, "reps", 0, "repetitions per cell")
	sweepCmd.Flags().BoolVar(&live, "live", false, "show live progress view")
	sweepCmd.Flags().BoolVar(&showPlot, "plot", false, "render timing graphs")
	sweepCmd.Flags().StringVar(&jsonPath, "json", "", "write results as JSON to file")
	sweepCmd.Flags().StringVar(&csvPath, "csv", "", "write results as CSV to file")

	runCmd := &cobra.Command{
		Use:   "run [variant]",
		Short: "time one kernel variant at one problem size",
		Args:  cobra.ExactArgs(1),
		RunE:  runOne,
	}
	addConfigFlags(runCmd)
	runCmd.Flags().IntVar(&gridN, "n", 100, "number of interior grid nodes")
	runCmd.Flags().IntVar(&reps, "reps", 0, "repetitions")

	solveCmd := &cobra.Command{
		Use:   "solve [variant]",
		Short: "integrate the reactor once and show the final profile",
		Args:  cobra.ExactArgs(1),
		RunE:  runSolve,
	}
	addConfigFlags(solveCmd)
	solveCmd.Flags().IntVar(&gridN, "n", 100, "number of interior grid nodes")

	variantsCmd := &cobra.Command{
		Use:   "variants",
		Short: "list kernel variants",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range residual.Variants() {
				fmt.Println(name)
			}
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list benchmark presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(sweepCmd, runCmd, solveCmd, variantsCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use a named preset")
	cmd.Flags().Float64Var(&diffusion, "d", config.DefaultDiffusion, "diffusion coefficient")
	cmd.Flags().Float64Var(&velocity, "vz", config.DefaultVelocity, "axial velocity")
	cmd.Flags().Float64Var(&reaction, "k", config.DefaultReaction, "reaction rate")
	cmd.Flags().Float64Var(&feed, "cf", config.DefaultFeed, "feed concentration")
	cmd.Flags().Float64Var(&z0, "z0", 0.0, "domain start")
	cmd.Flags().Float64Var(&zf, "zf", 1.0, "domain end")
	cmd.Flags().Float64Var(&rtol, "rtol", config.DefaultRTol, "relative tolerance")
	cmd.Flags().Float64Var(&atol, "atol", config.DefaultATol, "absolute tolerance")
	cmd.Flags().Float64Var(&tFinal, "tf", config.DefaultTFinal, "integration end time")
}

// buildConfig resolves the layered configuration: file or preset first,
// then explicit flag overrides.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset %q (try: %s)", preset, strings.Join(config.ListPresets(), ", "))
		}
		// Copy so flag overrides never mutate the shared preset.
		c := *p
		cfg = &c
	}

	flags := cmd.Flags()
	if flags.Changed("d") {
		cfg.Problem.D = diffusion
	}
	if flags.Changed("vz") {
		cfg.Problem.Vz = velocity
	}
	if flags.Changed("k") {
		cfg.Problem.K = reaction
	}
	if flags.Changed("cf") {
		cfg.Problem.Cf = feed
	}
	if flags.Changed("z0") {
		cfg.Problem.Z0 = z0
	}
	if flags.Changed("zf") {
		cfg.Problem.Zf = zf
	}
	if flags.Changed("rtol") {
		cfg.Solver.RTol = rtol
	}
	if flags.Changed("atol") {
		cfg.Solver.ATol = atol
	}
	if flags.Changed("tf") {
		cfg.Solver.TFinal = tFinal
	}
	if len(variants) > 0 {
		cfg.Bench.Variants = variants
	}
	if len(sizes) > 0 {
		cfg.Bench.Sizes = sizes
	}
	if reps > 0 {
		cfg.Bench.Reps = reps
	}
	return cfg, nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	h := bench.New(cfg)

	var table *bench.Table
	if live {
		table, err = tui.RunLive(h)
	} else {
		table, err = h.Sweep(context.Background())
	}
	if err != nil {
		return err
	}

	if err := report.WriteTable(os.Stdout, table); err != nil {
		return err
	}
	if showPlot {
		fmt.Println()
		fmt.Print(report.PlotAll(table))
	}
	if jsonPath != "" {
		if err := writeFile(jsonPath, func(f *os.File) error { return report.ExportJSON(f, table) }); err != nil {
			return err
		}
	}
	if csvPath != "" {
		if err := writeFile(csvPath, func(f *os.File) error { return report.ExportCSV(f, table) }); err != nil {
			return err
		}
	}
	return nil
}

func runOne(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	h := bench.New(cfg)

	setup, err := h.NewSetup(args[0], gridN)
	if err != nil {
		return err
	}
	n := cfg.Bench.Reps
	m := h.Measure(context.Background(), setup, n)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "variant\t%s\n", args[0])
	fmt.Fprintf(w, "n\t%d\n", gridN)
	fmt.Fprintf(w, "samples\t%d\n", len(m.Samples))
	fmt.Fprintf(w, "failures\t%d\n", m.Failures)
	if len(m.Samples) > 0 {
		fmt.Fprintf(w, "mean\t%v\n", m.Mean)
		fmt.Fprintf(w, "stddev\t%v\n", m.Stddev)
	}
	if m.Failures > 0 {
		fmt.Fprintf(w, "status\t%s\n", dassl.StatusString(m.Status))
	}
	if m.Noisy {
		fmt.Fprintln(w, "note\ttimings noisy; consider more reps or a quieter machine")
	}
	return w.Flush()
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	p, err := reactor.NewParameters(cfg.Problem.D, cfg.Problem.Vz, cfg.Problem.K, cfg.Problem.Cf, cfg.Problem.Z0, cfg.Problem.Zf, gridN)
	if err != nil {
		return err
	}
	kern, err := residual.New(args[0], gridN)
	if err != nil {
		return err
	}

	f := func(t float64, y, yp, out []float64) ([]float64, int) {
		return kern.Evaluate(t, y, yp, p, out)
	}
	solver := dassl.NewBDF()
	solCfg := dassl.Config{RTol: cfg.Solver.RTol, ATol: cfg.Solver.ATol}
	res, status := solver.Integrate(context.Background(), f, 0, cfg.Solver.TFinal, reactor.InitialState(p), nil, solCfg)
	if status != dassl.Success {
		return fmt.Errorf("integration failed at t=%.4f: %s", res.T, dassl.StatusString(status))
	}

	graph := asciigraph.Plot(res.Y,
		asciigraph.Height(12),
		asciigraph.Width(70),
		asciigraph.Caption(fmt.Sprintf("concentration profile at t=%.2f (N=%d)", res.T, gridN)),
	)
	fmt.Println(graph)
	fmt.Printf("\nsteps %d  rejected %d  newton iters %d  residual evals %d\n",
		res.Stats.Steps, res.Stats.Rejected, res.Stats.NewtonIters, res.Stats.Evaluations)
	return nil
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return write(f)
}
