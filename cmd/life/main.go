package main

import (
	"fmt"
	"os"
	"runtime"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gilhooleyd/wasm-game-of-life/internal/app"
	"github.com/gilhooleyd/wasm-game-of-life/internal/config"
	"github.com/gilhooleyd/wasm-game-of-life/internal/stats"
	"github.com/gilhooleyd/wasm-game-of-life/internal/term"
	"github.com/gilhooleyd/wasm-game-of-life/internal/tui"
	"github.com/gilhooleyd/wasm-game-of-life/pkg/life"
	"github.com/guptarohit/asciigraph"
	"github.com/logrusorgru/aurora"
	"github.com/spf13/cobra"
)

var (
	width       int
	height      int
	pattern     string
	seed        int64
	tps         int
	scale       int
	generations int
	workers     int
	quiet       bool
	configFile  string
	outFile     string
)

func main() {
	defaults := config.Default()

	rootCmd := &cobra.Command{
		Use:   "life",
		Short: "conway's game of life in the terminal",
	}
	rootCmd.PersistentFlags().IntVar(&width, "width", defaults.Width, "universe width in cells")
	rootCmd.PersistentFlags().IntVar(&height, "height", defaults.Height, "universe height in cells")
	rootCmd.PersistentFlags().StringVar(&pattern, "pattern", defaults.Pattern, "starting pattern")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", defaults.Seed, "random seed")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a batch simulation and print the outcome",
		RunE:  runBatch,
	}
	runCmd.Flags().IntVar(&generations, "generations", defaults.Generations, "generations to run")
	runCmd.Flags().IntVar(&workers, "workers", defaults.Workers, "parallel workers per tick")
	runCmd.Flags().BoolVar(&quiet, "quiet", false, "suppress the final grid")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "watch the universe with interactive controls",
		RunE:  runLive,
	}
	liveCmd.Flags().IntVar(&tps, "tps", defaults.TPS, "ticks per second")

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "watch the universe on a plain ANSI terminal",
		RunE:  runWatch,
	}
	watchCmd.Flags().IntVar(&tps, "tps", defaults.TPS, "ticks per second")
	watchCmd.Flags().IntVar(&generations, "generations", defaults.Generations, "generation limit (0 for none)")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the pixel renderer (requires the ebiten build tag)",
		RunE:  runGUI,
	}
	guiCmd.Flags().IntVar(&tps, "tps", defaults.TPS, "ticks per second")
	guiCmd.Flags().IntVar(&scale, "scale", defaults.Scale, "pixels per cell")

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot the population curve of a run",
		RunE:  runPlot,
	}
	plotCmd.Flags().IntVar(&generations, "generations", defaults.Generations, "generations to run")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark serial and parallel stepping",
		RunE:  runBench,
	}
	benchCmd.Flags().IntVar(&generations, "generations", 200, "generations per case")
	benchCmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "parallel workers")

	patternsCmd := &cobra.Command{
		Use:   "patterns",
		Short: "list the registered starting patterns",
		RunE:  runPatterns,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration",
		RunE:  runConfig,
	}
	configCmd.Flags().StringVar(&outFile, "out", "", "write the configuration to a file")

	rootCmd.AddCommand(runCmd, liveCmd, watchCmd, guiCmd, plotCmd, benchCmd, patternsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves the effective settings: defaults, then the config
// file, then any flags set on the command line.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("width") {
		cfg.Width = width
	}
	if cmd.Flags().Changed("height") {
		cfg.Height = height
	}
	if cmd.Flags().Changed("pattern") {
		cfg.Pattern = pattern
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("tps") {
		cfg.TPS = tps
	}
	if cmd.Flags().Changed("scale") {
		cfg.Scale = scale
	}
	if cmd.Flags().Changed("generations") {
		cfg.Generations = generations
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = workers
	}
	return cfg, nil
}

// newUniverse builds and seeds a universe from the effective settings.
func newUniverse(cfg *config.Config) (*life.Universe, life.Pattern, error) {
	u, err := life.NewSized(cfg.Width, cfg.Height)
	if err != nil {
		return nil, life.Pattern{}, err
	}
	p, ok := life.Lookup(cfg.Pattern)
	if !ok {
		return nil, life.Pattern{}, fmt.Errorf("unknown pattern %q (try `life patterns`)", cfg.Pattern)
	}
	p.Apply(u, cfg.Seed)
	return u, p, nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	u, _, err := newUniverse(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("running %s on %dx%d for %d generations...\n",
		cfg.Pattern, cfg.Width, cfg.Height, cfg.Generations)

	st := stats.New()
	detector := life.NewCycleDetector(12)
	milestone := cfg.Generations / 10
	if milestone < 1 {
		milestone = 1
	}

	reason := "limit"
	start := time.Now()
	lastTick := start

	gen := 0
	for ; gen < cfg.Generations; gen++ {
		if u.Population() == 0 {
			reason = "extinct"
			break
		}
		if detector.Stagnant(u) {
			reason = "still"
			break
		}
		detector.Observe(u)

		if cfg.Workers > 1 {
			u.TickParallel(cfg.Workers)
		} else {
			u.Tick()
		}
		now := time.Now()
		st.Update(gen+1, u.Population(), now.Sub(lastTick))
		lastTick = now

		if (gen+1)%milestone == 0 {
			fmt.Printf("  gen %d: %d alive\n", gen+1, u.Population())
		}
	}
	elapsed := time.Since(start)

	if !quiet {
		fmt.Println()
		fmt.Print(u.Render())
		fmt.Println()
	}

	fmt.Printf("stopped after %d generations (%s)\n", gen, coloredReason(reason))
	fmt.Printf("population: %d | average: %.1f\n", u.Population(), st.AveragePopulation)
	if elapsed.Seconds() > 0 {
		fmt.Printf("elapsed: %v (%.0f gen/sec)\n",
			elapsed.Round(time.Millisecond), float64(gen)/elapsed.Seconds())
	}
	return nil
}

func coloredReason(reason string) string {
	switch reason {
	case "extinct":
		return aurora.Red(reason).String()
	case "still":
		return aurora.Blue(reason).String()
	default:
		return aurora.Green(reason).String()
	}
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	u, p, err := newUniverse(cfg)
	if err != nil {
		return err
	}

	m := tui.NewModel(u, p, cfg.Seed, cfg.TPS)
	prog := tea.NewProgram(m)
	if _, err := prog.Run(); err != nil {
		return err
	}
	return nil
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	u, _, err := newUniverse(cfg)
	if err != nil {
		return err
	}
	return term.Watch(u, cfg.Generations, cfg.TPS)
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return app.Run(cfg)
}

func runPlot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	u, _, err := newUniverse(cfg)
	if err != nil {
		return err
	}

	series := make([]float64, 0, cfg.Generations+1)
	series = append(series, float64(u.Population()))
	for gen := 0; gen < cfg.Generations; gen++ {
		u.Tick()
		series = append(series, float64(u.Population()))
	}

	fmt.Printf("pattern: %s\n", cfg.Pattern)
	fmt.Printf("samples: %d\n\n", len(series))

	graph := asciigraph.Plot(series,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption("population"),
	)
	fmt.Println(graph)
	fmt.Println()

	minPop, maxPop := series[0], series[0]
	sum := 0.0
	for _, v := range series {
		if v < minPop {
			minPop = v
		}
		if v > maxPop {
			maxPop = v
		}
		sum += v
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MIN\tMAX\tFINAL\tAVERAGE")
	fmt.Fprintf(w, "%.0f\t%.0f\t%.0f\t%.1f\n",
		minPop, maxPop, series[len(series)-1], sum/float64(len(series)))
	return w.Flush()
}

func runBench(cmd *cobra.Command, args []string) error {
	random, ok := life.Lookup("random")
	if !ok {
		return fmt.Errorf("random pattern not registered")
	}

	fmt.Printf("benchmarking %d generations per case\n\n", generations)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SIZE\tMODE\tTIME\tGEN/SEC")

	for _, size := range []int{64, 128, 256} {
		for _, mode := range []string{"serial", "parallel"} {
			u, err := life.NewSized(size, size)
			if err != nil {
				return err
			}
			random.Apply(u, seed)

			start := time.Now()
			for gen := 0; gen < generations; gen++ {
				if mode == "parallel" {
					u.TickParallel(workers)
				} else {
					u.Tick()
				}
			}
			elapsed := time.Since(start)

			fmt.Fprintf(w, "%dx%d\t%s\t%v\t%.0f\n",
				size, size, mode, elapsed.Round(time.Microsecond), float64(generations)/elapsed.Seconds())
		}
	}
	return w.Flush()
}

func runPatterns(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDESCRIPTION")
	for _, name := range life.Names() {
		p, _ := life.Lookup(name)
		fmt.Fprintf(w, "%s\t%s\n", p.Name, p.Description)
	}
	return w.Flush()
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if outFile != "" {
		if err := config.Save(outFile, cfg); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", outFile)
		return nil
	}
	fmt.Print(config.Dump(cfg))
	return nil
}
