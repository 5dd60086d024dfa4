package cmd

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/apron-sim/apron-sim/sim"
	"github.com/apron-sim/apron-sim/sim/analytics"
	"github.com/apron-sim/apron-sim/sim/workload"
)

var (
	// CLI flags for the simulation run
	logLevel         string // Log verbosity level
	seed             int64  // Seed for synthetic schedule generation
	plbStands        int    // Number of PLB stands
	horizonMinutes   int64  // Total simulation duration (in minutes)
	samplingInterval int64  // Occupancy sampling cadence (in minutes)

	// CLI flags for schedule generation
	arrivalsPerHour int     // Average arrivals per hour
	turnaroundMean  float64 // Mean turnaround time (minutes)
	turnaroundMin   int64   // Min turnaround time (minutes)
	turnaroundMax   int64   // Max turnaround time (minutes)

	// CLI flags for I/O
	inputPath    string // Schedule CSV to load instead of generating
	outputDir    string // Directory for result CSVs and summary
	scenarioName string // Named preset from the scenario file
	scenarioFile string // YAML file with scenario presets
)

// rootCmd is the base command for the CLI.
var rootCmd = &cobra.Command{
	Use:   "apron-sim",
	Short: "Discrete-event simulator for airport stand allocation",
}

// runCmd executes the full pipeline: prepare a flight schedule, run the
// simulation, print the metrics summary, and optionally export results.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the stand allocation simulation",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		records, err := prepareSchedule()
		if err != nil {
			logrus.Fatalf("unable to prepare flight schedule: %v", err)
		}

		cfg := sim.Config{
			PLBCapacity:             plbStands,
			HorizonMinutes:          horizonMinutes,
			SamplingIntervalMinutes: samplingInterval,
		}
		logrus.Infof("Starting simulation with %d PLB stands, horizon=%d min, %d aircraft",
			cfg.PLBCapacity, cfg.HorizonMinutes, len(records))

		s, err := sim.NewSimulator(cfg, records)
		if err != nil {
			logrus.Fatalf("invalid simulation setup: %v", err)
		}
		if err := s.Run(); err != nil {
			logrus.Fatalf("simulation aborted: %v", err)
		}

		summary := analytics.Analyze(s.Aircraft(), s.Samples(), cfg.PLBCapacity)
		summary.Print()

		if outputDir != "" {
			if err := exportResults(s, summary); err != nil {
				logrus.Fatalf("unable to export results: %v", err)
			}
		}

		logrus.Info("Simulation complete.")
	},
}

// generateCmd writes a synthetic schedule CSV without running a simulation.
var generateCmd = &cobra.Command{
	Use:   "generate [output.csv]",
	Short: "Generate a synthetic flight schedule CSV",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		records, err := generatorFromFlags().Generate()
		if err != nil {
			logrus.Fatalf("unable to generate schedule: %v", err)
		}
		if err := workload.SaveSchedules(args[0], records); err != nil {
			logrus.Fatalf("unable to save schedule: %v", err)
		}
		logrus.Infof("wrote %d aircraft to %s", len(records), args[0])
	},
}

func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// prepareSchedule loads the input CSV when one is given, otherwise generates
// a synthetic schedule from the generation flags and scenario preset.
func prepareSchedule() ([]sim.ScheduleRecord, error) {
	if inputPath != "" {
		return workload.LoadSchedules(inputPath)
	}
	return generatorFromFlags().Generate()
}

func generatorFromFlags() workload.Generator {
	g := workload.Generator{
		ArrivalsPerHour: arrivalsPerHour,
		HorizonMinutes:  horizonMinutes,
		TurnaroundMean:  turnaroundMean,
		TurnaroundMin:   turnaroundMin,
		TurnaroundMax:   turnaroundMax,
		Seed:            seed,
	}
	if scenarioName != "" {
		sc, err := LoadScenario(scenarioFile, scenarioName)
		if err != nil {
			logrus.Fatalf("unable to load scenario %q: %v", scenarioName, err)
		}
		logrus.Infof("Using preset scenario %v", scenarioName)
		sc.apply(&g)
		if sc.PLBStands > 0 {
			plbStands = sc.PLBStands
		}
		if sc.HorizonMinutes > 0 {
			horizonMinutes = sc.HorizonMinutes
			g.HorizonMinutes = sc.HorizonMinutes
		}
	}
	return g
}

func exportResults(s *sim.Simulator, summary analytics.Summary) error {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return err
	}
	if err := analytics.WriteAircraftCSV(filepath.Join(outputDir, "simulation_output.csv"), s.Aircraft()); err != nil {
		return err
	}
	if err := analytics.WriteSamplesCSV(filepath.Join(outputDir, "simulation_output_minute.csv"), s.Samples()); err != nil {
		return err
	}
	return analytics.WriteSummary(filepath.Join(outputDir, "metrics_summary.txt"), summary)
}

// Execute runs the CLI root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands.
func init() {
	for _, c := range []*cobra.Command{runCmd, generateCmd} {
		c.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
		c.Flags().Int64Var(&seed, "seed", 42, "Seed for synthetic schedule generation")
		c.Flags().Int64Var(&horizonMinutes, "horizon", 360, "Total simulation horizon (in minutes)")

		// Schedule generation configs
		c.Flags().IntVar(&arrivalsPerHour, "arrivals-per-hour", 45, "Average number of arrivals per hour")
		c.Flags().Float64Var(&turnaroundMean, "turnaround-mean", 58, "Mean turnaround time (minutes)")
		c.Flags().Int64Var(&turnaroundMin, "turnaround-min", 30, "Minimum turnaround time (minutes)")
		c.Flags().Int64Var(&turnaroundMax, "turnaround-max", 120, "Maximum turnaround time (minutes)")
		c.Flags().StringVar(&scenarioName, "scenario", "", "Named scenario preset to apply")
		c.Flags().StringVar(&scenarioFile, "scenario-file", "scenarios.yaml", "YAML file with scenario presets")
	}

	// Simulation configs
	runCmd.Flags().IntVar(&plbStands, "plb-stands", 35, "Number of PLB stands")
	runCmd.Flags().Int64Var(&samplingInterval, "sampling-interval", 1, "Occupancy sampling cadence (in minutes)")
	runCmd.Flags().StringVar(&inputPath, "input", "", "Schedule CSV to load instead of generating one")
	runCmd.Flags().StringVar(&outputDir, "output-dir", "", "Directory for result CSVs and metrics summary")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(generateCmd)
}
