package cli

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/heft-dev/heft/bench"
	"github.com/heft-dev/heft/internal/config"
	"github.com/heft-dev/heft/internal/output"
	"github.com/heft-dev/heft/internal/workload"
)

// processStartEnv names the environment variable carrying the hosting
// process's start timestamp, in float seconds since the Unix epoch.
const processStartEnv = "HEFT_PROCESS_START"

// startTime anchors process mode when no external timestamp is supplied.
var startTime = time.Now()

// evalCmd represents the eval command
var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Evaluate scenario targets, or the process itself",
	Long: `Evaluate the targets described in a scenario file. Work targets run
built-in workloads (sleep, allocate, churn) under peak-memory tracking
and wall-clock timing; value targets deep-copy a JSON document and
inspect its structure. Each target is measured over repeated runs and
the averages are rendered as a plain-text report.

Without a scenario file, or with an empty target list, the process
itself is evaluated: peak memory since start and elapsed time since
launch (or since ` + processStartEnv + `, when set).

Examples:
  # Measure the process itself
  heft eval

  # Run a scenario and print the report
  heft eval --config scenario.yaml

  # Full metrics, ten repetitions, machine-readable output
  heft eval -c scenario.yaml --metrics all -r 10 --json`,
	SilenceUsage: true,
	RunE:         runEval,
}

func runEval(cmd *cobra.Command, args []string) error {
	// Get command line flags
	configFile, _ := cmd.Flags().GetString("config")
	repetitions, _ := cmd.Flags().GetInt("repetitions")
	metricsFlag, _ := cmd.Flags().GetString("metrics")
	label, _ := cmd.Flags().GetString("label")
	sinkFlag, _ := cmd.Flags().GetString("sink")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	formatFlag, _ := cmd.Flags().GetString("format")
	outputFile, _ := cmd.Flags().GetString("output")
	verbose, _ := cmd.Flags().GetBool("verbose")

	logger, err := buildLogger(verbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()
	sugar := logger.Sugar()

	cfg := &config.Config{}
	if configFile != "" {
		cfg, err = config.LoadConfig(configFile)
		if err != nil {
			return err
		}
		sugar.Debugw("loaded scenario",
			"file", configFile,
			"name", cfg.Name,
			"targets", len(cfg.Targets))
	}

	// Command line flags override scenario settings
	if repetitions > 0 {
		cfg.Repetitions = repetitions
	}
	if metricsFlag != "" {
		cfg.Metrics = metricsFlag
	}
	if label != "" {
		cfg.Label = label
	}
	if sinkFlag != "" {
		cfg.Sink = sinkFlag
	}

	config.ApplyDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	metrics, err := bench.ParseMetric(cfg.Metrics)
	if err != nil {
		return err
	}

	format, err := output.ParseFormat(formatFlag)
	if err != nil {
		return err
	}

	targets, err := buildTargets(cfg, sugar)
	if err != nil {
		return err
	}

	reportLabel := cfg.Label
	if reportLabel == "" {
		reportLabel = cfg.Name
	}

	b := bench.New(targets,
		bench.WithMetrics(metrics),
		bench.WithLabel(reportLabel),
		bench.WithRepetitions(cfg.Repetitions),
		bench.WithProcessStart(processStart()),
		bench.WithLogger(sugar),
		bench.WithOutput(cmd.OutOrStdout()),
		bench.WithDebugOutput(cmd.ErrOrStderr()),
	)

	if jsonOutput || formatFlag != "" || outputFile != "" {
		if err := b.Run(); err != nil {
			return err
		}
		return exportResults(cmd, b, reportLabel, format, outputFile)
	}

	return b.Emit(bench.Sink(cfg.Sink))
}

// buildTargets constructs the evaluation targets described by the
// scenario. An empty result selects process mode.
func buildTargets(cfg *config.Config, logger *zap.SugaredLogger) ([]bench.Target, error) {
	targets := make([]bench.Target, 0, len(cfg.Targets))

	for i := range cfg.Targets {
		tc := &cfg.Targets[i]

		target, err := buildTarget(tc, logger)
		if err != nil {
			return nil, fmt.Errorf("target %s: %w", tc.Name, err)
		}

		logger.Debugw("built target", "name", tc.Name, "mode", target.Mode())
		targets = append(targets, target)
	}

	return targets, nil
}

// buildTarget constructs a single evaluation target from its scenario
// entry. Exactly one source is honored: work, valueFile or value.
func buildTarget(tc *config.TargetConfig, logger *zap.SugaredLogger) (bench.Target, error) {
	switch {
	case tc.Work != nil:
		spec, err := config.ConvertToWorkSpec(tc.Work)
		if err != nil {
			return bench.Target{}, err
		}
		fn, err := workload.Build(spec)
		if err != nil {
			return bench.Target{}, err
		}
		return bench.Work(fn).Named(tc.Name), nil

	case tc.ValueFile != "":
		data, err := os.ReadFile(tc.ValueFile)
		if err != nil {
			return bench.Target{}, fmt.Errorf("failed to read value file: %w", err)
		}

		literal := string(data)
		if tc.Path != "" {
			literal, err = workload.Extract(literal, tc.Path)
			if err != nil {
				return bench.Target{}, err
			}
		}

		value, _, err := workload.ParseValue(literal)
		if err != nil {
			return bench.Target{}, err
		}
		logger.Debugw("loaded value file",
			"file", tc.ValueFile,
			"shape", workload.Describe(literal))
		return bench.Value(value).Named(tc.Name), nil

	default:
		return bench.Value(tc.Value).Named(tc.Name), nil
	}
}

// processStart resolves the hosting process's start time. It prefers
// the HEFT_PROCESS_START environment variable so a wrapping process
// can report elapsed time from its own launch, and falls back to this
// binary's start.
func processStart() time.Time {
	raw := os.Getenv(processStartEnv)
	if raw == "" {
		return startTime
	}

	seconds, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return startTime
	}

	sec, frac := math.Modf(seconds)
	return time.Unix(int64(sec), int64(frac*float64(time.Second)))
}

// exportResults writes the run's results in a machine-readable format,
// either to the given file or to standard output. JSON carries the
// full results including duration distributions; yaml and junit carry
// the aggregated metrics per target.
func exportResults(cmd *cobra.Command, b *bench.Benchmark, label string, format output.Format, outputFile string) error {
	var rendered string

	switch format {
	case output.FormatYAML, output.FormatJUnit:
		var err error
		rendered, err = output.FormatRun(format, exportRun(b, label))
		if err != nil {
			return err
		}

	default:
		payload := struct {
			Run     string         `json:"run"`
			Results []bench.Result `json:"results"`
		}{
			Run:     b.ID(),
			Results: b.Results(),
		}
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return fmt.Errorf("error marshaling results: %w", err)
		}
		rendered = string(data)
	}

	if outputFile != "" {
		if err := os.WriteFile(outputFile, []byte(rendered), 0644); err != nil {
			return fmt.Errorf("error writing results to file: %w", err)
		}
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return nil
}

// exportRun converts the run's results into their exportable form.
func exportRun(b *bench.Benchmark, label string) output.Run {
	run := output.Run{ID: b.ID(), Label: label}

	for _, r := range b.Results() {
		run.Cases = append(run.Cases, output.Case{
			Name:        r.Target,
			Mode:        string(r.Mode),
			Repetitions: r.Repetitions,
			Memory:      r.Memory,
			Duration:    r.Duration,
			Cost:        r.Cost(),
			Count:       r.Count,
			Properties:  r.Properties,
			Methods:     r.Methods,
		})
	}

	return run
}

// buildLogger builds the runtime logger, with verbose selecting the
// human-readable development configuration at debug level.
func buildLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func init() {
	// Add flags specific to the eval command
	evalCmd.Flags().StringP("config", "c", "", "Scenario file (YAML or JSON)")
	evalCmd.Flags().IntP("repetitions", "r", 0, "Repetitions per target (overrides scenario)")
	evalCmd.Flags().StringP("metrics", "m", "", "Metrics to report: basic, all, or a comma-separated list")
	evalCmd.Flags().StringP("label", "l", "", "Report label (overrides scenario)")
	evalCmd.Flags().StringP("sink", "s", "", "Report destination: stdout, debug or log")
	evalCmd.Flags().Bool("json", false, "Output results as JSON instead of a report")
	evalCmd.Flags().String("format", "", "Result output format (json, yaml, junit)")
	evalCmd.Flags().StringP("output", "o", "", "Output file for results")
	evalCmd.Flags().BoolP("verbose", "v", false, "Enable verbose output")
}
