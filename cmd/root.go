package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/inference-sim/schedsim/sim"
	"github.com/inference-sim/schedsim/sim/workload"
)

// runOptions holds the CLI flags of the run command.
type runOptions struct {
	configPath string // Path to the JSON/YAML run configuration
	policy     string // Scheduling policy; overrides the config document
	logLevel   string // Log verbosity level
	horizon    int64  // Stop after this many ticks (0 = run to completion)
	print      bool   // Echo the trace to stdout
	summary    bool   // Print the per-process metrics table
}

var opts runOptions

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:           "schedsim",
	Short:         "Discrete-time CPU scheduling simulator",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// runCmd simulates one process list using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run <input>",
	Short: "Simulate a process list and write its execution trace",
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("%w: expected 1 input file, got %d", ErrArgument, len(args))
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSimulation(cmd.OutOrStdout(), args[0], opts)
	},
}

// policiesCmd lists the recognized policies and their I/O disciplines
var policiesCmd = &cobra.Command{
	Use:   "policies",
	Short: "List scheduling policies and their I/O disciplines",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range sim.ValidPolicyNames() {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%-18s %s\n", name, sim.DisciplineOf(name))
		}
	},
}

// runSimulation loads the config and process list, runs the simulation and
// writes the trace file.
func runSimulation(out io.Writer, input string, o runOptions) error {
	level, err := logrus.ParseLevel(o.logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", o.logLevel, err)
	}
	logrus.SetLevel(level)

	cfg, err := LoadConfig(o.configPath)
	if err != nil {
		return err
	}
	policy := cfg.Policy
	if o.policy != "" {
		policy = o.policy
	}
	if policy == "" {
		policy = sim.PolicyFCFS
	}
	if !sim.IsValidPolicy(policy) {
		return fmt.Errorf("unknown policy %q (valid: %s)", policy, strings.Join(sim.ValidPolicyNames(), ", "))
	}
	if o.horizon < 0 {
		return fmt.Errorf("horizon must be >= 0, got %d", o.horizon)
	}

	inPath := cfg.InputPath(input)
	specs, err := workload.LoadProcessList(inPath)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrInputNotFound, inPath)
	}
	if err != nil {
		return err
	}

	logrus.Infof("Simulating %s with policy=%s, dataset=%s", inPath, policy, cfg.Dataset)
	s := sim.NewSimulator(specs, sim.NewSimConfig(policy, o.horizon))
	s.Run()
	result := s.Trace.String()

	outPath := cfg.OutputPath(input)
	if err := writeTrace(outPath, result); err != nil {
		return err
	}
	logrus.Infof("Trace written to %s", outPath)

	if o.print {
		_, _ = fmt.Fprintln(out, result)
	}
	if o.summary {
		s.Metrics().Print(out)
	}
	return nil
}

// writeTrace writes the trace line, without a trailing newline, creating
// the dataset directory if needed.
func writeTrace(path, line string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}
	if err := os.WriteFile(path, []byte(line), 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}
	return nil
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&opts.configPath, "config", "config.json", "Path to the run configuration (JSON or YAML)")
	runCmd.Flags().StringVar(&opts.policy, "policy", "", "Scheduling policy: "+strings.Join(sim.ValidPolicyNames(), ", ")+" (default from config, else fcfs)")
	runCmd.Flags().StringVar(&opts.logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().Int64Var(&opts.horizon, "horizon", 0, "Stop after this many ticks (0 = run to completion)")
	runCmd.Flags().BoolVar(&opts.print, "print", false, "Echo the trace to stdout")
	runCmd.Flags().BoolVar(&opts.summary, "summary", false, "Print per-process turnaround, waiting and response times")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(policiesCmd)
}
