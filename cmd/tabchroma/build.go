package main

import (
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/RyanBlaney/sonido-tabs/augment"
	"github.com/RyanBlaney/sonido-tabs/config"
	"github.com/RyanBlaney/sonido-tabs/corpus"
	"github.com/RyanBlaney/sonido-tabs/logging"
)

type buildFlags struct {
	configPath string
	format     string
	extension  string
	augment    int
	seed       uint64
	logLevel   string
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	flags := &buildFlags{}

	cmd := &cobra.Command{
		Use:   "tabchroma [flags] <source-dir> <dest-file>",
		Short: "Turn guitar tablature into labeled pitch-class count vectors",
		Long: `tabchroma walks a directory of ASCII guitar tabs, counts the notes of each
file per pitch class (A through G#), labels every file with the name of its
folder and writes the rows, plus randomly transposed copies, to a JSON array.

Running tabchroma with two arguments is shorthand for "tabchroma build".
A first argument that names a subcommand (build, stats, validate, help,
completion) runs that subcommand, so a source directory called "stats"
must be given as "./stats" or through "tabchroma build stats <dest-file>".

Examples:
  tabchroma samples/ corpus.json
  tabchroma build --seed 7 --augment 4 samples/ corpus.json
  tabchroma --format csv samples/ output.csv`,
		Version: version,
		Args:    cobra.ExactArgs(2),
		RunE:    buildRunE(flags, stdout, stderr),
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	addBuildFlags(cmd, flags)

	cmd.AddCommand(newBuildCmd(stdout, stderr), newStatsCmd(stdout), newValidateCmd(stdout))
	return cmd
}

func newBuildCmd(stdout, stderr io.Writer) *cobra.Command {
	flags := &buildFlags{}
	cmd := &cobra.Command{
		Use:   "build [flags] <source-dir> <dest-file>",
		Short: "Build a corpus from a directory of tabs",
		Args:  cobra.ExactArgs(2),
		RunE:  buildRunE(flags, stdout, stderr),
	}
	addBuildFlags(cmd, flags)
	return cmd
}

func addBuildFlags(cmd *cobra.Command, flags *buildFlags) {
	cmd.Flags().StringVarP(&flags.configPath, "config", "c", "", "JSON build config file")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "", "output format: json or csv")
	cmd.Flags().StringVar(&flags.extension, "ext", "", "tablature file extension (default .txt)")
	cmd.Flags().IntVarP(&flags.augment, "augment", "n", 0, "transposed copies per file (default 2)")
	cmd.Flags().Uint64Var(&flags.seed, "seed", 0, "seed for shift selection, 0 draws a fresh seed")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "", "debug, info, warn or error")
}

func buildRunE(flags *buildFlags, stdout, stderr io.Writer) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveBuildConfig(cmd, flags)
		if err != nil {
			return err
		}
		cmd.SilenceUsage = true
		runBuild(cfg, args[0], args[1], stdout, stderr)
		return nil
	}
}

// resolveBuildConfig layers defaults, the optional config file and the
// flags that were set explicitly.
func resolveBuildConfig(cmd *cobra.Command, flags *buildFlags) (*config.BuildConfig, error) {
	cfg := config.DefaultBuildConfig()
	if flags.configPath != "" {
		loaded, err := config.LoadBuildConfig(flags.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	set := cmd.Flags().Changed
	if set("format") {
		cfg.Format = corpus.Format(flags.format)
	}
	if set("ext") {
		cfg.Extension = flags.extension
	}
	if set("augment") {
		cfg.AugmentationsPerRow = flags.augment
	}
	if set("seed") {
		cfg.Seed = flags.seed
	}
	if set("log-level") {
		cfg.LogLevel = flags.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// runBuild walks source and writes the corpus to dest. Per-file and output
// failures are logged only; they do not change the exit status.
func runBuild(cfg *config.BuildConfig, source, dest string, stdout, stderr io.Writer) {
	base := logging.NewDefaultLoggerWithWriters(stdout, stderr)
	base.SetLevel(cfg.Level())
	logger := base.WithFields(logging.Fields{"run_id": uuid.NewString()})

	logger.Info("Starting processing of folder", logging.Fields{
		"source": source,
		"dest":   dest,
		"format": string(cfg.Format),
	})

	shifts, err := cfg.ShiftSource()
	if err != nil {
		// Validate already checked the range
		logger.Error(err, "Failed to create shift source")
		return
	}

	walker := corpus.NewWalker(corpus.WalkerOptions{
		Extension: cfg.Extension,
		Augmentor: augment.NewAugmentor(shifts, cfg.AugmentationsPerRow),
		Logger:    logger,
	})
	c := walker.Walk(source)

	if err := corpus.NewSerializer(logger).Save(dest, c.Rows, cfg.Format); err != nil {
		return
	}

	logger.Info("Processing complete.", logging.Fields{
		"rows":   len(c.Rows),
		"failed": len(c.Report.Failures),
	})
}
