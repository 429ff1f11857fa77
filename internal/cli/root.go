package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/roach88/sigcmp/internal/config"
	"github.com/roach88/sigcmp/internal/logging"
)

// RunIDGenerator produces the run ID attached to log events and JSON output.
type RunIDGenerator interface {
	Generate() string
}

type uuidRunIDs struct{}

func (uuidRunIDs) Generate() string { return uuid.NewString() }

// RootOptions holds global flags for all commands and the run state
// resolved from them before a command runs.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	ConfigFile string
	LogLevel   string

	// RunIDs defaults to random UUIDs.
	RunIDs RunIDGenerator

	Config *config.Config
	Logger zerolog.Logger
	RunID  string
}

// flagKeys maps config keys to the flags that override them.
var flagKeys = map[string]string{
	config.KeyIgnoreTime:    "ignore-time",
	config.KeyTimeDeviation: "time-deviation",
	config.KeyFormat:        "format",
	config.KeyLogLevel:      "log-level",
	config.KeyFailOnDiff:    "fail-on-diff",
	config.KeySummary:       "summary",
}

// NewRootCommand creates the sigcmp command: compare two logs, with the
// scan and test subcommands.
func NewRootCommand() *cobra.Command {
	return NewRootCommandWithOptions(&RootOptions{})
}

// NewRootCommandWithOptions creates the root command around opts, so tests
// can inject a deterministic run ID source.
func NewRootCommandWithOptions(opts *RootOptions) *cobra.Command {
	if opts.RunIDs == nil {
		opts.RunIDs = uuidRunIDs{}
	}
	cmpOpts := &CompareOptions{RootOptions: opts}

	cmd := &cobra.Command{
		Use:   "sigcmp LOG_FILE1 LOG_FILE2",
		Short: "Compare two signal logs",
		Long: `Compare a captured signal log against a reference log.

Signal lines have the form "<dir> <time>,<name>,<id>,<value>". Every other
line is ignored. Signals are paired in order and each pair that differs is
reported as a numbered block. Signals left over at the end of the second
log are reported alone.

Exit codes:
  0 - Comparison completed
  1 - Differences found (only with --fail-on-diff)
  2 - Command error (bad arguments, unreadable logs, invalid config)

Examples:
  sigcmp reference.log capture.log
  sigcmp reference.log capture.log --time-deviation 0.05
  sigcmp reference.log capture.log --ignore-time --format json`,
		Args:          exactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmpOpts, args[0], args[1], cmd)
		},
	}

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return WrapExitError(ExitCommandError, "invalid arguments", err)
	})

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output (debug logging)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "config file (default "+config.ConfigFile()+")")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", logging.DefaultLevel.String(), "log level (debug|info|warn|error|disabled)")

	// Compare flags
	cmd.Flags().BoolVarP(&cmpOpts.IgnoreTime, "ignore-time", "i", false, "compare direction and payload only")
	cmd.Flags().Float64VarP(&cmpOpts.TimeDeviation, "time-deviation", "t", 0, "accept timestamps that differ by at most this many seconds")
	cmd.Flags().BoolVar(&cmpOpts.FailOnDiff, "fail-on-diff", false, "exit 1 when differences are found")
	cmd.Flags().BoolVar(&cmpOpts.Summary, "summary", false, "print a summary line after the reports")

	cmd.AddCommand(NewScanCommand(opts))
	cmd.AddCommand(NewTestCommand(opts))

	return cmd
}

// exactArgs is cobra.ExactArgs with the command-error exit code.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return WrapExitError(ExitCommandError, "invalid arguments", err)
		}
		return nil
	}
}

// setup layers flags over env and config file, then builds the logger.
func (o *RootOptions) setup(cmd *cobra.Command) error {
	v := viper.New()
	if err := config.Init(v, o.ConfigFile); err != nil {
		return o.commandError(cmd, v, "failed to load config", err)
	}

	for key, name := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return WrapExitError(ExitCommandError, fmt.Sprintf("failed to bind flag --%s", name), err)
			}
		}
	}

	cfg, err := config.Load(v)
	if err != nil {
		return o.commandError(cmd, v, "invalid configuration", err)
	}
	if o.Verbose {
		cfg.LogLevel = "debug"
	}

	o.Config = cfg
	o.Format = cfg.Format
	o.RunID = o.RunIDs.Generate()

	var logger zerolog.Logger
	if cfg.Format == "json" {
		logger = logging.New(cmd.ErrOrStderr(), cfg.LogLevel)
	} else {
		logger = logging.NewConsole(cmd.ErrOrStderr(), cfg.LogLevel)
	}
	o.Logger = logging.WithRun(logger, o.RunID)

	o.Logger.Debug().
		Str("command", cmd.Name()).
		Str("config_file", v.ConfigFileUsed()).
		Str("policy", cfg.Policy().String()).
		Msg("configuration loaded")

	return nil
}

// commandError reports a setup failure as E_INVALID_ARGUMENT when JSON
// output was requested.
func (o *RootOptions) commandError(cmd *cobra.Command, v *viper.Viper, message string, err error) error {
	if v.GetString(config.KeyFormat) == "json" || o.Format == "json" {
		f := &OutputFormatter{Format: "json", Writer: cmd.OutOrStdout()}
		if werr := f.Error(CodeInvalidArgument, fmt.Sprintf("%s: %v", message, err), nil); werr != nil {
			return werr
		}
	}
	return WrapExitError(ExitCommandError, message, err)
}

// formatter returns an OutputFormatter for cmd's stdout.
func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:  o.Format,
		Writer:  cmd.OutOrStdout(),
		TraceID: o.RunID,
	}
}
