package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/specialistvlad/pantrygraph/internal/app"
	"github.com/specialistvlad/pantrygraph/internal/property"
	"github.com/spf13/cobra"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

const (
	exitFailure = 1
	exitUsage   = 2
)

func usageError(err error) error {
	return &ExitError{Code: exitUsage, Message: err.Error()}
}

// usageArgs turns a positional argument validation failure into a usage error.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return usageError(err)
		}
		return nil
	}
}

// options are the persistent flags shared by every subcommand.
type options struct {
	configPath string
	logLevel   string
	logFormat  string
	sources    app.Sources
}

// appConfig validates the persistent flags.
func (o *options) appConfig() (*app.Config, error) {
	cfg, err := app.NewConfig(app.Config{
		ConfigPath: o.configPath,
		LogLevel:   strings.ToLower(o.logLevel),
		LogFormat:  strings.ToLower(o.logFormat),
	})
	if err != nil {
		return nil, usageError(err)
	}
	return cfg, nil
}

// parseFilter reads --prop values into a property filter.
func parseFilter(raw []string) ([]property.Property, error) {
	filter, err := property.ParseAll(raw)
	if err != nil {
		return nil, usageError(fmt.Errorf("invalid --prop: %w", err))
	}
	return filter, nil
}

// NewRootCommand assembles the pantrygraph command tree. Query results are
// written to outW, logs and help for errors to errW.
func NewRootCommand(outW, errW io.Writer, sources app.Sources) *cobra.Command {
	opts := &options{sources: sources}

	cmd := &cobra.Command{
		Use:   "pantrygraph",
		Short: "Query a food taxonomy built from a lexicon and curated tables",
		Long: `pantrygraph builds a food taxonomy from a lexicon of concepts and a set of
curated tables (categories, substitutes, properties, synonyms, cancellations)
described by an HCL configuration file, then answers a single query against it.

Properties are written as tag (positive), -tag (negative) or .tag (local).`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usageError(fmt.Errorf("unknown command %q for %q", args[0], cmd.CommandPath()))
			}
			return cmd.Help()
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	cmd.SetOut(outW)
	cmd.SetErr(errW)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "pantry.hcl", "Path to an .hcl configuration file or a directory of them.")
	pf.StringVar(&opts.logLevel, "log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	pf.StringVar(&opts.logFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")

	cmd.AddCommand(
		newBuildCommand(opts),
		newPickCommand(opts),
		newSearchCommand(opts),
		newSubsCommand(opts),
		newPropsCommand(opts),
		newHasCommand(opts),
		newLineageCommand(opts),
		newCommonCommand(opts),
		newOriginCommand(opts),
		newMembersCommand(opts),
	)
	return cmd
}

// Execute runs the command tree against args. Usage problems are reported as
// an ExitError with code 2.
func Execute(args []string, outW, errW io.Writer) error {
	if args == nil {
		args = []string{}
	}
	cmd := NewRootCommand(outW, errW, app.DefaultSources())
	cmd.SetArgs(args)
	err := cmd.Execute()
	var exitErr *ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return &ExitError{Code: exitFailure, Message: err.Error()}
	}
	return err
}
