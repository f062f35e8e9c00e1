// Package cmd implements the semfilter command-line tool.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/qpanda/semfilter/pkg/expr/experr"
	"github.com/qpanda/semfilter/pkg/expr/format"
	"github.com/qpanda/semfilter/pkg/expr/parser"
	"github.com/qpanda/semfilter/pkg/logging"
	"github.com/qpanda/semfilter/pkg/stream"
	"github.com/qpanda/semfilter/pkg/version"
)

const (
	helpLong = `semfilter reads lines of text and emits only those that satisfy a
boolean expression of typed conditions over the semantically typed tokens
found on each line (integers, floats, ids, dates and times, IP addresses,
socket endpoints, CIDR networks and semantic versions).

Expression grammar:

  expression  := conditions
  conditions  := condition
               | conditions ('and' | 'or') conditions
               | '(' conditions ')'
  condition   := selector comparator value
  selector    := '$'name | function '(' '$'name ')'

A mix of 'and' and 'or' at the same nesting level must be parenthesized.

Variables: $integer $float $id $date $time $dateTime $localDateTime
  $ipAddress $ipv4Address $ipv6Address
  $ipSocketAddress $ipv4SocketAddress $ipv6SocketAddress
  $ipNetwork $ipv4Network $ipv6Network
  $semanticVersion

Functions: port(<socket-address>), ip(<socket-address>)

Comparators: == != > >= < <=
  id only:          contains, starts-with, ends-with
  address only:     in, not in
  semanticVersion:  matches
`
)

var cmdLineParams struct {
	InputFile           string
	DateFormat          string
	TimeFormat          string
	DateTimeFormat      string
	LocalDateTimeFormat string
	Count               bool
	Version             bool
}

var rootCmd = &cobra.Command{
	Use:           "semfilter [flags] <expression>",
	Short:         "Filter text lines by a typed boolean expression",
	Long:          helpLong,
	Args:          cobra.MaximumNArgs(1),
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.InitDefaultHelpCmd()
	rootCmd.InitDefaultHelpFlag()

	flags := rootCmd.Flags()

	flags.StringVarP(&cmdLineParams.InputFile, "input-file", "i", "", "Read input from <path> instead of standard input\n")
	flags.StringVar(&cmdLineParams.DateFormat, "date-format", format.DefaultDatePattern, "strftime-style pattern for $date\n")
	flags.StringVar(&cmdLineParams.TimeFormat, "time-format", format.DefaultTimePattern, "strftime-style pattern for $time\n")
	flags.StringVar(&cmdLineParams.DateTimeFormat, "date-time-format", format.DefaultDateTimePattern, "strftime-style pattern for $dateTime\n")
	flags.StringVar(&cmdLineParams.LocalDateTimeFormat, "local-date-time-format", format.DefaultLocalDateTimePattern, "strftime-style pattern for $localDateTime\n")
	flags.BoolVarP(&cmdLineParams.Count, "count", "c", false, "Print processed and matched line counts to standard error on exit\n")
	flags.BoolVar(&cmdLineParams.Version, "version", false, "Print version information and exit\n")
}

// GetRootCmd returns the root command, for use by the main package and by
// documentation generators.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

// Execute is the CLI entrypoint.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger, logErr := logging.New(logging.LevelError, logging.EncodingPlain, logging.WithOutput(os.Stderr))
		if logErr != nil {
			fmt.Fprintf(os.Stderr, "failed to instantiate CLI logger: %v\n", logErr)
			fmt.Fprintf(os.Stderr, "error running semfilter: %s\n", err)
			os.Exit(exitCodeFor(err))
		}
		logger.Errorf("%s", err)
		os.Exit(exitCodeFor(err))
	}
}

// exitCodeFor maps an error kind to a nonzero exit code; the specific
// value is a CLI concern and does not affect evaluation semantics.
func exitCodeFor(err error) int {
	var (
		syntaxErr  *experr.SyntaxError
		typeErr    *experr.TypeError
		literalErr *experr.LiteralFormatError
		ioErr      *experr.IOError
		configErr  *experr.ConfigError
	)
	switch {
	case errors.As(err, &syntaxErr), errors.As(err, &typeErr), errors.As(err, &literalErr):
		return 2
	case errors.As(err, &configErr):
		return 3
	case errors.As(err, &ioErr):
		return 4
	default:
		return 1
	}
}

func run(cmd *cobra.Command, args []string) error {
	if cmdLineParams.Version {
		fmt.Fprint(os.Stdout, version.Version())
		return nil
	}

	if len(args) != 1 {
		return &experr.ConfigError{Option: "expression", Err: errors.New("no expression supplied; pass one as the final argument")}
	}
	condition := args[0]

	formats, err := format.New(cmdLineParams.DateFormat, cmdLineParams.TimeFormat, cmdLineParams.DateTimeFormat, cmdLineParams.LocalDateTimeFormat)
	if err != nil {
		return &experr.ConfigError{Option: "format", Err: err}
	}

	expr, err := parser.Parse(condition, formats)
	if err != nil {
		return err
	}

	input := os.Stdin
	if cmdLineParams.InputFile != "" {
		f, err := os.Open(cmdLineParams.InputFile)
		if err != nil {
			return &experr.IOError{Op: "open input file", Err: err}
		}
		defer f.Close()
		input = f
	}

	counters, err := stream.Run(input, os.Stdout, expr, formats)
	if err != nil {
		return err
	}

	if cmdLineParams.Count {
		fmt.Fprintf(os.Stderr, "processed: %d matched: %d\n", counters.Processed, counters.Matched)
	}
	return nil
}
