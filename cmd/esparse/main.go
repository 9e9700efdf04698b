// Command esparse prints the ESTree JSON of a JavaScript file.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/t14raptor/go-estree/ast"
	"github.com/t14raptor/go-estree/parser"
)

var (
	opts    parser.Options
	compact bool
	verbose bool
)

func newLogger() *zap.Logger {
	if verbose {
		logger, err := zap.NewDevelopment()
		if err == nil {
			return logger
		}
	}
	return zap.NewNop()
}

// run parses the named file, or stdin for "-", and writes the tree to out.
func run(name string, out io.Writer, logger *zap.Logger) error {
	var (
		src []byte
		err error
	)
	if name == "-" {
		src, err = io.ReadAll(os.Stdin)
	} else {
		src, err = os.ReadFile(name)
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	logger.Debug("parsing",
		zap.String("file", name),
		zap.Int("bytes", len(src)),
		zap.Bool("module", opts.Module),
	)

	program, err := parser.Parse(string(src), &opts)
	if err != nil {
		var perr *parser.Error
		if errors.As(err, &perr) {
			logger.Debug("parse failed",
				zap.Int("line", perr.Line),
				zap.Int("column", perr.Column),
				zap.String("message", perr.Message),
			)
		}
		return fmt.Errorf("%s: %w", name, err)
	}

	var b []byte
	if compact {
		b, err = ast.Marshal(program)
	} else {
		b, err = ast.MarshalIndent(program, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("encoding %s: %w", name, err)
	}
	logger.Debug("parsed", zap.Int("statements", len(program.Body)))
	_, err = fmt.Fprintln(out, string(b))
	return err
}

var root = cobra.Command{
	Use:   "esparse [file.js | -]",
	Short: "parse JavaScript and print the ESTree JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		defer logger.Sync()
		return run(args[0], cmd.OutOrStdout(), logger)
	},
	SilenceUsage: true,
}

func init() {
	f := root.Flags()
	f.BoolVarP(&opts.Module, "module", "m", false, "parse with the Module goal")
	f.BoolVar(&opts.Next, "next", false, "enable import attributes")
	f.BoolVarP(&opts.Loc, "loc", "l", false, "include start, end and loc on every node")
	f.BoolVar(&opts.DisableWebCompat, "no-web-compat", false, "disable the web compatibility grammar")
	f.BoolVar(&opts.Directives, "directives", false, "mark directive prologue statements")
	f.BoolVar(&opts.Raw, "raw", false, "include the source text of literals")
	f.BoolVar(&opts.GlobalReturn, "global-return", false, "allow return at the top level")
	f.BoolVar(&opts.ImpliedStrict, "strict", false, "parse scripts as strict mode code")
	f.BoolVarP(&compact, "compact", "c", false, "print JSON without indentation")
	f.BoolVarP(&verbose, "verbose", "v", false, "log progress to stderr")
}

func main() {
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
