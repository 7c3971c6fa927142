// Command morphed reconciles HTML documents the way a morphed view does.
package main

import (
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vango-dev/morphed/internal/config"
	"github.com/vango-dev/morphed/internal/errors"
	"github.com/vango-dev/morphed/pkg/vdom"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Error output formats accepted by --error-format.
const (
	errorFormatText    = "text"
	errorFormatJSON    = "json"
	errorFormatCompact = "compact"
)

type rootFlags struct {
	verbose     bool
	noColor     bool
	errorFormat string
}

func main() {
	var flags rootFlags
	if err := newRootCmd(&flags).Execute(); err != nil {
		printError(os.Stderr, err, flags.errorFormat)
		os.Exit(1)
	}
}

func newRootCmd(f *rootFlags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "morphed",
		Short: "Reconcile HTML trees in place",
		Long: `morphed reconciles a live HTML tree with a candidate tree in place,
leaving alone every element that carries the ignored attribute.

  • morph   reconcile a live document with a candidate
  • ignore  give ids to ignored elements
  • codes   list error codes`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if f.noColor || !isTerminal(cmd.ErrOrStderr()) {
				errors.DisableColors()
			} else {
				errors.EnableColors()
			}
			switch f.errorFormat {
			case errorFormatText, errorFormatJSON, errorFormatCompact:
				return nil
			default:
				return errors.Newf(errors.CategoryCLI, "unknown error format %q", f.errorFormat).
					WithSuggestion("Use one of: text, json, compact")
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&f.verbose, "verbose", "v", false, "Log each update pass to stderr")
	rootCmd.PersistentFlags().BoolVar(&f.noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&f.errorFormat, "error-format", errorFormatText, "Error output format: text, json or compact")

	rootCmd.AddCommand(
		morphCmd(f),
		ignoreCmd(f),
		codesCmd(),
		versionCmd(),
	)
	return rootCmd
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}

// printError writes err to w in the requested format. Errors without a code
// anywhere in their chain are reported as M303.
func printError(w io.Writer, err error, format string) {
	var e *errors.Error
	if !stderrors.As(err, &e) {
		e = errors.FromError(err, "M303")
	}
	switch format {
	case errorFormatJSON:
		fmt.Fprintln(w, e.FormatJSON())
	case errorFormatCompact:
		fmt.Fprintln(w, e.FormatCompact())
	default:
		errors.PrintError(w, e)
	}
}

// newLogger returns a debug logger on w when verbose, or one that drops
// everything.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// loadConfig reads the file at path, or the configuration of the nearest
// directory at or above the working directory that has one, or the
// defaults. override applies flag values before validation.
func loadConfig(path string, logger *slog.Logger, override func(*config.Config)) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.LoadFile(path)
	} else if root, rerr := config.FindProjectRoot("."); rerr == nil {
		cfg, err = config.Load(root)
	} else {
		cfg = config.New()
	}
	if err != nil {
		return nil, err
	}
	if cfg.Path() != "" {
		logger.Debug("morphed: loaded config", "path", cfg.Path())
	}

	if override != nil {
		override(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// parseFile reads a single-root HTML document.
func parseFile(path string) (*vdom.VNode, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.New("M301").WithDetail(path).Wrap(err)
	}
	defer f.Close()

	node, err := vdom.Parse(f)
	if err != nil {
		return nil, errors.New("M301").WithDetail(path).Wrap(err)
	}
	return node, nil
}

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	mark := "✓"
	if errors.ColorsEnabled() {
		mark = "\033[32m✓\033[0m"
	}
	fmt.Fprintf(w, "%s %s\n", mark, fmt.Sprintf(format, args...))
}
