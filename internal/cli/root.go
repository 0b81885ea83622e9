package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	str2duration "github.com/xhit/go-str2duration/v2"

	"github.com/lucrnz/humanspan/duration"
	"github.com/lucrnz/humanspan/internal/logging"
	"github.com/lucrnz/humanspan/internal/version"
	"github.com/lucrnz/humanspan/locale"
)

var (
	format     string
	precision  int
	entrySep   string
	labelSep   string
	compactSep string
	localeDir  string
	localeCode string
	watch      bool
	pollEvery  string
	repl       bool
	logLevel   string
	logFormat  string
)

var rootCmd = &cobra.Command{
	Use:   "humanspan [duration text]",
	Short: "Convert human duration text to exact magnitudes and back",
	Long: `humanspan

Parses free-form duration text like "3 days, 4hrs and 5 mins" into an exact
millisecond magnitude and prints it in one of several shapes: verbose,
elegant, compact, colon, scientific, binary or object.

Examples:
  humanspan "3 days, 4hrs and 5 mins"
  humanspan -f elegant "1h30m"
  humanspan -f colon "90 minutes"
  humanspan -f object "2.5 giga-years"
`,
	Args:    cobra.ArbitraryArgs,
	RunE:    run,
	Version: version.Print(),
}

func init() {
	rootCmd.Flags().StringVarP(&format, "format", "f", "verbose", "Output shape: verbose, elegant, compact, colon, scientific, binary, object")
	rootCmd.Flags().IntVarP(&precision, "precision", "p", 7, "Maximum entries for verbose and elegant output")
	rootCmd.Flags().StringVar(&entrySep, "separator", " ", "Separator between verbose entries")
	rootCmd.Flags().StringVar(&labelSep, "label-separator", " ", "Separator between a count and its label")
	rootCmd.Flags().StringVar(&compactSep, "compact-separator", " ", "Separator between compact entries")
	rootCmd.Flags().StringVar(&localeDir, "locale-dir", "", "Directory of *.json label tables")
	rootCmd.Flags().StringVar(&localeCode, "locale", "", "Locale code from --locale-dir to render with (e.g. \"es\")")
	rootCmd.Flags().BoolVar(&watch, "watch", false, "Poll --locale-dir for changes while running (requires --repl)")
	rootCmd.Flags().StringVar(&pollEvery, "poll", "5s", "Locale poll interval (e.g. \"10s\", \"1m\")")
	rootCmd.Flags().BoolVar(&repl, "repl", false, "Read duration text line by line from stdin")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.Flags().StringVar(&logFormat, "log-format", "console", "Log format: console, text, json")

	// Silence usage output for runtime errors, but show it for flag errors
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		_ = cmd.Usage()
		return err
	})
}

// ExecuteContext runs the root command with the given context.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func run(cmd *cobra.Command, args []string) error {
	logger, err := logging.New(logLevel, logFormat)
	if err != nil {
		return err
	}
	locale.SetLogger(logger)

	loader, err := setupLocales(cmd, logger)
	if err != nil {
		return err
	}

	opts := duration.Options{
		Precision:  precision,
		LeftSep:    labelSep,
		RightSep:   entrySep,
		CompactSep: compactSep,
	}

	if repl {
		return runREPL(cmd.Context(), loader, opts, os.Stdin, os.Stdout, os.Stderr)
	}

	formatter, err := currentFormatter(loader)
	if err != nil {
		return err
	}

	text := strings.Join(args, " ")
	if strings.TrimSpace(text) == "" {
		_ = cmd.Usage()
		return fmt.Errorf("no duration text given")
	}

	out, err := render(formatter, text, opts)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

// setupLocales wires the optional locale directory, starting the polling
// watcher when requested. It returns a nil loader when no directory is
// configured.
func setupLocales(cmd *cobra.Command, logger *slog.Logger) (*locale.Loader, error) {
	if localeDir == "" {
		if localeCode != "" {
			return nil, fmt.Errorf("--locale requires --locale-dir")
		}
		return nil, nil
	}

	loader := locale.NewLoader(localeDir)
	if err := loader.Load(); err != nil {
		return nil, err
	}
	logger.Debug("locales loaded", "dir", localeDir, "codes", loader.Locales())

	if localeCode != "" {
		if _, ok := loader.Table(localeCode); !ok {
			return nil, fmt.Errorf("locale %q not found in %s (available: %s)",
				localeCode, localeDir, strings.Join(loader.Locales(), ", "))
		}
	}

	if watch {
		if !repl {
			return nil, fmt.Errorf("--watch is only useful with --repl")
		}
		interval, err := str2duration.ParseDuration(pollEvery)
		if err != nil {
			return nil, fmt.Errorf("invalid --poll value: %w", err)
		}
		go loader.Watch(cmd.Context(), interval)
	}

	return loader, nil
}

// currentFormatter builds a formatter from the loader's freshest table, so
// a polled reload is visible on the very next render.
func currentFormatter(loader *locale.Loader) (*duration.Formatter, error) {
	if loader == nil || localeCode == "" {
		return duration.NewFormatter(nil), nil
	}
	table, ok := loader.Table(localeCode)
	if !ok {
		return nil, fmt.Errorf("locale %q no longer present in %s", localeCode, localeDir)
	}
	return duration.NewFormatter(table), nil
}

func runREPL(ctx context.Context, loader *locale.Loader, opts duration.Options, in io.Reader, out, errOut io.Writer) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		formatter, err := currentFormatter(loader)
		if err != nil {
			fmt.Fprintln(errOut, err)
			continue
		}
		rendered, err := render(formatter, line, opts)
		if err != nil {
			fmt.Fprintln(errOut, err)
			continue
		}
		fmt.Fprintln(out, rendered)
	}
	return scanner.Err()
}

func render(f *duration.Formatter, text string, opts duration.Options) (string, error) {
	d, err := duration.Parse(text)
	if err != nil {
		return "", err
	}

	switch format {
	case "verbose":
		return f.Verbose(d, opts)
	case "elegant":
		return f.Elegant(d, opts)
	case "compact":
		return f.Compact(d, opts)
	case "colon":
		return f.Colon(d)
	case "scientific":
		return f.Scientific(d)
	case "binary":
		return f.Binary(d)
	case "object":
		return renderObject(f, d)
	default:
		return "", fmt.Errorf("unsupported format %q", format)
	}
}

// renderObject prints the full unit breakdown as a JSON object with keys
// in canonical descending order.
func renderObject(f *duration.Formatter, d duration.Duration) (string, error) {
	counts, err := f.Breakdown(d)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteByte('{')
	for i, u := range duration.Units() {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%q:%s", u.String(), counts[u].String())
	}
	b.WriteByte('}')
	return b.String(), nil
}
