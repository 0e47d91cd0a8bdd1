package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/codeatlas-io/codeatlas/internal/config"
	"github.com/codeatlas-io/codeatlas/internal/extract"
	"github.com/codeatlas-io/codeatlas/internal/output"
	"github.com/codeatlas-io/codeatlas/internal/runner"
	"github.com/codeatlas-io/codeatlas/internal/scanner"
	"github.com/codeatlas-io/codeatlas/internal/watch"
)

var (
	formatFlag       string
	outputFlag       string
	langFlag         string
	workersFlag      int
	quietFlag        bool
	watchFlag        bool
	classMethodsFlag bool
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract [path]",
	Short: "Extract normalized code structure from a project",
	Long: `Extract parses every supported source file under the given path
(default: current directory), normalizes classes, methods, fields,
documentation, and metrics into one schema, and serializes the result.

Examples:
  # Extract the current directory as JSON to stdout
  codeatlas extract

  # Extract a project as readable text to a file
  codeatlas extract --format text --output atlas.txt /path/to/project

  # Re-extract on file changes
  codeatlas extract --watch
`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().StringVarP(&formatFlag, "format", "f", "", "output format: json or text (default from config)")
	extractCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "output file (default stdout)")
	extractCmd.Flags().StringVarP(&langFlag, "lang", "l", "", "restrict extraction to one language id")
	extractCmd.Flags().IntVar(&workersFlag, "workers", 0, "parallel workers (default from config)")
	extractCmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "disable progress output")
	extractCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "watch for file changes and re-extract")
	extractCmd.Flags().BoolVar(&classMethodsFlag, "include-class-methods", true, "include methods declared inside classes")
}

func runExtract(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals gracefully.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "\nInterrupted, cancelling extraction...")
		cancel()
	}()

	rootDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}
	if len(args) == 1 {
		rootDir, err = absPath(args[0])
		if err != nil {
			return err
		}
	}

	cfg, err := config.Load(rootDir)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if formatFlag != "" {
		cfg.Format = formatFlag
	}
	if outputFlag != "" {
		cfg.Output = outputFlag
	}
	if workersFlag > 0 {
		cfg.Workers = workersFlag
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if langFlag != "" {
		if _, err := extract.ConfigFor(langFlag); err != nil {
			return err
		}
	}

	sc, err := scanner.New(rootDir, cfg.Include, cfg.Exclude)
	if err != nil {
		return fmt.Errorf("invalid pattern: %w", err)
	}

	if err := extractOnce(ctx, rootDir, cfg, sc); err != nil {
		return err
	}
	if !watchFlag {
		return nil
	}

	w, err := watch.New(rootDir, sc, func(ctx context.Context, changed []string) {
		if !quietFlag {
			fmt.Fprintf(os.Stderr, "Changes in %d file(s), re-extracting...\n", len(changed))
		}
		if err := extractOnce(ctx, rootDir, cfg, sc); err != nil {
			fmt.Fprintf(os.Stderr, "re-extraction failed: %v\n", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	w.Start(ctx)
	defer w.Stop()

	<-ctx.Done()
	return nil
}

func extractOnce(ctx context.Context, rootDir string, cfg *config.Config, sc *scanner.Scanner) error {
	files, err := sc.Discover()
	if err != nil {
		return fmt.Errorf("discovery failed: %w", err)
	}
	if langFlag != "" {
		filtered := files[:0]
		for _, f := range files {
			if lang, ok := scanner.DetectLanguage(f); ok && lang == langFlag {
				filtered = append(filtered, f)
			}
		}
		files = filtered
	}

	// The progress bar writes to stdout; suppress it when the document goes
	// there too.
	r := runner.New(cfg.Workers, NewCLIProgressReporter(quietFlag || cfg.Output == ""))
	r.IncludeClassMethods = classMethodsFlag
	results := r.Run(ctx, files)
	doc := output.NewDocument(rootDir, results)

	var w io.Writer = os.Stdout
	if cfg.Output != "" {
		f, err := os.Create(cfg.Output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	switch cfg.Format {
	case "text":
		return output.WriteText(w, doc)
	default:
		return output.WriteJSON(w, doc)
	}
}

func absPath(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("cannot access %s: %w", path, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory", path)
	}
	return filepath.Abs(path)
}
