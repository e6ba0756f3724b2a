package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/memoforge/memoforge"
	"github.com/memoforge/memoforge/slogger"
	"github.com/memoforge/memoforge/typst"
)

var (
	renderFormat string
	renderOutput string
	renderDryRun bool
	renderWatch  bool
)

var renderCmd = &cobra.Command{
	Use:   "render <file>",
	Short: "Render memo input into an SVG or PDF document",
	Long: `Render runs the full pipeline: the input is validated against the
official memorandum schema, defaults are filled in, the rich-text body is
transpiled to Typst markup, and the assembled document is compiled with
the typst binary. Use "-" to read from stdin.

With --watch the input file is re-rendered every time it changes, until
interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		format := memoforge.Format(renderFormat)
		if renderFormat == "" {
			format = memoforge.Format(cfg.Format)
		}

		pipeline, err := memoforge.NewPipeline(memoforge.PipelineOptions{
			Compiler: typst.NewCLI(cfg.TypstBinary),
			Logger:   newLogger(cfg),
		})
		if err != nil {
			return err
		}

		if renderWatch {
			if args[0] == "-" {
				return fmt.Errorf("--watch requires a file input, not stdin")
			}
			if renderOutput == "" || renderOutput == "-" {
				return fmt.Errorf("--watch requires --output")
			}
			return watchAndRender(cmd.Context(), pipeline, newLogger(cfg), args[0], format)
		}

		data, err := readInput(args[0])
		if err != nil {
			return err
		}

		if renderDryRun {
			document, err := pipeline.Prepare(data)
			if err != nil {
				return renderError(args[0], err)
			}
			fmt.Fprint(cmd.OutOrStdout(), document)
			return nil
		}

		out, err := pipeline.Render(cmd.Context(), data, format)
		if err != nil {
			return renderError(args[0], err)
		}

		if renderOutput == "" || renderOutput == "-" {
			_, err = cmd.OutOrStdout().Write(out)
			return err
		}
		if err := os.WriteFile(renderOutput, out, 0o644); err != nil {
			return fmt.Errorf("error writing %s: %w", renderOutput, err)
		}
		return nil
	},
}

// watchAndRender re-renders input into renderOutput on every change until
// the context is canceled. Render failures are reported and watching
// continues.
func watchAndRender(ctx context.Context, pipeline *memoforge.Pipeline, logger slogger.Logger, input string, format memoforge.Format) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the parent directory: editors commonly replace the file on
	// save, which drops a watch placed on the file itself.
	if err := watcher.Add(filepath.Dir(input)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", input, err)
	}

	renderOnce := func() {
		data, err := os.ReadFile(input)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return
		}
		out, err := pipeline.Render(ctx, data, format)
		if err != nil {
			if err := renderError(input, err); err != nil {
				fmt.Fprintln(os.Stderr, "Error:", err)
			}
			return
		}
		if err := os.WriteFile(renderOutput, out, 0o644); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return
		}
		fmt.Fprintf(os.Stderr, "Rendered %s -> %s\n", input, renderOutput)
	}

	renderOnce()
	fmt.Fprintf(os.Stderr, "Watching %s, press Ctrl+C to stop\n", input)

	target := filepath.Clean(input)
	var lastEvent time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			// Debounce bursts of events from a single save.
			if time.Since(lastEvent) < 100*time.Millisecond {
				continue
			}
			lastEvent = time.Now()
			renderOnce()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("file watcher error", "error", err)
		}
	}
}

// renderError expands a validation failure into the full report; other
// errors pass through.
func renderError(path string, err error) error {
	var failure *memoforge.ValidationFailure
	if errors.As(err, &failure) {
		printValidationReport(os.Stderr, path, failure.Errors)
		if len(failure.Errors) == 1 {
			return fmt.Errorf("1 validation error")
		}
		return fmt.Errorf("%d validation errors", len(failure.Errors))
	}
	return err
}

func init() {
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", "",
		"Output format: svg or pdf (default from config)")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "",
		"Output file (default stdout)")
	renderCmd.Flags().BoolVar(&renderDryRun, "dry-run", false,
		"Print the assembled Typst document instead of compiling it")
	renderCmd.Flags().BoolVarP(&renderWatch, "watch", "w", false,
		"Re-render whenever the input file changes (requires --output)")
	rootCmd.AddCommand(renderCmd)
}
