package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/memoforge/memoforge/memo"
	"github.com/memoforge/memoforge/schema"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file|pattern>...",
	Short: "Validate memo input against the official memorandum schema",
	Long: `Validate checks memo input files against the official memorandum schema
and reports every violation found, not just the first. Arguments may be
file paths or glob patterns ("memos/**/*.json"). Use "-" to read from
stdin.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := resolveInputPaths(args)
		if err != nil {
			return err
		}

		total := 0
		for _, path := range paths {
			data, err := readInput(path)
			if err != nil {
				return err
			}
			obj, err := decodeObject(data)
			if err != nil {
				if len(paths) > 1 {
					return fmt.Errorf("%s: %w", path, err)
				}
				return err
			}

			errs := memo.Validate(obj)
			if len(errs) == 0 {
				color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "%s is valid\n", path)
				continue
			}
			total += len(errs)
			printValidationReport(os.Stderr, path, errs)
		}

		if total == 1 {
			return fmt.Errorf("1 validation error")
		}
		if total > 1 {
			return fmt.Errorf("%d validation errors", total)
		}
		return nil
	},
}

// resolveInputPaths expands glob patterns in args. A literal "-" passes
// through as stdin.
func resolveInputPaths(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		if arg == "-" {
			paths = append(paths, arg)
			continue
		}
		matches, err := doublestar.FilepathGlob(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %s: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match %s", arg)
		}
		paths = append(paths, matches...)
	}
	return paths, nil
}

func printValidationReport(w io.Writer, path string, errs []schema.Error) {
	color.New(color.FgRed).Fprintf(w, "%s failed validation:\n", path)
	for _, e := range errs {
		fmt.Fprintf(w, "  %s\n", e.Message)
	}
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
