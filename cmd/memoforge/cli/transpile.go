package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/memoforge/memoforge/delta"
)

var transpileCmd = &cobra.Command{
	Use:   "transpile <file>",
	Short: "Transpile a Quill Delta document into Typst markup",
	Long: `Transpile reads a Quill Delta JSON document ({"ops": [...]} or a bare
ops array) and writes the equivalent Typst markup to stdout. Use "-" to
read from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readInput(args[0])
		if err != nil {
			return err
		}
		doc, err := delta.ParseDocument(data)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), delta.Transpile(doc))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(transpileCmd)
}
