package main

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/ramlang/ram/parser"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Parse Ram source files and report every failure",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var result *multierror.Error
		for _, path := range args {
			if _, err := parser.ParseFile(path); err != nil {
				result = multierror.Append(result,
					fmt.Errorf("%s: %w", path, err))
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", path)
		}
		return result.ErrorOrNil()
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
