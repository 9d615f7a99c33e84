package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ramlang/ram/parser"
)

var astCmd = &cobra.Command{
	Use:   "ast <file>",
	Short: "Print the parsed statement tree of a Ram source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		program, err := parser.ParseFile(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), program.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(astCmd)
}
