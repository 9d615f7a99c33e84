package main

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ramlang/ram"
	"github.com/ramlang/ram/parser"
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Parse and execute a Ram source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		start := time.Now()
		program, err := parser.ParseFile(path)
		if err != nil {
			return err
		}
		log.Debug().
			Str("file", path).
			Int("statements", len(program.Statements)).
			Dur("elapsed", time.Since(start)).
			Msg("parsed")
		start = time.Now()
		if err := ram.Eval(program, ram.WithOutput(cmd.OutOrStdout())); err != nil {
			return err
		}
		log.Debug().
			Str("file", path).
			Dur("elapsed", time.Since(start)).
			Msg("evaluated")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
