// Command ram parses and runs Ram programs.
package main

import (
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/xyproto/env/v2"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:           "ram",
	Short:         "Ram is a small brace-delimited, line-oriented scripting language",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	zerolog.SetGlobalLevel(logLevel())
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
	})
	if env.Bool("NO_COLOR") {
		color.NoColor = true
	}
}

// logLevel reads RAM_LOG_LEVEL from the environment, defaulting to warn so
// normal runs stay quiet.
func logLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(env.Str("RAM_LOG_LEVEL", "warn"))
	if err != nil {
		return zerolog.WarnLevel
	}
	return level
}

// fatal renders err in the standard "Line <n>: '<text>'" shape and exits.
func fatal(err error) {
	color.New(color.FgRed, color.Bold).Fprint(os.Stderr, "error: ")
	color.New(color.FgRed).Fprintln(os.Stderr, err.Error())
	os.Exit(1)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fatal(err)
	}
}
