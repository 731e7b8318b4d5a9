// Command atpg is the CLI surface over the three core operations (fault-
// free simulation, deductive fault simulation, PODEM test generation) plus
// the supplemented random-vector coverage harness.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/circuitlab/atpg/internal/obslog"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "atpg",
	Short: "Automatic test pattern generation for combinational single stuck-at faults",
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "trace-level logging on stderr")
}

// logLevel returns the zerolog level the --verbose flag selects.
func logLevel() zerolog.Level {
	if verbose {
		return zerolog.TraceLevel
	}
	return zerolog.InfoLevel
}

func newLogger() *obslog.Logger {
	return obslog.New(os.Stderr, logLevel())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if verbose {
			// %+v prints the stack trace github.com/pkg/errors attached.
			fmt.Fprintf(os.Stderr, "%+v\n", err)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
