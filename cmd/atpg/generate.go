package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/circuitlab/atpg/internal/netlist"
	"github.com/circuitlab/atpg/internal/podem"
)

var generateBatchFile string

var generateCmd = &cobra.Command{
	Use:   "generate <netlist> <fault>",
	Short: "PODEM test generation for a single stuck-at fault",
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateBatchFile, "file", "f", "", `batch file: one "<netlist> <fault>" pair per line`)
	rootCmd.AddCommand(generateCmd)
}

// runGenerate reports a hard error (exit 1, via the returned error) the
// same as the other subcommands, but Undetectable is not an error (spec
// §7): it is tracked separately and only changes the process exit code
// (2) after every line has run.
func runGenerate(cmd *cobra.Command, args []string) error {
	var anyUndetectable bool
	one := func(fields []string) error {
		ok, err := generateOne(fields)
		if err != nil {
			return err
		}
		if !ok {
			anyUndetectable = true
		}
		return nil
	}

	var err error
	if generateBatchFile != "" {
		err = runBatch(generateBatchFile, one)
	} else {
		err = one(args)
	}
	if err != nil {
		return err
	}
	if anyUndetectable {
		os.Exit(2)
	}
	return nil
}

// generateOne runs PODEM for one (netlist, fault) pair and reports whether
// a test vector was found.
func generateOne(args []string) (bool, error) {
	if len(args) != 2 {
		return false, errors.Errorf(`expected "<netlist> <fault>", got %q`, strings.Join(args, " "))
	}
	c, err := loadCircuit(args[0])
	if err != nil {
		return false, err
	}
	fault, err := netlist.ParseFault(c, args[1])
	if err != nil {
		return false, err
	}

	gen := podem.NewGenerator(c, fault, newLogger())
	result := gen.Generate()
	if result.Undetectable {
		fmt.Println("UNDETECTABLE")
		return false, nil
	}
	fmt.Println(result.Vector)
	return true, nil
}
