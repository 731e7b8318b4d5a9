package main

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/circuitlab/atpg/internal/sim"
)

var faultsBatchFile string

var faultsCmd = &cobra.Command{
	Use:   "faults <netlist> <vector>",
	Short: "Deductive fault simulation: print every single stuck-at fault a vector detects",
	RunE:  runFaults,
}

func init() {
	faultsCmd.Flags().StringVarP(&faultsBatchFile, "file", "f", "", `batch file: one "<netlist> <vector>" pair per line`)
	rootCmd.AddCommand(faultsCmd)
}

func runFaults(cmd *cobra.Command, args []string) error {
	if faultsBatchFile != "" {
		return runBatch(faultsBatchFile, faultsOne)
	}
	return faultsOne(args)
}

func faultsOne(args []string) error {
	if len(args) != 2 {
		return errors.Errorf(`expected "<netlist> <vector>", got %q`, strings.Join(args, " "))
	}
	c, err := loadCircuit(args[0])
	if err != nil {
		return err
	}
	detected, err := sim.DetectFaults(c, args[1])
	if err != nil {
		return err
	}
	for _, f := range detected.Sorted() {
		fmt.Println(f.String())
	}
	return nil
}
