package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/circuitlab/atpg/internal/circuit"
	"github.com/circuitlab/atpg/internal/sim"
)

var (
	simulateBatchFile string
	simulateAllNets   bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <netlist> <vector>",
	Short: "Fault-free simulation: print the primary-output projection for a vector",
	RunE:  runSimulate,
}

func init() {
	simulateCmd.Flags().StringVarP(&simulateBatchFile, "file", "f", "", `batch file: one "<netlist> <vector>" pair per line`)
	simulateCmd.Flags().BoolVar(&simulateAllNets, "all-nets", false, "print every net's value instead of just the primary outputs")
	rootCmd.AddCommand(simulateCmd)
}

func runSimulate(cmd *cobra.Command, args []string) error {
	if simulateBatchFile != "" {
		return runBatch(simulateBatchFile, simulateOne)
	}
	return simulateOne(args)
}

func simulateOne(args []string) error {
	if len(args) != 2 {
		return errors.Errorf(`expected "<netlist> <vector>", got %q`, strings.Join(args, " "))
	}
	c, err := loadCircuit(args[0])
	if err != nil {
		return err
	}
	values, err := sim.SimulateInput(c, args[1])
	if err != nil {
		return err
	}
	if simulateAllNets {
		printAllNets(c, values)
		return nil
	}
	fmt.Println(c.OutputString(values))
	return nil
}

// printAllNets prints every net's value, one "label=value" pair per line,
// in label order, for --all-nets debugging output.
func printAllNets(c *circuit.Circuit, values circuit.Assignment) {
	nets := c.Nets()
	sort.Slice(nets, func(i, j int) bool { return nets[i].Label < nets[j].Label })
	for _, n := range nets {
		fmt.Printf("%s=%s\n", n.Label, values[n.ID])
	}
}
