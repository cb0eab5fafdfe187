package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sbravyi-sim/iqpamp/internal/applog"
	"github.com/sbravyi-sim/iqpamp/pkg/bitvec"
	"github.com/sbravyi-sim/iqpamp/pkg/circuit"
	"github.com/sbravyi-sim/iqpamp/pkg/eval"
	"github.com/sbravyi-sim/iqpamp/pkg/statevec"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "iqpamp",
		Short: "Evaluate a single amplitude of a boolean-hypercube IQP circuit",
	}

	var booleanCubeDimension uint
	var swapSymmetry bool

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Compute <s|U|00...0> for a random computational-basis bitstring s",
		RunE: func(cmd *cobra.Command, args []string) error {
			if booleanCubeDimension*3 >= 128 {
				return fmt.Errorf("no appropriate simulation implementation for IQP circuits of size k = %d", booleanCubeDimension)
			}

			params := circuit.NewParams(booleanCubeDimension)
			start := time.Now()
			ev, err := eval.New(params, swapSymmetry)
			if err != nil {
				return fmt.Errorf("building IQP circuit: %w", err)
			}
			applog.Log.Debugf("time to build circuit: %s", time.Since(start))

			s := statevec.Random(int(params.NQubits))
			applog.Log.Debugf("statevector: <%s|", s.String())

			amplitude := ev.Run(s)
			fmt.Printf("Amplitude <s|U|00...0> (S = <%s|) ::= %v\n", formatBitstring(s), amplitude)
			return nil
		},
	}
	runCmd.Flags().UintVarP(&booleanCubeDimension, "boolean-cube-dimension", "k", 2, "boolean cube dimension of the IQP circuit")
	runCmd.Flags().BoolVar(&swapSymmetry, "swap-symmetry", false, "enable the swap-symmetry canonicalization filter")

	rootCmd.AddCommand(runCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func formatBitstring(s *bitvec.Vector) string {
	var sb strings.Builder
	for i := 0; i < s.Len(); i++ {
		if s.Get(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
