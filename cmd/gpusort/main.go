// Command gpusort drives the reference radix sort device from the command
// line: sort a file of decimal keys, or probe a simulated device's
// capabilities and compare them against what the host CPU itself reports.
package main

import (
	"bufio"
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sys/cpu"

	"github.com/ajroetker/go-radixsort/gpu"
	"github.com/ajroetker/go-radixsort/radix"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gpusort",
		Short: "Reference LSD radix sort over a simulated GPU-style compute device",
	}

	rootCmd.AddCommand(newSortCmd(), newProbeCmd(), newBenchCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newSortCmd() *cobra.Command {
	var (
		input        string
		subgroupSize uint32
		rowsPerWg    uint32
		workers      int
		verbose      bool
	)

	cmd := &cobra.Command{
		Use:   "sort [input]",
		Short: "Sort a file of newline-separated uint32 keys (- or omitted reads stdin)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := input
			if len(args) > 0 {
				path = args[0]
			}
			keys, err := readKeys(path)
			if err != nil {
				return fmt.Errorf("reading keys: %w", err)
			}

			caps := gpu.Capabilities{SubgroupSize: subgroupSize, HasBallot: true, HasInclusiveAdd: true, HasPushConstants: true}
			dev := gpu.NewDevice(caps, workers)
			defer dev.Close()

			tn := radix.DefaultTuning(subgroupSize)
			if rowsPerWg != 0 {
				tn.RowsPerWorkgroup = rowsPerWg
			}

			if verbose {
				fmt.Fprintf(os.Stderr, "sorting %d keys, subgroup_size=%d rows_per_workgroup=%d\n", len(keys), subgroupSize, tn.RowsPerWorkgroup)
			}

			sorted, _, err := radix.Sort(context.Background(), dev, tn, uint32(len(keys)), keys, nil)
			if err != nil {
				return err
			}

			w := bufio.NewWriter(os.Stdout)
			defer w.Flush()
			for _, k := range sorted {
				fmt.Fprintln(w, k)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&input, "input", "-", "Input file (- for stdin)")
	cmd.Flags().Uint32Var(&subgroupSize, "subgroup-size", 32, "Simulated subgroup size (8, 16, 32, 64, or 128)")
	cmd.Flags().Uint32Var(&rowsPerWg, "rows-per-workgroup", 0, "Rows per scatter workgroup (0 = default)")
	cmd.Flags().IntVar(&workers, "workers", 0, "Goroutine pool size (0 = GOMAXPROCS)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print tuning details to stderr")
	return cmd
}

func newProbeCmd() *cobra.Command {
	var subgroupSize uint32

	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Report the simulated device's subgroup size and the host CPU's SIMD feature set",
		RunE: func(cmd *cobra.Command, args []string) error {
			caps := gpu.Capabilities{SubgroupSize: subgroupSize, HasBallot: true, HasInclusiveAdd: true, HasPushConstants: true}
			dev := gpu.NewDevice(caps, 0)
			defer dev.Close()

			got, err := gpu.ProbeSubgroupSize(context.Background(), dev)
			if err != nil {
				return err
			}
			fmt.Printf("device subgroup size: %d\n", got)
			fmt.Printf("host GOMAXPROCS: %d\n", runtime.GOMAXPROCS(0))
			fmt.Printf("host arch: %s\n", runtime.GOARCH)
			printHostSIMD()
			return nil
		},
	}
	cmd.Flags().Uint32Var(&subgroupSize, "subgroup-size", 32, "Simulated subgroup size to advertise")
	return cmd
}

// printHostSIMD reports the host CPU's vector feature set. It is purely
// informational: the reference device never dispatches real SIMD code, but
// the figures are what a real compute backend would use to pick a kernel
// specialization, mirroring the role runtime CPU detection plays in the
// rest of this module's ancestry.
func printHostSIMD() {
	switch runtime.GOARCH {
	case "amd64":
		fmt.Printf("host SIMD: AVX2=%v AVX512F=%v\n", cpu.X86.HasAVX2, cpu.X86.HasAVX512F)
	case "arm64":
		fmt.Printf("host SIMD: ASIMD=%v SVE=%v\n", cpu.ARM64.HasASIMD, cpu.ARM64.HasSVE)
	default:
		fmt.Printf("host SIMD: unknown for GOARCH=%s\n", runtime.GOARCH)
	}
}

func newBenchCmd() *cobra.Command {
	var (
		n            uint32
		subgroupSize uint32
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Sort n random keys and report whether the result is sorted",
		RunE: func(cmd *cobra.Command, args []string) error {
			keys := make([]uint32, n)
			for i := range keys {
				keys[i] = rand.Uint32()
			}

			caps := gpu.Capabilities{SubgroupSize: subgroupSize, HasBallot: true, HasInclusiveAdd: true, HasPushConstants: true}
			dev := gpu.NewDevice(caps, 0)
			defer dev.Close()
			tn := radix.DefaultTuning(subgroupSize)

			sorted, _, err := radix.Sort(context.Background(), dev, tn, n, keys, nil)
			if err != nil {
				return err
			}
			for i := 1; i < len(sorted); i++ {
				if sorted[i-1] > sorted[i] {
					return fmt.Errorf("output not sorted at index %d", i)
				}
			}
			fmt.Printf("sorted %d keys OK\n", n)
			return nil
		},
	}
	cmd.Flags().Uint32Var(&n, "n", 1_000_000, "Number of random keys to sort")
	cmd.Flags().Uint32Var(&subgroupSize, "subgroup-size", 32, "Simulated subgroup size")
	return cmd
}

func readKeys(path string) ([]uint32, error) {
	var f *os.File
	if path == "-" || path == "" {
		f = os.Stdin
	} else {
		var err error
		f, err = os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
	}

	var keys []uint32
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		v, err := strconv.ParseUint(line, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("parsing %q: %w", line, err)
		}
		keys = append(keys, uint32(v))
	}
	return keys, scanner.Err()
}
