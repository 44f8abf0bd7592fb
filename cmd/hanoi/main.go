// Command hanoi reads a generalized Tower of Hanoi problem and prints a
// minimum-move solution.
//
// Input (whitespace-delimited integers, all 1-based, stdin by default):
//
//	D P  s1 … sD  t1 … tD
//
// where D is the disk count, P the peg count, s the start peg of each
// disk (smallest first), and t the target peg of each disk. The output
// is the move count followed by one "disk peg" pair per move.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hanoi/puzzle"
	"github.com/katalvlaran/hanoi/solver"
)

var (
	inputPath   string
	verify      bool
	maxVertices int
	timeout     time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "hanoi",
	Short: "Compute a minimum-move solution for the generalized Tower of Hanoi",
	Long: `Compute a minimum-move solution for the generalized Tower of Hanoi.

The problem is read as whitespace-delimited integers (1-based):
disk count, peg count, one start peg per disk (smallest disk first),
then one target peg per disk. Output is "num moves = N" followed by
N lines of "disk peg" — move that disk to that peg, in order.`,
	Args:          cobra.NoArgs,
	RunE:          runSolve,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.Flags().StringVarP(&inputPath, "input", "i", "", "read the problem from a file instead of stdin")
	rootCmd.Flags().BoolVar(&verify, "verify", false, "replay the solution against the move rule before printing")
	rootCmd.Flags().IntVar(&maxVertices, "max-vertices", 0, "abort after discovering this many states (0 = unlimited)")
	rootCmd.Flags().DurationVar(&timeout, "timeout", 0, "abort the search after this duration (0 = unlimited)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runSolve(cmd *cobra.Command, _ []string) error {
	in := cmd.InOrStdin()
	if inputPath != "" {
		f, err := os.Open(inputPath)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	prob, err := readProblem(in)
	if err != nil {
		return err
	}

	opts := []solver.Option{solver.WithMaxVertices(maxVertices)}
	if timeout > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		opts = append(opts, solver.WithContext(ctx))
	}

	res, err := solver.Solve(prob.disks, prob.pegs, prob.start, prob.target, opts...)
	if err != nil {
		return err
	}

	if verify {
		end, rerr := puzzle.Replay(prob.start, res.Moves, prob.pegs)
		if rerr != nil {
			return fmt.Errorf("verification failed: %w", rerr)
		}
		if !end.Equal(prob.target) {
			return fmt.Errorf("verification failed: replay ends at %q, want %q", end, prob.target)
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "num moves = %d\n", res.Distance)
	for _, m := range res.Moves {
		disk, peg := m.Labels()
		fmt.Fprintf(out, "%d %d\n", disk, peg)
	}

	return nil
}
