// Command cryptarithm solves letter-arithmetic puzzles from the command
// line.
//
// The solve command runs the column-wise engine over a word list:
//
//	cryptarithm solve SEND MORE MONEY
//	cryptarithm solve --operator '*' AB C DDD
//	cryptarithm solve --file puzzles.yaml
//
// The brute command runs the exhaustive fallback on a free-form equation
// string, useful as a cross-check or for shapes the engine refuses:
//
//	cryptarithm brute 'SEND+MORE=MONEY'
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gitrdm/cryptarithm/pkg/cryptarithm"
)

var (
	flagOperator string
	flagFile     string
	flagMax      int
	flagStats    bool
	flagQuiet    bool
	flagVerbose  bool
	flagWorkers  int
)

func main() {
	root := &cobra.Command{
		Use:           "cryptarithm",
		Short:         "Solve cryptarithm puzzles such as SEND+MORE=MONEY",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "print only the solution count")

	solveCmd := &cobra.Command{
		Use:   "solve [words...]",
		Short: "Run the column-wise engine over operand words and a result word",
		Long: "Solve treats all words but the last as operands and the last as the result.\n" +
			"With --file, puzzles are read from a YAML file instead of the arguments.",
		RunE: runSolve,
	}
	solveCmd.Flags().StringVarP(&flagOperator, "operator", "o", "+", `operator combining the operands ("+" or "*")`)
	solveCmd.Flags().StringVarP(&flagFile, "file", "f", "", "YAML file with a list of puzzles")
	solveCmd.Flags().IntVarP(&flagMax, "max", "n", 0, "stop after this many solutions (0 = all)")
	solveCmd.Flags().BoolVar(&flagStats, "stats", false, "print search statistics")
	root.AddCommand(solveCmd)

	bruteCmd := &cobra.Command{
		Use:   "brute <equation>",
		Short: "Run the exhaustive permutation fallback on an equation string",
		Args:  cobra.ExactArgs(1),
		RunE:  runBrute,
	}
	bruteCmd.Flags().IntVar(&flagWorkers, "workers", 0, "parallel workers (0 = one per CPU, 1 = sequential)")
	root.AddCommand(bruteCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// newLogger builds the process logger. Debug output goes to stderr so piped
// stdout stays clean for results.
func newLogger() *zap.Logger {
	if !flagVerbose {
		return zap.NewNop()
	}
	cfg := zap.NewDevelopmentConfig()
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func runSolve(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	defer func() { _ = logger.Sync() }()

	var puzzles []batchPuzzle
	if flagFile != "" {
		var err error
		puzzles, err = loadBatch(flagFile)
		if err != nil {
			return err
		}
	} else {
		if len(args) < 3 {
			return fmt.Errorf("need at least two operands and a result word")
		}
		puzzles = []batchPuzzle{{Words: args, Operator: flagOperator}}
	}

	for _, bp := range puzzles {
		if err := solveOne(cmd, logger, bp); err != nil {
			return err
		}
	}
	return nil
}

func solveOne(cmd *cobra.Command, logger *zap.Logger, bp batchPuzzle) error {
	operator := bp.Operator
	if operator == "" {
		operator = "+"
	}
	op, err := cryptarithm.ParseOperator(operator)
	if err != nil {
		return err
	}
	p, err := cryptarithm.NewPuzzle(bp.Words, op)
	if err != nil {
		return err
	}

	if bp.Name != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "== %s ==\n", bp.Name)
	}
	logger.Debug("solving puzzle",
		zap.String("expression", p.Expression()),
		zap.Int("columns", p.Columns()),
		zap.Int("window", p.Window()))

	monitor := cryptarithm.NewMonitor()
	solver := cryptarithm.NewSolver(p,
		cryptarithm.WithLogger(logger),
		cryptarithm.WithMonitor(monitor))

	sink := cryptarithm.CountOnly
	if !flagQuiet {
		sink = func(s cryptarithm.Solution) int {
			fmt.Fprintln(cmd.OutOrStdout(), s.Layout)
			fmt.Fprintln(cmd.OutOrStdout())
			return 1
		}
	}

	count, err := solver.SolveN(cmd.Context(), sink, flagMax)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d solution(s)\n", p.Expression(), count)
	if flagStats {
		fmt.Fprintln(cmd.OutOrStdout(), monitor.Stats())
	}
	return nil
}

func runBrute(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	defer func() { _ = logger.Sync() }()

	p, err := cryptarithm.ParseEquation(args[0])
	if err != nil {
		return err
	}
	logger.Debug("brute forcing equation",
		zap.String("expression", p.Expression()),
		zap.Int("letters", len(p.Letters())))

	sink := cryptarithm.CountOnly
	if !flagQuiet {
		sink = func(s cryptarithm.Solution) int {
			fmt.Fprintln(cmd.OutOrStdout(), s.Expression)
			return 1
		}
	}

	var count int
	if flagWorkers == 1 {
		count, err = p.BruteForce(cmd.Context(), sink)
	} else {
		count, err = p.BruteForceParallel(cmd.Context(), flagWorkers, sink)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d solution(s)\n", p.Expression(), count)
	return nil
}
