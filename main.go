package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Shr1ram741/Sudoku-SAT-Solver/solver"
	"github.com/Shr1ram741/Sudoku-SAT-Solver/sudoku"
)

// Exit codes follow the DIMACS competition convention.
const (
	exitSat   = 10
	exitUnsat = 20
	exitIndet = 0
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sudokusat",
		Short: "A CDCL SAT solver with a sudoku frontend",

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.AddCommand(newSolveCmd())
	rootCmd.AddCommand(newSudokuCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newSolveCmd() *cobra.Command {
	var (
		verbose      bool
		maxConflicts int
		configPath   string
	)
	cmd := &cobra.Command{
		Use:   "solve file.cnf",
		Short: "Decide the satisfiability of a DIMACS CNF file",
		Long: `Decide the satisfiability of a DIMACS CNF file.

The process exits with code 10 if the formula is satisfiable, 20 if it is
unsatisfiable, and 0 if no verdict was reached within the conflict budget.
On a satisfiable formula the model is printed as a 'v' line.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				cfg, err := LoadConfig(configPath)
				if err != nil {
					return err
				}
				if !cmd.Flags().Changed("verbose") {
					verbose = cfg.Verbose
				}
				if !cmd.Flags().Changed("max-conflicts") {
					maxConflicts = cfg.MaxConflicts
				}
			}
			pb, err := parseCNFFile(args[0])
			if err != nil {
				return err
			}
			s := solver.New(pb)
			s.Verbose = verbose
			s.MaxConflicts = maxConflicts
			if verbose {
				fmt.Printf("c solving %s\n", args[0])
				fmt.Printf("c %d variables, %d clauses\n", pb.NbVars, len(pb.Clauses))
			}
			status := s.Solve()
			if verbose {
				fmt.Printf("c conflicts : %d\nc decisions : %d\n", s.Stats.NbConflicts, s.Stats.NbDecisions)
				fmt.Printf("c learned   : %d (%d units, %d binary)\n", s.Stats.NbLearned, s.Stats.NbUnitLearned, s.Stats.NbBinaryLearned)
			}
			s.OutputModel()
			switch status {
			case solver.Sat:
				os.Exit(exitSat)
			case solver.Unsat:
				os.Exit(exitUnsat)
			}
			os.Exit(exitIndet)
			return nil
		},
	}
	cmd.Flags().BoolVar(&verbose, "verbose", false, "print solver statistics")
	cmd.Flags().IntVar(&maxConflicts, "max-conflicts", 0, "conflict budget; 0 means unlimited")
	cmd.Flags().StringVar(&configPath, "config", "", "path to a JSON config file")
	return cmd
}

func newSudokuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sudoku file",
		Short: "Solve a sudoku puzzle",
		Long: `Solve a sudoku puzzle.

The input file holds 81 cells in row order, where a digit is a given and
'0' or '.' an empty cell. Whitespace is ignored. The solved grid is printed
on stdout, one row per line.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Wrapf(err, "could not read puzzle %q", args[0])
			}
			grid, err := sudoku.Parse(string(data))
			if err != nil {
				return errors.Wrapf(err, "invalid puzzle %q", args[0])
			}
			solved, err := sudoku.Solve(grid)
			if err != nil {
				return err
			}
			fmt.Println(solved)
			return nil
		},
	}
}

func parseCNFFile(path string) (*solver.Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open %q", path)
	}
	defer f.Close()
	pb, err := solver.ParseCNF(f)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse DIMACS file %q", path)
	}
	return pb, nil
}
