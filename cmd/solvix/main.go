// Command solvix classifies, solves and evaluates equations given as
// expression JSON on a file argument or stdin.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/solvix/solvix/config"
	"github.com/solvix/solvix/explain"
	"github.com/solvix/solvix/expr"
	"github.com/solvix/solvix/funcs"
	"github.com/solvix/solvix/solve"
)

var (
	configPath string
	varName    string
	withSteps  bool
)

// equationDoc is the wire form of an equation: two expression trees.
type equationDoc struct {
	LHS json.RawMessage `json:"lhs"`
	RHS json.RawMessage `json:"rhs"`
}

func main() {
	root := &cobra.Command{
		Use:           "solvix",
		Short:         "symbolic equation classifier and solver",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")

	solveCmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "classify and solve an equation",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSolve,
	}
	solveCmd.Flags().StringVar(&varName, "var", "x", "variable to solve for")
	solveCmd.Flags().BoolVar(&withSteps, "explain", false, "print the step trail")

	classifyCmd := &cobra.Command{
		Use:   "classify [file]",
		Short: "print the equation family",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runClassify,
	}
	classifyCmd.Flags().StringVar(&varName, "var", "x", "variable to classify in")

	evalCmd := &cobra.Command{
		Use:   "eval [file]",
		Short: "simplify an expression and evaluate it numerically",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runEval,
	}

	root.AddCommand(solveCmd, classifyCmd, evalCmd)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "solvix: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig() (config.Config, error) {
	if configPath == "" {
		return config.Default(), nil
	}
	return config.Load(configPath)
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 1 {
		return os.ReadFile(args[0])
	}
	return io.ReadAll(os.Stdin)
}

func readEquation(args []string) (*expr.Equation, error) {
	data, err := readInput(args)
	if err != nil {
		return nil, err
	}
	var doc equationDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse equation: %w", err)
	}
	if doc.LHS == nil || doc.RHS == nil {
		return nil, fmt.Errorf("parse equation: both lhs and rhs are required")
	}
	lhs, err := expr.ParseJSON(doc.LHS)
	if err != nil {
		return nil, fmt.Errorf("parse lhs: %w", err)
	}
	rhs, err := expr.ParseJSON(doc.RHS)
	if err != nil {
		return nil, fmt.Errorf("parse rhs: %w", err)
	}
	return expr.Eq(lhs, rhs), nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	eq, err := readEquation(args)
	if err != nil {
		return err
	}
	engine := solve.NewEngine(funcs.Builtin(), cfg.ScanConfig())
	v := expr.S(varName)

	if withSteps {
		trail := explain.New()
		result := engine.SolveWithExplanation(eq, v, trail)
		fmt.Print(trail.Render())
		fmt.Println(colorize(result.String()))
		return nil
	}
	fmt.Println(colorize(engine.Solve(eq, v).String()))
	return nil
}

func runClassify(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	eq, err := readEquation(args)
	if err != nil {
		return err
	}
	engine := solve.NewEngine(funcs.Builtin(), cfg.ScanConfig())
	fmt.Println(colorize(engine.Classifier().Classify(eq, expr.S(varName)).String()))
	return nil
}

func runEval(cmd *cobra.Command, args []string) error {
	data, err := readInput(args)
	if err != nil {
		return err
	}
	e, err := expr.ParseJSON(data)
	if err != nil {
		return err
	}
	s := e.Simplify()
	fmt.Println(s.String())
	if n, ok := s.Eval(); ok {
		fmt.Printf("≈ %g\n", n.Float64())
	}
	return nil
}

// colorize highlights the result line when stdout is a terminal.
func colorize(s string) string {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return s
	}
	return "\x1b[1;32m" + s + "\x1b[0m"
}
