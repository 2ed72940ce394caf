// Command laborcalc computes Peruvian CTS deposits, gratifications and
// instructor pay from flags, YAML batch files or an HTTP API.
package main

import (
	"fmt"
	"os"

	"github.com/laborcalc/benefits-calculator/internal/calculation"
	"github.com/laborcalc/benefits-calculator/internal/config"
	"github.com/spf13/cobra"
)

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	paramsFile string
	year       int
	format     string
	verbose    bool
	envFile    string
}

// app carries what PersistentPreRunE resolved for the subcommands.
type app struct {
	opts   globalOptions
	env    config.Environment
	parser *config.InputParser
	engine *calculation.CalculationEngine
}

func newRootCmd() *cobra.Command {
	a := &app{parser: config.NewInputParser()}

	root := &cobra.Command{
		Use:           "laborcalc",
		Short:         "Peruvian labor benefits calculator",
		Long:          "laborcalc computes CTS severance deposits, gratifications with the extraordinary bonus, and instructor monthly pay with income tax and pension discounts.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.opts.paramsFile, "params", "", "YAML file with legal parameters (defaults to built-in values or $"+config.EnvParams+")")
	flags.IntVar(&a.opts.year, "year", 0, "reference year for period windows (defaults to $"+config.EnvReferenceYear+" or the current year)")
	flags.StringVarP(&a.opts.format, "format", "f", "console", "output format (console, console-lite, csv, detailed-csv, json)")
	flags.BoolVarP(&a.opts.verbose, "verbose", "v", false, "log calculation steps to stderr")
	flags.StringVar(&a.opts.envFile, "env-file", "", "env file to load (default .env when present)")

	root.AddCommand(
		newCTSCmd(a),
		newGratificationCmd(a),
		newPayCmd(a),
		newBatchCmd(a),
		newParamsCmd(a),
		newExampleCmd(a),
		newServeCmd(a),
	)
	return root
}

// setup resolves the environment, the legal parameters and the reference year,
// then builds the engine. Flags take precedence over environment variables.
func (a *app) setup(cmd *cobra.Command) error {
	env, err := config.LoadEnvironment(a.opts.envFile)
	if err != nil {
		return err
	}
	a.env = env

	paramsFile := a.opts.paramsFile
	if paramsFile == "" {
		paramsFile = env.ParamsFile
	}
	params, err := a.parser.LoadParameters(paramsFile)
	if err != nil {
		return fmt.Errorf("failed to load parameters: %w", err)
	}

	year := a.opts.year
	if year == 0 {
		year = env.ReferenceYear
	}
	if year == 0 {
		year = calculation.CurrentReferenceYear()
	}
	if year < 1 {
		return fmt.Errorf("--year must be positive, got %d", year)
	}

	a.engine = calculation.NewCalculationEngineWithConfig(*params, year)
	if a.opts.verbose {
		a.engine.SetLogger(calculation.NewStdLogger(cmd.ErrOrStderr(), true))
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
