package main

import (
	"fmt"

	"github.com/laborcalc/benefits-calculator/internal/output"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newBatchCmd(a *app) *cobra.Command {
	var (
		saveDir string
		workers int
		strict  bool
	)
	cmd := &cobra.Command{
		Use:   "batch <file>",
		Short: "Run every request of a YAML batch file",
		Long: `Run every request of a YAML batch file and print one report.

Rejected requests are listed in the report with their reason; the command
only fails for them when --strict is set.`,
		Example: `  laborcalc batch payroll.yaml
  laborcalc batch payroll.yaml --format csv --save ./reports`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			batch, err := a.parser.LoadBatch(args[0])
			if err != nil {
				return fmt.Errorf("failed to load batch: %w", err)
			}
			a.engine.Workers = workers

			report, err := a.engine.RunBatch(cmd.Context(), batch)
			if err != nil {
				return err
			}
			if err := a.render(cmd, report); err != nil {
				return err
			}

			if saveDir != "" {
				f, err := output.LookupFormatter(a.opts.format)
				if err != nil {
					return err
				}
				path, err := output.WriteFormatted(f, report, saveDir)
				if err != nil {
					return fmt.Errorf("failed to save report: %w", err)
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Report saved to %s\n", path)
			}

			if strict && report.Failed > 0 {
				return fmt.Errorf("%w: %d of %d requests rejected", errCalculationFailed, report.Failed, len(report.Outcomes))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&saveDir, "save", "", "also write the report to a timestamped file in this directory")
	cmd.Flags().IntVar(&workers, "workers", 0, "parallel workers (default: number of CPUs)")
	cmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero when any request is rejected")
	return cmd
}

func newParamsCmd(a *app) *cobra.Command {
	var writeFile string
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Print the legal parameters in effect as YAML",
		Long: `Print the legal parameters in effect (built-in defaults merged with --params)
as YAML. The output can be edited and passed back with --params.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if writeFile != "" {
				if err := output.SaveParameters(&a.engine.Params, writeFile); err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Parameters written to %s\n", writeFile)
				return nil
			}
			data, err := yaml.Marshal(a.engine.Params)
			if err != nil {
				return fmt.Errorf("failed to marshal parameters: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVarP(&writeFile, "write", "w", "", "write the parameters to this file instead of stdout")
	return cmd
}

func newExampleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "example",
		Short: "Print an example batch file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			batch := a.parser.CreateExampleBatch(a.engine.ReferenceYear)
			data, err := yaml.Marshal(batch)
			if err != nil {
				return fmt.Errorf("failed to marshal example batch: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
