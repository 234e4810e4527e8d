package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"chainflow/internal/plan"
	"chainflow/internal/typeflow"
)

// errFindings signals that diagnostics were printed and the exit code must
// be non-zero.
var errFindings = errors.New("chain errors found")

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "chainflow",
		Short:         "Check that validation chains thread their types",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.manifest, "manifest", "m", "chains.yaml", "Path to the chain manifest (- for stdin)")
	flags.StringSliceVarP(&opts.packages, "packages", "p", nil, "Go package patterns to scan for steps tags")
	flags.IntVar(&opts.workers, "workers", 0, "Members resolved concurrently (default GOMAXPROCS)")
	flags.BoolVar(&opts.memoize, "memoize", false, "Cache conversion oracle answers")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	flags.BoolVar(&opts.dump, "dump", false, "Dump raw resolutions")

	rootCmd.AddCommand(newCheckCmd(opts), newPlanCmd(opts), newFixCmd(opts))

	return rootCmd
}

func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report chains that do not thread",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := opts.run(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printDiagnostics(out, &s.diags)
			printDiagnostics(out, &s.report.Diagnostics)
			printSummary(out, s.report)

			if s.diags.HasErrors() || s.report.Diagnostics.HasErrors() {
				return errFindings
			}

			return nil
		},
	}
}

func newPlanCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Print the resolved step order of every threading chain",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := opts.run(cmd)
			if err != nil {
				return err
			}

			return printPlans(cmd.OutOrStdout(), s.report.Plans())
		},
	}
}

func newFixCmd(opts *options) *cobra.Command {
	var (
		output  string
		notNull string
	)

	cmd := &cobra.Command{
		Use:   "fix",
		Short: "Rewrite reorderable and not-null fixable chains",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := opts.run(cmd)
			if err != nil {
				return err
			}

			marker, err := s.fixMarker(notNull)
			if err != nil {
				return err
			}

			changes := plan.Changes(s.members, s.report, marker)

			data, leftovers, err := plan.ExportYAML(s.manifest, changes)
			if err != nil {
				return err
			}

			for _, c := range changes {
				fmt.Fprintln(cmd.ErrOrStderr(), "fixed", c)
			}

			for _, c := range leftovers {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: set the tag to steps:%q\n", c.Member, plan.StepsTag(c.GroupKey, c.After))
			}

			if output == "-" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", output, err)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "-", "Where to write the fixed manifest (- for stdout)")
	cmd.Flags().StringVar(&notNull, "not-null", "", "Strip marker step to insert (default: first declared strip marker)")

	return cmd
}

// fixMarker resolves the step inserted by not-null fixes.
func (s *session) fixMarker(name string) (typeflow.StepSpec, error) {
	if name == "" {
		if step, ok := s.catalog.StripMarker(); ok {
			return step, nil
		}

		return typeflow.StepSpec{}, errors.New("manifest declares no strip marker; pass --not-null")
	}

	step, ok := s.catalog.Step(name)
	if !ok {
		return typeflow.StepSpec{}, fmt.Errorf("unknown step %q", name)
	}

	if step.Marker != typeflow.MarkerStrip {
		return typeflow.StepSpec{}, fmt.Errorf("step %q is not a strip marker", name)
	}

	return step, nil
}
