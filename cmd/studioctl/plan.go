package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/onamkulam/interiors/internal/scroll"
)

func newPlanCmd() *cobra.Command {
	var (
		viewport float64
		format   string
	)
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Print the section breakpoints for a viewport height",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printPlan(cmd.OutOrStdout(), scroll.Compute(viewport), format)
		},
	}
	cmd.Flags().Float64Var(&viewport, "viewport", scroll.DefaultBase, "viewport height in pixels")
	cmd.Flags().StringVarP(&format, "output", "o", "table", "output format: table, json or yaml")
	return cmd
}

func newFrameCmd() *cobra.Command {
	var viewport, scrollY float64
	cmd := &cobra.Command{
		Use:   "frame",
		Short: "Print every section's state at a scroll offset",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan := scroll.Compute(viewport)
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "active: %s\n\n", scroll.Resolve(scrollY, plan))
			fmt.Fprintln(w, "SECTION\tVISIBLE\tOFFSET\tTRANSLATE\tZ\tPROGRESS")
			for _, s := range scroll.ComputeFrame(scrollY, plan) {
				fmt.Fprintf(w, "%s\t%t\t%.1f\t%.1f\t%d\t%.2f\n", s.Name, s.Visible, s.Offset, s.TranslateY, s.ZIndex, s.Progress)
			}
			return w.Flush()
		},
	}
	cmd.Flags().Float64Var(&viewport, "viewport", scroll.DefaultBase, "viewport height in pixels")
	cmd.Flags().Float64Var(&scrollY, "scroll-y", 0, "scroll offset in pixels")
	return cmd
}

func printPlan(out io.Writer, plan scroll.Plan, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(plan)
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(plan); err != nil {
			return err
		}
		return enc.Close()
	case "table":
	default:
		return fmt.Errorf("unknown output format %q", format)
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "viewport %.0f, base %.0f, total height %.0f\n\n", plan.ViewportHeight, plan.Base, plan.TotalHeight)
	fmt.Fprintln(w, "SECTION\tSTART\tSLIDE\tHOLD\tEND\tZ")
	for _, b := range plan.Sections {
		fmt.Fprintf(w, "%s\t%.0f\t%.0f\t%.0f\t%.0f\t%d\n", b.Name, b.Start, b.SlideDuration, b.HoldDuration, b.End, b.ZIndex)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "TARGET\tOFFSET")
	t := plan.Targets
	for _, row := range []struct {
		name string
		y    float64
	}{
		{"home", t.Home}, {"about", t.About}, {"projects", t.Projects},
		{"cta", t.CTA}, {"contact", t.Contact},
	} {
		fmt.Fprintf(w, "%s\t%.0f\n", row.name, row.y)
	}
	return w.Flush()
}
