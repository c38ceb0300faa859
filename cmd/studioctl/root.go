package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "studioctl",
		Short: "Operator tool for the OnamKulam Interiors backend",
		Long: `studioctl inspects the scroll narrative layout served by the API,
simulates navigation scrolls, mints admin bearer tokens and checks the
outbound email configuration.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newPlanCmd(),
		newFrameCmd(),
		newSimulateCmd(),
		newAdminTokenCmd(),
		newMailTestCmd(),
	)
	return root
}
