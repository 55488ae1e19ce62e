package main

import (
	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/devstack/internal/domain/lifecycle"
)

var planCmd = &cobra.Command{
	Use:   "plan <operation>",
	Short: "Show the steps an operation would run",
	Long: `Plan resolves the project configuration and lists the steps of an
operation in order, with the exact commands, without running anything.`,
	Args:              cobra.ExactArgs(1),
	ValidArgs:         lifecycle.Names(),
	ValidArgsFunction: operationCompletions,
	RunE:              runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	return a.Plan(args[0])
}
