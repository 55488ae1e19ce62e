package main

import (
	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/devstack/internal/domain/config"
	"github.com/felixgeelhaar/devstack/internal/domain/lifecycle"
)

func init() {
	for _, op := range lifecycle.All(config.Default("")) {
		rootCmd.AddCommand(newOperationCmd(op.Name, op.Short))
	}
}

func newOperationCmd(name, short string) *cobra.Command {
	return &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			_, err = a.Run(cmd.Context(), name)
			return err
		},
	}
}
