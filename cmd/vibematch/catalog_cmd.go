package main

import (
	"github.com/spf13/cobra"
)

func (a *app) newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Print the product catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := a.loadCatalog()
			if err != nil {
				return err
			}
			renderCatalog(cmd.OutOrStdout(), cat)
			return nil
		},
	}
}
