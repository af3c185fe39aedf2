package main

import (
	"github.com/spf13/cobra"
)

var demoQueries = []string{
	"energetic urban chic",
	"soft cozy aesthetic",
	"elegant traditional fashion",
}

func (a *app) newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the three sample vibes against the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDemo(cmd)
		},
	}
}

func (a *app) runDemo(cmd *cobra.Command) error {
	m, err := a.newMatcher()
	if err != nil {
		return err
	}
	defer closeMatcher(m, a.logger)

	out := cmd.OutOrStdout()
	renderCatalog(out, m.Catalog())
	renderEmbedded(out, m)

	for _, q := range demoQueries {
		report, err := m.Match(cmd.Context(), q)
		if err != nil {
			return err
		}
		renderReport(out, report)
	}

	return renderReflection(out)
}
