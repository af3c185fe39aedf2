package main

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/spf13/cobra"
)

func (a *app) newMatchCmd() *cobra.Command {
	var (
		topK      int
		threshold float64
		strategy  string
		alpha     float64
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "match <vibe...>",
		Short: "Rank catalog products against a vibe",
		Example: `  vibematch match energetic urban chic
  vibematch match "soft cozy aesthetic" --strategy hybrid --alpha 0.3 --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("top-k") {
				a.cfg.Match.TopK = topK
			}
			if flags.Changed("threshold") {
				a.cfg.Match.Threshold = threshold
			}
			if flags.Changed("strategy") {
				a.cfg.Match.Strategy = strings.ToLower(strategy)
			}
			if flags.Changed("alpha") {
				a.cfg.Match.HybridAlpha = alpha
			}

			query := strings.TrimSpace(strings.Join(args, " "))
			if query == "" {
				return errors.New("vibe must not be blank")
			}

			m, err := a.newMatcher()
			if err != nil {
				return err
			}
			defer closeMatcher(m, a.logger)

			report, err := m.Match(cmd.Context(), query)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}
			renderReport(cmd.OutOrStdout(), report)
			return nil
		},
	}

	cmd.Flags().IntVarP(&topK, "top-k", "k", 3, "number of results")
	cmd.Flags().Float64Var(&threshold, "threshold", 0.7, "score a result must exceed to count as a good match")
	cmd.Flags().StringVarP(&strategy, "strategy", "s", "embedding", "scoring strategy: embedding, bm25, hybrid")
	cmd.Flags().Float64Var(&alpha, "alpha", 0.5, "BM25 weight for the hybrid strategy")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	return cmd
}
