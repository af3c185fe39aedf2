package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/jonwraymond/vibematch/catalog"
	"github.com/jonwraymond/vibematch/matcher"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	nameStyle    = lipgloss.NewStyle().Bold(true)
	goodStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	weakStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
)

const reflection = `## Reflection

1. Simulated embeddings replace real embedding API calls, so the prototype runs offline and reproducibly.
2. Recommendations are ranked by cosine similarity between the query and product embeddings.
3. Several moods are handled in one run, each with its latency logged.
4. Real embeddings and a vector database would turn this into a production recommender.
5. Edge cases are covered: a fallback hint when nothing scores above the threshold, and latency tracking.
`

func formatTags(tags []string) string {
	return strings.Join(tags, ", ")
}

func renderCatalog(w io.Writer, cat *catalog.Catalog) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(mutedStyle).
		Headers("NAME", "DESCRIPTION", "VIBES")
	for _, it := range cat.Items() {
		t.Row(it.Name, it.Description, formatTags(it.Tags))
	}

	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("✅ Catalog ready: %d products", cat.Len())))
	fmt.Fprintln(w, t.Render())
}

func renderEmbedded(w io.Writer, m *matcher.Matcher) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("🧠 Embeddings generated (mock data, %d dimensions).", m.Catalog().Dimensions())))
}

// renderReport prints one query's ranked results, its latency, and a
// fallback hint when nothing clears the threshold. Counts are relative to
// the results returned, which is fewer than top-k for small catalogs.
func renderReport(w io.Writer, r *matcher.Report) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s %s\n", titleStyle.Render("🎯 Input Vibe:"), r.Query)
	fmt.Fprintln(w)
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("💫 Top %d Matching Products:", len(r.Results))))

	for _, res := range r.Results {
		score := fmt.Sprintf("%.3f", res.Score)
		if res.Good(r.Threshold) {
			score = goodStyle.Render(score)
		} else {
			score = weakStyle.Render(score)
		}
		fmt.Fprintf(w, "- %s (%s) | Score: %s\n", nameStyle.Render(res.Name), formatTags(res.Tags), score)
	}
	if len(r.Results) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("- (catalog is empty)"))
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "⏱️ Latency: %.4f sec | Good Matches: %d/%d\n", r.Latency.Seconds(), r.GoodMatches, len(r.Results))

	if r.GoodMatches == 0 && len(r.Results) > 0 {
		best := r.Results[0]
		fmt.Fprintln(w, weakStyle.Render(fmt.Sprintf(
			"💡 No match scored above %.2f. Closest pick: %s (%.3f). Try describing the vibe with different words.",
			r.Threshold, best.Name, best.Score)))
	}
}

func renderReflection(w io.Writer) error {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return fmt.Errorf("markdown renderer: %w", err)
	}
	out, err := renderer.Render(reflection)
	if err != nil {
		return fmt.Errorf("render reflection: %w", err)
	}

	fmt.Fprintln(w)
	fmt.Fprint(w, out)
	fmt.Fprintln(w, successStyle.Render("✅ Prototype completed successfully!"))
	return nil
}
