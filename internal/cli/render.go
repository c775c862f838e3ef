package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/hurufapp/huruf/internal/elements"
	"github.com/hurufapp/huruf/internal/engine"
	"github.com/hurufapp/huruf/internal/narrative"
)

// Rendering constants.
const (
	labelWidth     = 16
	narrativeWidth = 72
)

// jsonResult is the JSON output envelope: the full record plus the composed
// interpretation.
type jsonResult struct {
	*engine.Result
	Narrative string `json:"narrative,omitempty"`
}

// renderResult writes one calculation in the selected format.
func renderResult(cmd *cobra.Command, result *engine.Result, narrator narrative.Provider, format string) error {
	prose := ""
	if narrator != nil {
		composed, err := narrator.Compose(cmd.Context(), result)
		if err != nil {
			logger.Warn().Err(err).Msg("could not compose narrative")
		} else {
			prose = composed
		}
	}

	if format == "json" {
		return renderJSON(cmd.OutOrStdout(), jsonResult{Result: result, Narrative: prose})
	}
	renderTable(cmd.OutOrStdout(), result, prose)
	return nil
}

// renderJSON writes v as indented JSON.
func renderJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(v)
}

//nolint:gochecknoglobals // Shared styles for table rendering.
var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	labelStyle   = lipgloss.NewStyle().Bold(true).Width(labelWidth)
	dimStyle     = lipgloss.NewStyle().Faint(true)
)

// renderTable writes the human-readable readout.
func renderTable(w io.Writer, result *engine.Result, prose string) {
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%s — %s", result.Input.Normalized, result.Type)))
	fmt.Fprintln(w, dimStyle.Render(fmt.Sprintf("id %s · system %s · %s",
		result.ID, result.System, result.Timestamp.Format("2006-01-02 15:04"))))
	fmt.Fprintln(w)

	fmt.Fprintln(w, sectionStyle.Render("Values"))
	row(w, "Kabir", "%d", result.Core.Kabir)
	row(w, "Saghir", "%d", result.Core.Saghir)
	row(w, "Sirr", "%d", result.Core.Sirr)
	row(w, "Wusta", "%d", result.Core.Wusta)
	row(w, "Kamal", "%d", result.Core.Kamal)
	row(w, "Bast", "%d", result.Core.Bast)
	fmt.Fprintln(w)

	fmt.Fprintln(w, sectionStyle.Render("Elements"))
	percents := result.Analytics.Percents
	for _, element := range elements.Priority {
		marker := ""
		if element == result.Analytics.Dominant {
			marker = "  ← dominant"
		}
		row(w, string(element), "%d%%%s", percents.Of(element), marker)
	}
	row(w, "Balance", "%d / 100", result.Analytics.BalanceScore)
	fmt.Fprintln(w)

	fmt.Fprintln(w, sectionStyle.Render("Resonance"))
	row(w, "Burj", "%s (%s) %s", result.Zodiac.Name, result.Zodiac.ArabicName, result.Zodiac.Symbol)
	if result.Sacred.Exact {
		row(w, "Sacred", "%d — %s", result.Sacred.Nearest.Value, result.Sacred.Nearest.Description)
	} else {
		row(w, "Sacred", "%d (distance %d) — %s",
			result.Sacred.Nearest.Value, result.Sacred.Distance, result.Sacred.Nearest.Description)
	}
	renderInsight(w, result)

	if prose != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, sectionStyle.Render("Reading"))
		fmt.Fprintln(w, wrap(prose, narrativeWidth))
	}
}

// renderInsight writes the lines for the record's populated insight.
func renderInsight(w io.Writer, result *engine.Result) {
	switch {
	case result.NameInsights != nil:
		for _, match := range result.NameInsights.NearestNames {
			row(w, "Near name", "%s (%s) value %d, distance %d",
				match.Name.Arabic, match.Name.Translit, match.Name.Value, match.Distance)
		}

	case result.LineageInsights != nil:
		row(w, "Your kabir", "%d", result.LineageInsights.YourCore.Kabir)
		row(w, "Mother kabir", "%d", result.LineageInsights.MotherCore.Kabir)

	case result.PhraseInsights != nil:
		row(w, "Words", "%d", result.PhraseInsights.WordCount)
		row(w, "Letters", "%d unique", result.PhraseInsights.UniqueLetters)
		for _, freq := range result.PhraseInsights.TopLetters {
			row(w, "Top letter", "%s ×%d (value %d, %s)",
				freq.Letter, freq.Count, freq.Value, freq.Element)
		}

	case result.QuranInsights != nil:
		row(w, "Verse", "%s %d:%d (%s)",
			result.QuranInsights.Surah.Translit, result.QuranInsights.Surah.Number,
			result.QuranInsights.AyahNumber, result.QuranInsights.TextSource)

	case result.DhikrInsights != nil:
		if name := result.DhikrInsights.Name; name != nil {
			row(w, "Divine Name", "%s (%s) — %s, #%d",
				name.Arabic, name.Translit, name.Meaning, name.Number)
		}
		if counts := result.DhikrInsights.SuggestedCounts; len(counts) > 0 {
			row(w, "Counts", "%s", joinCounts(counts))
		}

	case result.GeneralInsights != nil:
		for _, match := range result.GeneralInsights.NearestNames {
			row(w, "Near name", "%s (%s) value %d, distance %d",
				match.Name.Arabic, match.Name.Translit, match.Name.Value, match.Distance)
		}
	}
}

func row(w io.Writer, label, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render(label), fmt.Sprintf(format, args...))
}

func joinCounts(counts []int) string {
	parts := make([]string, len(counts))
	for i, count := range counts {
		parts[i] = fmt.Sprintf("%d", count)
	}
	return strings.Join(parts, ", ")
}

// wrap breaks prose into lines no wider than width, on word boundaries.
func wrap(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder
	lineLen := 0
	for i, word := range words {
		if i > 0 {
			if lineLen+1+len([]rune(word)) > width {
				b.WriteByte('\n')
				lineLen = 0
			} else {
				b.WriteByte(' ')
				lineLen++
			}
		}
		b.WriteString(word)
		lineLen += len([]rune(word))
	}
	return b.String()
}
