// Package render formats run reports and catalog listings for people, plus a
// JSON mode for scripting. Rendering is pure presentation: a cosmetic failure
// (markdown styling, colors) degrades to plain text instead of failing the
// run.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	json "github.com/goccy/go-json"

	"github.com/oneshot-dev/oneshot"
	"github.com/oneshot-dev/oneshot/provider"
)

type Options struct {
	// JSON emits the full report as indented JSON instead of the human format.
	JSON bool

	// Color enables colored labels in the human format.
	Color bool

	// Markdown renders the generated text through a terminal markdown
	// renderer. Plain text is used when rendering fails.
	Markdown bool
}

// Report writes a run report: the generated text verbatim (or markdown-
// rendered), then the response metadata. Empty generated text is legal and
// renders as an explicit placeholder.
func Report(w io.Writer, report *oneshot.Report, o Options) error {
	if o.JSON {
		return encode(w, report)
	}

	text := strings.TrimRight(report.Result.Text, "\n")
	if o.Markdown && strings.TrimSpace(text) != "" {
		if rendered, err := markdown(text); err == nil {
			text = strings.TrimRight(rendered, "\n")
		}
	}
	if strings.TrimSpace(text) == "" {
		text = "(empty response)"
	}
	fmt.Fprintln(w, text)
	fmt.Fprintln(w)

	name := report.Model.ID
	if report.Model.DisplayName != "" && report.Model.DisplayName != report.Model.ID {
		name = fmt.Sprintf("%s (%s)", report.Model.ID, report.Model.DisplayName)
	}
	kv(w, o, "model", name)
	kv(w, o, "finish reason", string(report.Result.FinishReason))
	kv(w, o, "safety checks", fmt.Sprintf("%d", report.Result.SafetyChecks))
	kv(w, o, "candidates", fmt.Sprintf("%d", report.Result.Candidates))
	if usage := report.Result.Usage; usage.TotalTokens > 0 {
		kv(w, o, "tokens", fmt.Sprintf("%d prompt / %d completion / %d total",
			usage.PromptTokens, usage.CompletionTokens, usage.TotalTokens))
	}
	return nil
}

// Catalog writes the model listing: one line per model with its capability
// tags, then a generation-capable summary count.
func Catalog(w io.Writer, catalog *provider.Catalog, o Options) error {
	if o.JSON {
		models := make([]provider.ModelDescriptor, 0, catalog.Len())
		for m := range catalog.Models() {
			models = append(models, m)
		}
		return encode(w, models)
	}

	capable := 0
	for m := range catalog.Models() {
		mark := "✗"
		if m.Supports(provider.CapabilityGenerate) {
			capable++
			mark = "✓"
		}
		if o.Color {
			if mark == "✓" {
				mark = color.GreenString(mark)
			} else {
				mark = color.RedString(mark)
			}
		}

		line := fmt.Sprintf("%s %s", mark, m.ID)
		if m.DisplayName != "" && m.DisplayName != m.ID {
			line += fmt.Sprintf(" (%s)", m.DisplayName)
		}
		if len(m.Capabilities) > 0 {
			tags := make([]string, len(m.Capabilities))
			for i, c := range m.Capabilities {
				tags[i] = string(c)
			}
			line += "  [" + strings.Join(tags, ", ") + "]"
		}
		fmt.Fprintln(w, line)
	}
	fmt.Fprintf(w, "\n%d models, %d generation-capable\n", catalog.Len(), capable)
	return nil
}

func kv(w io.Writer, o Options, key, value string) {
	if o.Color {
		key = color.CyanString(key)
	}
	fmt.Fprintf(w, "%s: %s\n", key, value)
}

func markdown(text string) (string, error) {
	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return "", err
	}
	return renderer.Render(text)
}

func encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
