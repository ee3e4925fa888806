package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"go.trai.ch/assetimport/internal/app"
	"go.trai.ch/assetimport/internal/core/domain"
	"go.trai.ch/assetimport/internal/engine/importer"
	"go.trai.ch/assetimport/internal/ui/output"
	"go.trai.ch/assetimport/internal/ui/style"
)

func (c *CLI) writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (c *CLI) renderResults(w io.Writer, results []domain.ImportResult) error {
	if c.json {
		if results == nil {
			results = []domain.ImportResult{}
		}
		return c.writeJSON(w, results)
	}

	r := output.NewRenderer(w)
	if len(results) == 0 {
		_, err := fmt.Fprintln(w, r.NewStyle().Foreground(style.Slate).Render("no transformations bound to this field"))
		return err
	}

	var sb strings.Builder
	for _, res := range results {
		icon, color := style.Check, style.Green
		if res.Pending {
			icon, color = style.Circle, style.Yellow
		}
		fmt.Fprintf(&sb, "%s %s %s\n",
			r.NewStyle().Foreground(color).Render(icon),
			r.NewStyle().Bold(true).Render(res.Name),
			res.URL,
		)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func (c *CLI) renderReport(w io.Writer, report importer.Report) error {
	if c.json {
		return c.writeJSON(w, report)
	}

	r := output.NewRenderer(w)
	parts := []string{
		r.NewStyle().Foreground(style.Green).Render(fmt.Sprintf("%d ready", report.Ready)),
		r.NewStyle().Foreground(style.Yellow).Render(fmt.Sprintf("%d pending", report.Pending)),
	}
	if report.Failed > 0 {
		parts = append(parts, r.NewStyle().Foreground(style.Red).Render(fmt.Sprintf("%d failed", report.Failed)))
	}
	_, err := fmt.Fprintf(w, "%d fields: %s\n", report.Fields, strings.Join(parts, ", "))
	return err
}

func (c *CLI) renderStates(w io.Writer, states []app.FileState) error {
	if c.json {
		if states == nil {
			states = []app.FileState{}
		}
		return c.writeJSON(w, states)
	}
	if len(states) == 0 {
		return nil
	}

	r := output.NewRenderer(w)
	rows := make([][]string, 0, len(states))
	for _, s := range states {
		icon, color := style.StatusIcon(s.Status)
		rows = append(rows, []string{
			r.NewStyle().Foreground(color).Render(icon + " " + string(s.Status)),
			s.Path,
			s.URL,
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.NewStyle().Foreground(style.Slate)).
		Headers("STATUS", "FILE", "URL").
		Rows(rows...)
	_, err := fmt.Fprintln(w, t.String())
	return err
}

type catalogView struct {
	Path     string        `json:"path"`
	Bindings []bindingView `json:"bindings"`
}

type bindingView struct {
	ContentType       string                            `json:"contentType"`
	Context           string                            `json:"context"`
	Location          string                            `json:"location"`
	Alias             string                            `json:"alias"`
	AssetIDLocation   string                            `json:"assetIdLocation,omitempty"`
	AssetPathLocation string                            `json:"assetPathLocation,omitempty"`
	Transformations   []domain.TransformationDescriptor `json:"transformations"`
}

func newCatalogView(listing app.CatalogListing) catalogView {
	view := catalogView{Path: listing.Path, Bindings: []bindingView{}}
	if listing.Catalog == nil {
		return view
	}
	for _, key := range listing.Catalog.Keys() {
		for _, b := range listing.Catalog.Resolve(key.ContentType, key.Context) {
			view.Bindings = append(view.Bindings, bindingView{
				ContentType:       b.ContentType,
				Context:           b.Context,
				Location:          b.Location,
				Alias:             b.FileSystemAlias(),
				AssetIDLocation:   b.AssetIDLocation,
				AssetPathLocation: b.AssetPathLocation,
				Transformations:   b.Transformations,
			})
		}
	}
	return view
}

func (c *CLI) renderCatalog(w io.Writer, listing app.CatalogListing) error {
	view := newCatalogView(listing)
	if c.json {
		return c.writeJSON(w, view)
	}

	r := output.NewRenderer(w)
	if _, err := fmt.Fprintln(w, r.NewStyle().Foreground(style.Slate).Render(view.Path)); err != nil {
		return err
	}

	var rows [][]string
	for _, b := range view.Bindings {
		for _, t := range b.Transformations {
			task := t.Task
			if t.IsNoop() {
				task = domain.NoopTask
			}
			rows = append(rows, []string{
				b.ContentType + "/" + b.Context,
				b.Location,
				b.Alias,
				r.NewStyle().Foreground(style.Iris).Render(t.Name),
				task + t.ParameterSummary(),
			})
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.NewStyle().Foreground(style.Slate)).
		Headers("SOURCE", "LOCATION", "ALIAS", "TRANSFORMATION", "TASK").
		Rows(rows...)
	_, err := fmt.Fprintln(w, t.String())
	return err
}
