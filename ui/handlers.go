package ui

import (
	"bytes"
	"encoding/json"
	"html/template"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gomarkdown/markdown"

	"artsdash/app"
	"artsdash/domain/chart"
	"artsdash/internal/errors"
)

// chartPanel pairs one chart spec with its caption rendered to HTML
type chartPanel struct {
	Spec        chart.Spec
	CaptionHTML template.HTML
}

// pageData is the template payload for the dashboard pages
type pageData struct {
	Title          string
	Tiles          []app.MetricTile
	PreviewHeaders []string
	PreviewRows    [][]string
	RowCount       int
	Panels         []chartPanel
	ViewJSON       template.JS
}

func (a *App) handleDashboard(w http.ResponseWriter, r *http.Request) {
	view, err := a.dashboard.Dashboard(r.Context())
	if err != nil {
		a.renderError(w, err)
		return
	}
	a.renderView(w, view)
}

func (a *App) handleGender(w http.ResponseWriter, r *http.Request) {
	view, err := a.dashboard.GenderView(r.Context())
	if err != nil {
		a.renderError(w, err)
		return
	}
	a.renderView(w, view)
}

func (a *App) renderView(w http.ResponseWriter, view *app.DashboardView) {
	viewJSON, err := json.Marshal(view.Charts)
	if err != nil {
		a.renderError(w, errors.Wrap(err, "failed to encode chart specs"))
		return
	}

	panels := make([]chartPanel, len(view.Charts))
	for i, spec := range view.Charts {
		panels[i] = chartPanel{
			Spec:        spec,
			CaptionHTML: renderCaption(spec.Caption),
		}
	}

	a.renderTemplate(w, "dashboard.html", pageData{
		Title:          view.Title,
		Tiles:          view.Tiles,
		PreviewHeaders: view.PreviewHeaders,
		PreviewRows:    view.PreviewRows,
		RowCount:       view.RowCount,
		Panels:         panels,
		ViewJSON:       template.JS(viewJSON),
	})
}

func (a *App) handleDashboardJSON(w http.ResponseWriter, r *http.Request) {
	view, err := a.dashboard.Dashboard(r.Context())
	if err != nil {
		a.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (a *App) handleChartJSON(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	spec, err := a.dashboard.Chart(r.Context(), name)
	if err != nil {
		a.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, spec)
}

func (a *App) handleProfileJSON(w http.ResponseWriter, r *http.Request) {
	table, err := a.dashboard.Load(r.Context())
	if err != nil {
		a.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"snapshot_id": table.SnapshotID,
		"row_count":   len(table.Rows),
		"columns":     app.ProfileNumericColumns(table),
	})
}

func (a *App) handleExport(w http.ResponseWriter, r *http.Request) {
	workbook, err := a.dashboard.ExportWorkbook(r.Context())
	if err != nil {
		a.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="arts_faculty_aggregates.xlsx"`)
	if err := workbook.Write(w); err != nil {
		log.Printf("[Export] Failed to write workbook: %v", err)
	}
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// renderTemplate renders to a buffer first so template errors never leave a
// half-written page behind
func (a *App) renderTemplate(w http.ResponseWriter, templateName string, data interface{}) {
	var buf bytes.Buffer
	if err := a.templates.ExecuteTemplate(&buf, templateName, data); err != nil {
		log.Printf("Template error for %s: %v", templateName, err)
		http.Error(w, "Template rendering failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("Error writing template response: %v", err)
	}
}

// renderError renders the full-page load failure. The pipeline is fail-fast:
// no charts render when the dataset is unavailable.
func (a *App) renderError(w http.ResponseWriter, err error) {
	log.Printf("[Dashboard] Render halted: %v", err)

	var buf bytes.Buffer
	data := map[string]interface{}{
		"Code":    errors.GetCode(err),
		"Message": err.Error(),
	}
	if tmplErr := a.templates.ExecuteTemplate(&buf, "error.html", data); tmplErr != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusForError(err))
	buf.WriteTo(w)
}

func (a *App) writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusForError(err), map[string]string{
		"code":  errors.GetCode(err),
		"error": err.Error(),
	})
}

func statusForError(err error) int {
	if !errors.IsAppError(err) {
		return http.StatusInternalServerError
	}
	switch errors.GetCode(err) {
	case errors.CodeNotFound:
		return http.StatusNotFound
	case errors.CodeFetchFailed, errors.CodeParseFailed, errors.CodeSchemaInvalid:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Error writing JSON response: %v", err)
	}
}

// renderCaption converts a markdown caption to HTML for the panel footer
func renderCaption(caption string) template.HTML {
	if caption == "" {
		return ""
	}
	return template.HTML(markdown.ToHTML([]byte(caption), nil, nil))
}
