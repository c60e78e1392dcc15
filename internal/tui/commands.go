package tui

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bekendz87/droh-admin/internal/common"
	"github.com/bekendz87/droh-admin/internal/export"
	"github.com/bekendz87/droh-admin/internal/report"
)

const (
	fetchTimeout  = 30 * time.Second
	submitTimeout = 30 * time.Second
	exportTimeout = 2 * time.Minute
)

// fetchPage loads one page in the background. The generation travels
// with the result so a stale response can be discarded on arrival.
func fetchPage(fetch report.FetchFunc, gen uint64, params url.Values) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		data, err := fetch(ctx, params)
		return pageMsg{gen: gen, data: data, err: err}
	}
}

// submitForm runs the modal's mutation. The notification side effect is
// best-effort: its failure is logged and never fails the submission.
func submitForm(form *report.Form) tea.Cmd {
	values := form.Values()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), submitTimeout)
		defer cancel()

		message, err := form.Submit(ctx, values)
		if err != nil {
			return modalDoneMsg{err: err}
		}

		if form.Notify != nil {
			if err := form.Notify(ctx, values); err != nil {
				common.LogError(err, "failed to send notification", common.Fields{"form": form.Title})
			}
		}

		return modalDoneMsg{message: message}
	}
}

// runExport streams a server-side export to the download directory.
func runExport(exportFn report.ExportFunc, params url.Values) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), exportTimeout)
		defer cancel()

		path, err := exportFn(ctx, params)
		return exportDoneMsg{path: path, err: err}
	}
}

// saveLocal writes the currently loaded page to a local file.
func saveLocal(schema report.Schema, data report.PageData, kind report.ExportKind, dir string) tea.Cmd {
	headers := make([]string, len(schema.Columns))
	for i, c := range schema.Columns {
		headers[i] = c.Title
	}

	tbl := export.Table{
		Title:       schema.ExportTitle,
		GeneratedAt: time.Now(),
		Headers:     headers,
		Rows:        data.Cells,
		Summary:     data.Summary,
	}

	ext := "xlsx"
	if kind == report.ExportPDF {
		ext = "pdf"
	}
	name := fmt.Sprintf("%s-%s.%s", schema.Name, time.Now().Format("20060102-150405"), ext)
	path := filepath.Join(dir, name)

	return func() tea.Msg {
		var err error
		switch kind {
		case report.ExportPDF:
			err = export.WritePDF(path, tbl)
		default:
			err = export.WriteExcel(path, tbl)
		}
		return exportDoneMsg{path: path, err: err}
	}
}
