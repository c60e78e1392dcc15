package reports

import (
	"context"
	"net/url"

	"github.com/bekendz87/droh-admin/internal/api"
	"github.com/bekendz87/droh-admin/internal/model"
	"github.com/bekendz87/droh-admin/internal/report"
)

func examinationColumns() []report.ColumnDef[model.Examination] {
	return []report.ColumnDef[model.Examination]{
		{
			Column: report.Column{Key: "code", Title: "Code", Width: 10},
			Value:  func(e model.Examination) string { return e.Code },
		},
		{
			Column: report.Column{Key: "created_at", Title: "Date", Width: 16},
			Value:  func(e model.Examination) string { return formatTime(e.CreatedAt) },
		},
		{
			Column: report.Column{Key: "patient_name", Title: "Patient", Width: 22},
			Value:  func(e model.Examination) string { return e.PatientName },
		},
		{
			Column: report.Column{Key: "service_name", Title: "Service", Width: 24},
			Value:  func(e model.Examination) string { return e.ServiceName },
		},
		{
			Column: report.Column{Key: "doctor_name", Title: "Doctor", Width: 18},
			Value:  func(e model.Examination) string { return e.DoctorName },
		},
		{
			Column: report.Column{Key: "fee", Title: "Fee", Width: 12},
			Value:  func(e model.Examination) string { return formatMoney(e.Fee) },
		},
		{
			Column: report.Column{Key: "status", Title: "Status", Width: 12},
			Value:  func(e model.Examination) string { return string(e.Status) },
		},
		{
			Column: report.Column{Key: "branch_name", Title: "Branch", Width: 16},
			Value:  func(e model.Examination) string { return e.BranchName },
		},
	}
}

func examinationFields() []report.Field {
	fields := dateRangeFields()
	return append(fields,
		report.Field{
			Kind:  report.FieldSelect,
			Name:  "status",
			Label: "Status",
			Value: "all",
			Options: []report.Option{
				{Value: "all", Label: "All"},
				{Value: string(model.ExaminationWaiting), Label: "Waiting"},
				{Value: string(model.ExaminationInProgress), Label: "In progress"},
				{Value: string(model.ExaminationDone), Label: "Done"},
				{Value: string(model.ExaminationCanceled), Label: "Canceled"},
			},
		},
		report.Field{
			Kind:        report.FieldText,
			Name:        "doctor",
			Label:       "Doctor",
			Placeholder: "doctor name",
		},
		report.Field{
			Kind:        report.FieldText,
			Name:        "patient",
			Label:       "Patient",
			Placeholder: "name or code",
		},
	)
}

// Examinations builds the examination report schema.
func Examinations(deps Deps) report.Schema {
	cols := examinationColumns()

	return report.Schema{
		Name:        "examinations",
		Title:       "Examinations",
		EmptyText:   "No examinations match the current filters",
		ExportTitle: "Examination report",
		Columns:     report.Columns(cols),
		Defaults:    examinationFields,
		Fetch: func(ctx context.Context, params url.Values) (report.PageData, error) {
			page, err := deps.API.ListExaminations(ctx, params)
			if err != nil {
				return report.PageData{}, err
			}
			return report.PageData{
				Cells:   report.Cells(cols, page.List),
				Count:   page.Count,
				Summary: summaryStats(page.Report),
			}, nil
		},
		Export: func(ctx context.Context, params url.Values) (string, error) {
			return deps.API.Download(ctx, api.PathExaminations, params, deps.Downloads)
		},
	}
}
