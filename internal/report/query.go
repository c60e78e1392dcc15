package report

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/bekendz87/droh-admin/internal/common"
)

// ExportKind selects the server-side export format.
type ExportKind string

// Export kinds.
const (
	ExportExcel ExportKind = "excel"
	ExportPDF   ExportKind = "pdf"
)

// BuildParams derives the flat query parameters from the filter fields
// plus pagination. Empty fields are omitted; date fields are normalized
// to their day bound; multi-select values are comma-joined (the backend
// does not take repeated keys).
func BuildParams(fields []Field, page, limit int) (url.Values, error) {
	params := url.Values{}

	for i := range fields {
		f := fields[i]
		if err := f.Validate(); err != nil {
			return nil, err
		}

		switch f.Kind {
		case FieldDate:
			if f.Value == "" {
				continue
			}
			normalize := StartOfDay
			if f.EndOfDay {
				normalize = EndOfDay
			}
			iso, err := normalize(f.Value)
			if err != nil {
				return nil, common.NewUserError(fmt.Sprintf("%s is not a valid date", f.Label), err)
			}
			params.Set(f.Name, iso)
		case FieldMultiSelect:
			if len(f.Values) == 0 {
				continue
			}
			params.Set(f.Name, strings.Join(f.Values, ","))
		case FieldText, FieldSelect:
			if f.Value == "" {
				continue
			}
			params.Set(f.Name, f.Value)
		}
	}

	params.Set("page", strconv.Itoa(page))
	params.Set("limit", strconv.Itoa(limit))

	return params, nil
}

// ExportParams builds the same query as BuildParams with the export
// discriminator and title hint on top. Every date filter must be set:
// an unbounded export would ask the backend to render the full history.
func ExportParams(fields []Field, limit int, kind ExportKind, title string) (url.Values, error) {
	for i := range fields {
		if fields[i].Kind == FieldDate && fields[i].Value == "" {
			return nil, common.NewUserError(
				fmt.Sprintf("select %s before exporting", fields[i].Label),
				common.ErrExportDates,
			)
		}
	}

	params, err := BuildParams(fields, 1, limit)
	if err != nil {
		return nil, err
	}

	params.Set("export", string(kind))
	if title != "" {
		params.Set("title", title)
	}

	return params, nil
}
