package report

import (
	"net/url"

	"github.com/bekendz87/droh-admin/internal/common"
	"github.com/bekendz87/droh-admin/internal/model"
)

// State is the fetch state of a report controller.
type State int

// Controller states. Any state may re-enter Loading on a new fetch.
const (
	StateIdle State = iota
	StateLoading
	StateLoaded
	StateErrored
)

// String returns a string representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateLoading:
		return "Loading"
	case StateLoaded:
		return "Loaded"
	case StateErrored:
		return "Errored"
	default:
		return "Unknown"
	}
}

// Controller is the per-report state machine: filter values, pagination,
// the fetched page and the loading/error flags. It is driven from the
// single UI update loop, so it carries no locking; the fetch itself runs
// elsewhere and reports back through Apply.
//
// Every fetch bumps a generation counter. A response that arrives tagged
// with a stale generation is discarded, so a slow old request can never
// overwrite the result of a newer one.
type Controller struct {
	err        string
	fields     []Field
	data       PageData
	schema     Schema
	gen        uint64
	page       int
	totalPages int
	limit      int
	state      State
}

// NewController creates a controller with the schema's default filters.
func NewController(schema Schema) *Controller {
	return &Controller{
		schema: schema,
		fields: schema.Defaults(),
		page:   1,
		limit:  schema.PageSize(),
		state:  StateIdle,
	}
}

// Schema returns the report schema the controller drives.
func (c *Controller) Schema() Schema { return c.schema }

// Fields returns the live filter fields.
func (c *Controller) Fields() []Field { return c.fields }

// Field returns the named filter field for in-place edits, or nil.
func (c *Controller) Field(name string) *Field {
	return FieldByName(c.fields, name)
}

// SetField replaces a scalar filter value.
func (c *Controller) SetField(name, value string) {
	if f := c.Field(name); f != nil {
		f.Set(value)
	}
}

// ToggleField flips one option of a multi-select filter.
func (c *Controller) ToggleField(name, value string) {
	if f := c.Field(name); f != nil {
		f.Toggle(value)
	}
}

// Submit starts a fetch of page 1 with the current filters. It returns
// the fetch generation and query parameters the caller must pass back to
// Apply. A validation failure leaves the current state untouched.
func (c *Controller) Submit() (uint64, url.Values, error) {
	return c.start(1)
}

// ChangePage starts a fetch of page n with the current filters.
func (c *Controller) ChangePage(n int) (uint64, url.Values, error) {
	if c.totalPages > 0 {
		n = model.ClampPage(n, c.totalPages)
	}
	if n < 1 {
		n = 1
	}
	return c.start(n)
}

// Refresh re-fetches the current page, e.g. after a mutation.
func (c *Controller) Refresh() (uint64, url.Values, error) {
	return c.start(c.page)
}

// Reset restores the schema's default filters and starts a fresh submit.
// Calling it twice in a row is idempotent: same filters, same page.
func (c *Controller) Reset() (uint64, url.Values, error) {
	c.fields = c.schema.Defaults()
	return c.Submit()
}

func (c *Controller) start(page int) (uint64, url.Values, error) {
	params, err := BuildParams(c.fields, page, c.limit)
	if err != nil {
		return 0, nil, err
	}

	c.gen++
	c.page = page
	c.state = StateLoading

	return c.gen, params, nil
}

// Apply records the outcome of a fetch. It reports false — and changes
// nothing — when the generation is stale.
func (c *Controller) Apply(gen uint64, data PageData, fetchErr error) bool {
	if gen != c.gen {
		return false
	}

	if fetchErr != nil {
		c.state = StateErrored
		c.err = common.UserMessage(fetchErr)
		c.data = PageData{}
		c.totalPages = 0
		return true
	}

	c.state = StateLoaded
	c.err = ""
	c.data = data
	c.totalPages = model.TotalPages(data.Count, c.limit)
	c.page = model.ClampPage(c.page, c.totalPages)

	return true
}

// ExportParams validates and builds the export query for the current
// filters. It fails fast when a date bound is missing; no request is
// issued in that case.
func (c *Controller) ExportParams(kind ExportKind) (url.Values, error) {
	return ExportParams(c.fields, c.limit, kind, c.schema.ExportTitle)
}

// State returns the current fetch state.
func (c *Controller) State() State { return c.state }

// Loading reports whether a fetch is in flight.
func (c *Controller) Loading() bool { return c.state == StateLoading }

// Err returns the page-level error message, empty when none.
func (c *Controller) Err() string { return c.err }

// Data returns the last loaded page.
func (c *Controller) Data() PageData { return c.data }

// Page returns the current page index, 1-based.
func (c *Controller) Page() int { return c.page }

// TotalPages returns the page count of the last loaded result.
func (c *Controller) TotalPages() int { return c.totalPages }

// Limit returns the page size.
func (c *Controller) Limit() int { return c.limit }
