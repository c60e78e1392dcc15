package report

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/bekendz87/droh-admin/internal/common"
)

// FormFieldKind is the input type of a modal form field.
type FormFieldKind int

// Form field kinds.
const (
	FormText FormFieldKind = iota
	FormAmount
	FormSelect
)

// FormField is one input of a modal action form.
type FormField struct {
	// RequiredIf makes the field conditionally required based on the
	// current form values (e.g. a transfer source needs a reference).
	RequiredIf  func(values map[string]string) bool
	Max         *decimal.Decimal
	Name        string
	Label       string
	Placeholder string
	Value       string
	Options     []Option
	Kind        FormFieldKind
	Required    bool
}

// Form is a typed mutation workflow hosted by a modal: fields, local
// validation, the mutation call and an optional notification side effect.
// The record it targets is captured in the closures when the action is
// built for a row.
type Form struct {
	Submit   func(ctx context.Context, values map[string]string) (string, error)
	Notify   func(ctx context.Context, values map[string]string) error
	Validate func(values map[string]string) error
	Title    string
	Fields   []FormField
}

// Values snapshots the current field values by name.
func (f *Form) Values() map[string]string {
	values := make(map[string]string, len(f.Fields))
	for i := range f.Fields {
		values[f.Fields[i].Name] = f.Fields[i].Value
	}
	return values
}

// Check runs the synchronous validation pass: required and
// conditionally-required fields, amount range checks, then the form's
// own cross-field rule. It never touches the network.
func (f *Form) Check() error {
	values := f.Values()

	for i := range f.Fields {
		field := &f.Fields[i]

		required := field.Required
		if !required && field.RequiredIf != nil {
			required = field.RequiredIf(values)
		}
		if required && field.Value == "" {
			return common.NewUserError(fmt.Sprintf("%s is required", field.Label), common.ErrValidation)
		}

		if field.Kind == FormAmount && field.Value != "" {
			amount, err := decimal.NewFromString(field.Value)
			if err != nil {
				return common.NewUserError(fmt.Sprintf("%s must be a number", field.Label), common.ErrValidation)
			}
			if !amount.IsPositive() {
				return common.NewUserError(fmt.Sprintf("%s must be greater than zero", field.Label), common.ErrValidation)
			}
			if field.Max != nil && amount.GreaterThan(*field.Max) {
				return common.NewUserError(
					fmt.Sprintf("%s exceeds the total of %s", field.Label, field.Max.String()),
					common.ErrValidation,
				)
			}
		}
	}

	if f.Validate != nil {
		if err := f.Validate(values); err != nil {
			return err
		}
	}

	return nil
}

// FieldByName returns the named form field for in-place edits, or nil.
func (f *Form) FieldByName(name string) *FormField {
	for i := range f.Fields {
		if f.Fields[i].Name == name {
			return &f.Fields[i]
		}
	}
	return nil
}

// Action is a row-level mutation workflow offered by a report. Build
// materializes the form for the selected row, capturing the typed record
// in its closures; it fails when the record does not support the action.
type Action struct {
	Build func(row int) (*Form, error)
	Name  string
	Title string
	Key   string
}
