package report

import (
	"fmt"
	"strings"
)

// FieldKind is the input type of a filter field.
type FieldKind int

// Filter field kinds.
const (
	FieldText FieldKind = iota
	FieldDate
	FieldSelect
	FieldMultiSelect
)

// String returns a string representation of the field kind.
func (k FieldKind) String() string {
	switch k {
	case FieldText:
		return "text"
	case FieldDate:
		return "date"
	case FieldSelect:
		return "select"
	case FieldMultiSelect:
		return "multiselect"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Option is one choice of a select or multi-select field.
type Option struct {
	Value string
	Label string
}

// Field is one entry of a report's filter bar. Text, date and select
// fields hold their state in Value; multi-select fields hold theirs in
// Values. The hosting page owns the values; components only change them
// through the workspace, never directly.
type Field struct {
	Name        string
	Label       string
	Placeholder string
	Value       string
	Values      []string
	Options     []Option
	Kind        FieldKind
	Span        int
	// EndOfDay marks the closing side of a date range: the value is
	// normalized to 23:59:59.999 instead of 00:00:00.000.
	EndOfDay bool
}

// Validate checks the value-shape invariant for the field's kind.
func (f Field) Validate() error {
	if f.Name == "" {
		return fmt.Errorf("filter field without a name")
	}
	if f.Kind == FieldMultiSelect {
		if f.Value != "" {
			return fmt.Errorf("multi-select field %q must not carry a scalar value", f.Name)
		}
		return nil
	}
	if len(f.Values) > 0 {
		return fmt.Errorf("%s field %q must not carry a value list", f.Kind, f.Name)
	}
	return nil
}

// Set replaces the scalar value of a text, date or select field.
func (f *Field) Set(value string) {
	if f.Kind == FieldMultiSelect {
		return
	}
	f.Value = value
}

// Toggle flips one option of a multi-select field.
func (f *Field) Toggle(value string) {
	if f.Kind != FieldMultiSelect {
		return
	}
	for i, v := range f.Values {
		if v == value {
			f.Values = append(f.Values[:i], f.Values[i+1:]...)
			return
		}
	}
	f.Values = append(f.Values, value)
}

// Selected reports whether a multi-select option is currently on.
func (f Field) Selected(value string) bool {
	for _, v := range f.Values {
		if v == value {
			return true
		}
	}
	return false
}

// Display renders the current value for the filter bar.
func (f Field) Display() string {
	switch f.Kind {
	case FieldMultiSelect:
		if len(f.Values) == 0 {
			return f.Placeholder
		}
		labels := make([]string, 0, len(f.Values))
		for _, v := range f.Values {
			labels = append(labels, f.optionLabel(v))
		}
		return strings.Join(labels, ", ")
	case FieldSelect:
		if f.Value == "" {
			return f.Placeholder
		}
		return f.optionLabel(f.Value)
	default:
		if f.Value == "" {
			return f.Placeholder
		}
		return f.Value
	}
}

func (f Field) optionLabel(value string) string {
	for _, o := range f.Options {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}

// CloneFields deep-copies a field list so controller state never aliases
// the schema defaults.
func CloneFields(fields []Field) []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	for i := range out {
		if len(fields[i].Values) > 0 {
			out[i].Values = append([]string(nil), fields[i].Values...)
		}
	}
	return out
}

// FieldByName returns a pointer into fields for in-place edits, or nil.
func FieldByName(fields []Field, name string) *Field {
	for i := range fields {
		if fields[i].Name == name {
			return &fields[i]
		}
	}
	return nil
}
