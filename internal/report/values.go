package report

// FieldValue is the persisted value of one filter field.
type FieldValue struct {
	Value  string   `json:"value,omitempty"`
	Values []string `json:"values,omitempty"`
}

// ValueMap is a serializable snapshot of a filter bar, keyed by field
// name. It is what filter presets store.
type ValueMap map[string]FieldValue

// SnapshotValues captures the current values of a field list.
func SnapshotValues(fields []Field) ValueMap {
	vm := make(ValueMap, len(fields))
	for i := range fields {
		vm[fields[i].Name] = FieldValue{
			Value:  fields[i].Value,
			Values: append([]string(nil), fields[i].Values...),
		}
	}
	return vm
}

// ApplyValues restores a snapshot onto a field list in place. Fields
// missing from the snapshot keep their current value; snapshot entries
// with no matching field are ignored.
func ApplyValues(fields []Field, vm ValueMap) {
	for i := range fields {
		fv, ok := vm[fields[i].Name]
		if !ok {
			continue
		}
		if fields[i].Kind == FieldMultiSelect {
			fields[i].Values = append([]string(nil), fv.Values...)
			continue
		}
		fields[i].Value = fv.Value
	}
}
