package tinydf

import (
	"fmt"
	"reflect"
)

const structTag = "tinydf"

// ReadStructs reads a slice of structs (or pointers to structs) into a Horizontal Dataframe.
// Each exported field becomes a column named after the field, or after its "tinydf" tag if present.
// Fields tagged `tinydf:"-"` are skipped.
// Column types come from the field types, so a field of an unsupported type is read as a None column of missing values.
// A nil pointer field is read as missing.
func ReadStructs(slice interface{}) (*Dataframe, error) {
	v := reflect.ValueOf(slice)
	if v.Kind() != reflect.Slice {
		return nil, fmt.Errorf("ReadStructs(): unsupported kind (%v); must be slice", v.Kind())
	}
	elem := v.Type().Elem()
	if elem.Kind() == reflect.Ptr {
		elem = elem.Elem()
	}
	if elem.Kind() != reflect.Struct {
		return nil, fmt.Errorf("ReadStructs(): slice elements must be struct or pointer to struct, not %v", elem.Kind())
	}
	fields, columns := structColumns(elem)
	if len(columns) == 0 {
		return nil, fmt.Errorf("ReadStructs(): %v has no exported fields", elem)
	}
	records := make(Records, v.Len())
	for i := 0; i < v.Len(); i++ {
		strct := v.Index(i)
		if strct.Kind() == reflect.Ptr {
			if strct.IsNil() {
				records[i] = make(Series, len(fields))
				continue
			}
			strct = strct.Elem()
		}
		records[i] = make(Series, len(fields))
		for k, idx := range fields {
			records[i][k] = fieldValue(strct.Field(idx))
		}
	}
	if len(records) == 0 {
		return &Dataframe{
			data:        Records{},
			columns:     columns,
			indices:     []Index{},
			orientation: Horizontal,
		}, nil
	}
	return FromRecords(records, Horizontal, columns), nil
}

// structColumns returns the position of each exported field and the column it is read into.
func structColumns(t reflect.Type) ([]int, []Column) {
	var fields []int
	var columns []Column
	for k := 0; k < t.NumField(); k++ {
		field := t.Field(k)
		// is unexported field?
		if field.PkgPath != "" {
			continue
		}
		name := field.Name
		if tag, ok := field.Tag.Lookup(structTag); ok {
			if tag == "-" {
				continue
			}
			if tag != "" {
				name = tag
			}
		}
		ft := field.Type
		if ft.Kind() == reflect.Ptr {
			ft = ft.Elem()
		}
		fields = append(fields, k)
		columns = append(columns, Column{Name: name, Type: NewValue(reflect.Zero(ft).Interface()).DataType()})
	}
	return fields, columns
}

func fieldValue(v reflect.Value) Value {
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return Value{}
		}
		v = v.Elem()
	}
	return NewValue(v.Interface())
}
