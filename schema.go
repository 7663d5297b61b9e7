package tinydf

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ReadSchema reads a column schema from YAML in `r`.
// The YAML is a list of columns, each with a name and a type:
//
//	- name: id
//	  type: Int64
//	- name: name
//	  type: String
//
// Type names are parsed with ParseDataType.
func ReadSchema(r io.Reader) ([]Column, error) {
	var columns []Column
	if err := yaml.NewDecoder(r).Decode(&columns); err != nil {
		if err == io.EOF {
			return []Column{}, nil
		}
		return nil, fmt.Errorf("ReadSchema(): %w", err)
	}
	return columns, nil
}

// WriteSchema writes `columns` to `w` as YAML that can be read by ReadSchema.
func WriteSchema(w io.Writer, columns []Column) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(columns); err != nil {
		return fmt.Errorf("WriteSchema(): %v", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("WriteSchema(): %v", err)
	}
	return nil
}
