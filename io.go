package tinydf

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"github.com/ptiger10/tablediff"
)

// -- READ OPTIONS

// ReadOptionOrientation configures a read function to build a Dataframe with orientation `o` (default: Horizontal).
// With Horizontal, each csv line is a row and the first line holds the column names.
// With Vertical, each csv line is a column and the first cell of each line holds the column name.
func ReadOptionOrientation(o Orientation) ReadOption {
	return func(r *readConfig) {
		r.Orientation = o
	}
}

// ReadOptionDelimiter configures a read function to use `sep` as a field delimiter (default: ",").
func ReadOptionDelimiter(sep rune) ReadOption {
	return func(r *readConfig) {
		r.Delimiter = sep
	}
}

// ReadOptionSchema configures a read function to validate cells against `columns` instead of inferring a schema.
// The data is then expected to have no header line (Horizontal) or name cells (Vertical).
func ReadOptionSchema(columns []Column) ReadOption {
	return func(r *readConfig) {
		r.Schema = columns
	}
}

// ReadOptionNoInference configures a read function to store every cell as a String (default: infer types with ParseValue).
func ReadOptionNoInference() ReadOption {
	return func(r *readConfig) {
		r.NoInference = true
	}
}

// ReadOptionDecimal configures a read function to infer non-integer numbers as Decimal instead of Float64.
func ReadOptionDecimal() ReadOption {
	return func(r *readConfig) {
		r.Decimal = true
	}
}

func setReadConfig(options []ReadOption) *readConfig {
	config := &readConfig{
		Orientation: Horizontal,
		Delimiter:   ',',
	}
	for _, option := range options {
		option(config)
	}
	return config
}

// -- READERS

// ReadCSV reads csv from `r` into a Dataframe (configured by `options`).
// Available options: ReadOptionOrientation, ReadOptionDelimiter, ReadOptionSchema, ReadOptionNoInference, ReadOptionDecimal.
//
// Default if no options are supplied:
// Horizontal orientation, "," as delimiter, header line of column names, types inferred from the first line of data.
func ReadCSV(r io.Reader, options ...ReadOption) (*Dataframe, error) {
	config := setReadConfig(options)
	reader := csv.NewReader(r)
	reader.Comma = config.Delimiter
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	data, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("ReadCSV(): %v", err)
	}
	df, err := readStringRecords(data, config)
	if err != nil {
		return nil, fmt.Errorf("ReadCSV(): %w", err)
	}
	return df, nil
}

// ReadStringRecords reads [][]string records into a Dataframe (configured by `options`). See ReadCSV for defaults.
func ReadStringRecords(data [][]string, options ...ReadOption) (*Dataframe, error) {
	config := setReadConfig(options)
	df, err := readStringRecords(data, config)
	if err != nil {
		return nil, fmt.Errorf("ReadStringRecords(): %w", err)
	}
	return df, nil
}

func readStringRecords(data [][]string, config *readConfig) (*Dataframe, error) {
	if len(data) == 0 || len(data[0]) == 0 {
		return nil, ErrEmptyRecords
	}
	records := make(Records, len(data))
	for i := range data {
		records[i] = make(Series, len(data[i]))
		for k := range data[i] {
			records[i][k] = readCell(data[i][k], config)
		}
	}
	if config.Schema != nil {
		return FromRecords(records, config.Orientation, config.Schema), nil
	}
	return New(records, config.Orientation), nil
}

func readCell(s string, config *readConfig) Value {
	if config.NoInference {
		if isNullString(s) {
			return Value{}
		}
		return StringValue(s)
	}
	return parseValue(s, config.Decimal)
}

// -- WRITERS

// WriteCSV writes the Dataframe to `w` as csv in raw nested-record form (see ToRecords).
// Missing values are written as the null string.
func (df *Dataframe) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(df.CSVRecords()); err != nil {
		return fmt.Errorf("WriteCSV(): %v", err)
	}
	return nil
}

// EqualsCSV converts the Dataframe to csv records (see CSVRecords), compares it to `want`,
// and evaluates whether the stringified values match.
// If they do not match, returns a tablediff.Differences object that can be printed to isolate their differences.
func (df *Dataframe) EqualsCSV(want [][]string) (bool, *tablediff.Differences, error) {
	if len(want) == 0 {
		return false, nil, fmt.Errorf("EqualsCSV(): `want`: %w", ErrEmptyRecords)
	}
	numCols := len(want[0])
	for i := range want {
		if len(want[i]) != numCols {
			return false, nil, fmt.Errorf("EqualsCSV(): `want`: slice %d: all slices must have same length as first slice (%d != %d)",
				i, len(want[i]), numCols)
		}
	}
	diffs, eq := tablediff.Diff(df.CSVRecords(), want)
	return eq, diffs, nil
}

// -- JSON

// MarshalJSON renders a missing Value as null, numbers and bools natively, and every other kind as a string.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.dtype {
	case None:
		return []byte("null"), nil
	case Bool, Int8, Int16, Int32, Int64, Uint8, Uint16, Uint32, Uint64, Float32, Float64, String:
		return json.Marshal(v.val)
	default:
		return json.Marshal(v.String())
	}
}

// ToJSON renders the Dataframe as JSON using `projection`.
//
// JSONDataset renders the raw nested-record form (see ToRecords).
//
// JSONListObject renders one object per record, keyed by column name in column order.
// Cells beyond the number of columns are dropped. A Raw Dataframe has no column names and returns ErrRawOrientation.
func (df *Dataframe) ToJSON(projection JSONProjection) ([]byte, error) {
	switch projection {
	case JSONDataset:
		b, err := json.Marshal(df.ToRecords())
		if err != nil {
			return nil, fmt.Errorf("ToJSON(): %v", err)
		}
		return b, nil
	case JSONListObject:
		if df.orientation == Raw {
			return nil, fmt.Errorf("ToJSON(): %w", ErrRawOrientation)
		}
		b, err := df.listObjects()
		if err != nil {
			return nil, fmt.Errorf("ToJSON(): %v", err)
		}
		return b, nil
	}
	return nil, fmt.Errorf("ToJSON(): unsupported projection (%d)", projection)
}

// MarshalJSON satisfies the json.Marshaler interface, using the JSONDataset projection.
func (df *Dataframe) MarshalJSON() ([]byte, error) {
	return df.ToJSON(JSONDataset)
}

// object keys are written manually so that they keep column order
func (df *Dataframe) listObjects() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i := range df.data {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('{')
		for k := 0; k < len(df.columns) && k < len(df.data[i]); k++ {
			if k > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(df.columns[k].Name)
			if err != nil {
				return nil, err
			}
			val, err := json.Marshal(df.data[i][k])
			if err != nil {
				return nil, err
			}
			buf.Write(key)
			buf.WriteByte(':')
			buf.Write(val)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}
