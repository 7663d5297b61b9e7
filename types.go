// Package tinydf (TINY DataFrame) is a light, schema-aware, in-memory table.
//
// A Dataframe stores two-dimensional, heterogeneous data in one of three orientations:
//
// * Horizontal - each record is a row, and the columns describe the fields shared by every row
//
// * Vertical - each record is a column, and the indices label the row positions shared by every column
//
// * Raw - records are stored as-is, with no schema or labels
//
// Records are validated cell-by-cell against a column schema, which is either inferred from the data
// or supplied by the caller. Excess cells are truncated, absent cells are padded with a missing value,
// and cells whose type does not match the schema are replaced with a missing value (never coerced).
// None of the structural operations (append, concat, insert, delete, transpose, rename, truncate) return errors.
//
// A Dataframe is not safe for concurrent use. Callers that share one across goroutines
// must guard it with their own sync.Mutex or sync.RWMutex.
package tinydf

// Orientation determines which axis of a Dataframe is stored as the outer (record) axis.
type Orientation int

const (
	// Raw stores records as-is. Columns, indices and size carry no enforced meaning.
	Raw Orientation = iota
	// Horizontal stores one record per row.
	Horizontal
	// Vertical stores one record per column.
	Vertical
)

// DataType is the closed set of scalar kinds. It is both the runtime tag of a Value
// and the declared type of a Column.
type DataType int

const (
	// None -> missing value
	None DataType = iota
	// Bool -> bool
	Bool
	// Int8 -> int8
	Int8
	// Int16 -> int16
	Int16
	// Int32 -> int32
	Int32
	// Int64 -> int64
	Int64
	// Uint8 -> uint8
	Uint8
	// Uint16 -> uint16
	Uint16
	// Uint32 -> uint32
	Uint32
	// Uint64 -> uint64
	Uint64
	// Float32 -> float32
	Float32
	// Float64 -> float64
	Float64
	// String -> string
	String
	// Date -> civil.Date
	Date
	// Time -> civil.Time
	Time
	// DateTime -> civil.DateTime
	DateTime
	// Decimal -> decimal.Decimal
	Decimal
)

// A Value is one cell of a Dataframe: a typed scalar, the missing tag, or a label id.
// The zero Value is the missing tag.
type Value struct {
	dtype DataType
	id    bool
	val   interface{}
}

// Index labels one position along the non-schema axis of a Dataframe.
// By default, indices are auto-incrementing ids.
type Index = Value

// A Series is an ordered sequence of Values: one row, one column, or one raw record,
// depending on the orientation of the Dataframe that holds it.
type Series []Value

// Records is the raw nested-record form of a table.
type Records []Series

// A Column is one slot of a Dataframe schema.
// The zero Column (empty name, None type) is used when a column is discovered from no data.
type Column struct {
	Name string   `json:"name" yaml:"name"`
	Type DataType `json:"col_type" yaml:"type"`
}

// A Dataframe is a two-dimensional table of Values, with a column schema and row or column labels.
type Dataframe struct {
	data        Records
	columns     []Column
	indices     []Index
	orientation Orientation
	size        [2]int
}

// A DataframeIterator iterates over copies of the records in a Dataframe.
type DataframeIterator struct {
	current int
	data    Records
}

// A DataframeMutIterator iterates over the records in a Dataframe and allows them to be changed in place.
type DataframeMutIterator struct {
	current int
	df      *Dataframe
}

// A JSONProjection selects how a Dataframe is rendered as JSON.
type JSONProjection int

const (
	// JSONDataset renders the raw nested-record form, including the column names.
	JSONDataset JSONProjection = iota
	// JSONListObject renders one object per record, keyed by column name.
	JSONListObject
)

// A ReadOption configures a read function.
// Available read options: ReadOptionOrientation, ReadOptionDelimiter, ReadOptionSchema,
// ReadOptionNoInference, and ReadOptionDecimal.
type ReadOption func(*readConfig)

// A readConfig configures a read function.
// All read functions accept zero or more modifiers that alter the default read config, which is:
// Horizontal orientation, "," as field delimiter, an inferred schema, and typed cells.
type readConfig struct {
	Orientation Orientation
	Delimiter   rune
	Schema      []Column
	NoInference bool
	Decimal     bool
}
