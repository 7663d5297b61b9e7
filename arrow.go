package tinydf

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/memory"
	"github.com/shopspring/decimal"
)

// ArrowType returns the arrow type that stores Values of `dt`.
// Decimal is stored as its string form, and None as the null type.
func ArrowType(dt DataType) arrow.DataType {
	switch dt {
	case Bool:
		return arrow.FixedWidthTypes.Boolean
	case Int8:
		return arrow.PrimitiveTypes.Int8
	case Int16:
		return arrow.PrimitiveTypes.Int16
	case Int32:
		return arrow.PrimitiveTypes.Int32
	case Int64:
		return arrow.PrimitiveTypes.Int64
	case Uint8:
		return arrow.PrimitiveTypes.Uint8
	case Uint16:
		return arrow.PrimitiveTypes.Uint16
	case Uint32:
		return arrow.PrimitiveTypes.Uint32
	case Uint64:
		return arrow.PrimitiveTypes.Uint64
	case Float32:
		return arrow.PrimitiveTypes.Float32
	case Float64:
		return arrow.PrimitiveTypes.Float64
	case Date:
		return arrow.FixedWidthTypes.Date32
	case Time:
		return arrow.FixedWidthTypes.Time64us
	case DateTime:
		return &arrow.TimestampType{Unit: arrow.Microsecond}
	case String, Decimal:
		return arrow.BinaryTypes.String
	default:
		return arrow.Null
	}
}

// ArrowSchema converts the column schema to an arrow schema. Every field is nullable.
func (df *Dataframe) ArrowSchema() *arrow.Schema {
	fields := make([]arrow.Field, len(df.columns))
	for k, col := range df.columns {
		fields[k] = arrow.Field{
			Name:     col.Name,
			Type:     ArrowType(col.Type),
			Nullable: true,
		}
	}
	return arrow.NewSchema(fields, nil)
}

// ToArrow converts the Dataframe to an arrow record with one field per column and one row per row,
// regardless of orientation. Missing values are null. The caller must Release the record.
// A Raw Dataframe has no schema and returns ErrRawOrientation.
func (df *Dataframe) ToArrow(mem memory.Allocator) (arrow.Record, error) {
	if df.orientation == Raw {
		return nil, fmt.Errorf("ToArrow(): %w", ErrRawOrientation)
	}
	if mem == nil {
		mem = memory.DefaultAllocator
	}
	schema := df.ArrowSchema()
	b := array.NewRecordBuilder(mem, schema)
	defer b.Release()

	numRows := df.size[0]
	if df.orientation == Vertical {
		numRows = df.size[1]
	}
	for k := range df.columns {
		builder := b.Field(k)
		builder.Reserve(numRows)
		for i := 0; i < numRows; i++ {
			if err := appendArrow(builder, df.cell(i, k)); err != nil {
				return nil, fmt.Errorf("ToArrow(): column %q: row %d: %v", df.columns[k].Name, i, err)
			}
		}
	}
	return b.NewRecord(), nil
}

// cell returns the Value at `row` and `col` regardless of orientation, or missing if out of range.
func (df *Dataframe) cell(row, col int) Value {
	i, j := row, col
	if df.orientation == Vertical {
		i, j = col, row
	}
	v, _ := df.ILoc(i, j)
	return v
}

func appendArrow(builder array.Builder, v Value) error {
	if v.IsMissing() {
		builder.AppendNull()
		return nil
	}
	switch b := builder.(type) {
	case *array.BooleanBuilder:
		b.Append(v.val.(bool))
	case *array.Int8Builder:
		b.Append(v.val.(int8))
	case *array.Int16Builder:
		b.Append(v.val.(int16))
	case *array.Int32Builder:
		b.Append(v.val.(int32))
	case *array.Int64Builder:
		b.Append(v.val.(int64))
	case *array.Uint8Builder:
		b.Append(v.val.(uint8))
	case *array.Uint16Builder:
		b.Append(v.val.(uint16))
	case *array.Uint32Builder:
		b.Append(v.val.(uint32))
	case *array.Uint64Builder:
		b.Append(v.val.(uint64))
	case *array.Float32Builder:
		b.Append(v.val.(float32))
	case *array.Float64Builder:
		b.Append(v.val.(float64))
	case *array.StringBuilder:
		switch val := v.val.(type) {
		case string:
			b.Append(val)
		case decimal.Decimal:
			b.Append(val.String())
		default:
			return fmt.Errorf("unsupported value for string field (%v)", v.dtype)
		}
	case *array.Date32Builder:
		b.Append(arrow.Date32FromTime(v.val.(civil.Date).In(time.UTC)))
	case *array.Time64Builder:
		t := v.val.(civil.Time)
		us := (int64(t.Hour)*3600+int64(t.Minute)*60+int64(t.Second))*1e6 + int64(t.Nanosecond)/1e3
		b.Append(arrow.Time64(us))
	case *array.TimestampBuilder:
		b.Append(arrow.Timestamp(v.val.(civil.DateTime).In(time.UTC).UnixMicro()))
	case *array.NullBuilder:
		b.AppendNull()
	default:
		return fmt.Errorf("unsupported arrow builder (%T)", builder)
	}
	return nil
}
