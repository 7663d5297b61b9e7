package tinydf

import (
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataframe_ToArrow(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	df := horizontalDF()
	df.Append(NewSeries(3, 42))
	rec, err := df.ToArrow(mem)
	require.NoError(t, err)
	defer rec.Release()

	assert.Equal(t, int64(3), rec.NumRows())
	assert.Equal(t, int64(2), rec.NumCols())
	assert.Equal(t, "id", rec.ColumnName(0))
	assert.Equal(t, arrow.PrimitiveTypes.Int64, rec.Schema().Field(0).Type)

	ids := rec.Column(0).(*array.Int64)
	assert.Equal(t, []int64{1, 2, 3}, ids.Int64Values())

	names := rec.Column(1).(*array.String)
	assert.Equal(t, "Jacob", names.Value(0))
	assert.Equal(t, "Sam", names.Value(1))
	assert.True(t, names.IsNull(2))
}

func TestDataframe_ToArrow_vertical(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	rec, err := verticalDF().ToArrow(mem)
	require.NoError(t, err)
	defer rec.Release()

	// one row per row, regardless of orientation
	assert.Equal(t, int64(2), rec.NumRows())
	assert.Equal(t, []int64{1, 2}, rec.Column(0).(*array.Int64).Int64Values())
	assert.Equal(t, "Sam", rec.Column(1).(*array.String).Value(1))
}

func TestDataframe_ToArrow_types(t *testing.T) {
	d := civil.Date{Year: 2020, Month: 1, Day: 2}
	df := FromRecords(Records{{
		DateValue(d),
		TimeValue(civil.Time{Hour: 1, Minute: 2, Second: 3}),
		DateTimeValue(civil.DateTime{Date: d, Time: civil.Time{Hour: 1}}),
		DecimalValue(decimal.New(125, -2)),
		BoolValue(true),
		Missing(),
	}}, Horizontal, []Column{
		{"d", Date}, {"t", Time}, {"dt", DateTime}, {"dec", Decimal}, {"b", Bool}, {"none", None},
	})
	rec, err := df.ToArrow(nil)
	require.NoError(t, err)
	defer rec.Release()

	assert.Equal(t, arrow.Date32FromTime(d.In(time.UTC)), rec.Column(0).(*array.Date32).Value(0))
	assert.Equal(t, arrow.Time64(3723000000), rec.Column(1).(*array.Time64).Value(0))
	assert.Equal(t, arrow.Timestamp(1577926800000000), rec.Column(2).(*array.Timestamp).Value(0))
	assert.Equal(t, "1.25", rec.Column(3).(*array.String).Value(0))
	assert.True(t, rec.Column(4).(*array.Boolean).Value(0))
	assert.Equal(t, arrow.NULL, rec.Column(5).DataType().ID())
	assert.True(t, rec.Column(5).IsNull(0))
}

func TestDataframe_ToArrow_raw(t *testing.T) {
	_, err := New(NewRecords([]interface{}{1}), Raw).ToArrow(nil)
	assert.True(t, errors.Is(err, ErrRawOrientation))
}

func TestArrowType(t *testing.T) {
	assert.Equal(t, arrow.FixedWidthTypes.Date32, ArrowType(Date))
	assert.Equal(t, arrow.BinaryTypes.String, ArrowType(Decimal))
	assert.Equal(t, arrow.PrimitiveTypes.Uint16, ArrowType(Uint16))
	assert.Equal(t, arrow.DataType(arrow.Null), ArrowType(None))
}
