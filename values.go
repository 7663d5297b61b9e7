package tinydf

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/araddon/dateparse"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var dataTypeNames = [...]string{
	None:     "None",
	Bool:     "Bool",
	Int8:     "Int8",
	Int16:    "Int16",
	Int32:    "Int32",
	Int64:    "Int64",
	Uint8:    "Uint8",
	Uint16:   "Uint16",
	Uint32:   "Uint32",
	Uint64:   "Uint64",
	Float32:  "Float32",
	Float64:  "Float64",
	String:   "String",
	Date:     "Date",
	Time:     "Time",
	DateTime: "DateTime",
	Decimal:  "Decimal",
}

// aliases accepted by ParseDataType in addition to the canonical names
var dataTypeAliases = map[string]DataType{
	"missing":   None,
	"null":      None,
	"boolean":   Bool,
	"short":     Int8,
	"int":       Int64,
	"long":      Int64,
	"ushort":    Uint8,
	"uint":      Uint64,
	"ulong":     Uint64,
	"float":     Float32,
	"double":    Float64,
	"str":       String,
	"text":      String,
	"timestamp": DateTime,
}

func (dt DataType) String() string {
	if dt < 0 || int(dt) >= len(dataTypeNames) {
		return fmt.Sprintf("DataType(%d)", int(dt))
	}
	return dataTypeNames[dt]
}

// ParseDataType returns the DataType named by `s` (case-insensitive).
// Returns ErrUnknownDataType if `s` names no DataType.
func ParseDataType(s string) (DataType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k := range dataTypeNames {
		if strings.ToLower(dataTypeNames[k]) == name {
			return DataType(k), nil
		}
	}
	if dt, ok := dataTypeAliases[name]; ok {
		return dt, nil
	}
	return None, fmt.Errorf("ParseDataType(): %q: %w", s, ErrUnknownDataType)
}

// MarshalText satisfies the encoding.TextMarshaler interface.
func (dt DataType) MarshalText() ([]byte, error) {
	return []byte(dt.String()), nil
}

// UnmarshalText satisfies the encoding.TextUnmarshaler interface.
func (dt *DataType) UnmarshalText(b []byte) error {
	parsed, err := ParseDataType(string(b))
	if err != nil {
		return err
	}
	*dt = parsed
	return nil
}

// -- CONSTRUCTORS

// Missing returns the missing tag. It is identical to the zero Value.
func Missing() Value { return Value{} }

// ID returns a label id. Label ids are produced by the Dataframe for default indices.
func ID(n uint64) Value { return Value{dtype: Uint64, id: true, val: n} }

// BoolValue returns a Bool Value.
func BoolValue(v bool) Value { return Value{dtype: Bool, val: v} }

// Int8Value returns an Int8 Value.
func Int8Value(v int8) Value { return Value{dtype: Int8, val: v} }

// Int16Value returns an Int16 Value.
func Int16Value(v int16) Value { return Value{dtype: Int16, val: v} }

// Int32Value returns an Int32 Value.
func Int32Value(v int32) Value { return Value{dtype: Int32, val: v} }

// Int64Value returns an Int64 Value.
func Int64Value(v int64) Value { return Value{dtype: Int64, val: v} }

// Uint8Value returns a Uint8 Value.
func Uint8Value(v uint8) Value { return Value{dtype: Uint8, val: v} }

// Uint16Value returns a Uint16 Value.
func Uint16Value(v uint16) Value { return Value{dtype: Uint16, val: v} }

// Uint32Value returns a Uint32 Value.
func Uint32Value(v uint32) Value { return Value{dtype: Uint32, val: v} }

// Uint64Value returns a Uint64 Value.
func Uint64Value(v uint64) Value { return Value{dtype: Uint64, val: v} }

// Float32Value returns a Float32 Value.
func Float32Value(v float32) Value { return Value{dtype: Float32, val: v} }

// Float64Value returns a Float64 Value.
func Float64Value(v float64) Value { return Value{dtype: Float64, val: v} }

// StringValue returns a String Value.
func StringValue(v string) Value { return Value{dtype: String, val: v} }

// DateValue returns a Date Value.
func DateValue(v civil.Date) Value { return Value{dtype: Date, val: v} }

// TimeValue returns a Time Value.
func TimeValue(v civil.Time) Value { return Value{dtype: Time, val: v} }

// DateTimeValue returns a DateTime Value.
func DateTimeValue(v civil.DateTime) Value { return Value{dtype: DateTime, val: v} }

// DecimalValue returns a Decimal Value.
func DecimalValue(v decimal.Decimal) Value { return Value{dtype: Decimal, val: v} }

// NewValue converts a Go literal into a Value.
// int and uint are stored as Int64 and Uint64, and time.Time is stored as a DateTime in its own location.
// nil and unsupported types become the missing tag.
func NewValue(v interface{}) Value {
	switch v := v.(type) {
	case nil:
		return Value{}
	case Value:
		return v
	case bool:
		return BoolValue(v)
	case int:
		return Int64Value(int64(v))
	case int8:
		return Int8Value(v)
	case int16:
		return Int16Value(v)
	case int32:
		return Int32Value(v)
	case int64:
		return Int64Value(v)
	case uint:
		return Uint64Value(uint64(v))
	case uint8:
		return Uint8Value(v)
	case uint16:
		return Uint16Value(v)
	case uint32:
		return Uint32Value(v)
	case uint64:
		return Uint64Value(v)
	case float32:
		return Float32Value(v)
	case float64:
		return Float64Value(v)
	case string:
		return StringValue(v)
	case civil.Date:
		return DateValue(v)
	case civil.Time:
		return TimeValue(v)
	case civil.DateTime:
		return DateTimeValue(v)
	case time.Time:
		return DateTimeValue(civil.DateTimeOf(v))
	case decimal.Decimal:
		return DecimalValue(v)
	}
	logger.Debug("unsupported literal replaced with missing value",
		zap.String("type", fmt.Sprintf("%T", v)))
	return Value{}
}

// NewSeries converts Go literals into a Series (see NewValue).
func NewSeries(vals ...interface{}) Series {
	ret := make(Series, len(vals))
	for k := range vals {
		ret[k] = NewValue(vals[k])
	}
	return ret
}

// NewRecords converts nested Go literals into Records (see NewValue).
//
// For example, NewRecords([]interface{}{"id", "name"}, []interface{}{1, "Jacob"})
// returns a header record and one data record.
func NewRecords(rows ...[]interface{}) Records {
	ret := make(Records, len(rows))
	for i := range rows {
		ret[i] = NewSeries(rows[i]...)
	}
	return ret
}

// ParseValue converts a string cell into a typed Value.
// Resolves in the following order: empty string -> missing, integer -> Int64, float -> Float64,
// bool ("true" or "false" in any case) -> Bool, date or datetime -> Date (if the time is midnight) or DateTime, otherwise String.
func ParseValue(s string) Value {
	return parseValue(s, false)
}

// if asDecimal, non-integer numbers are parsed as Decimal instead of Float64
func parseValue(s string, asDecimal bool) Value {
	if isNullString(s) {
		return Value{}
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Int64Value(i)
	}
	// NaN and infinity spellings are words, not numbers
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		if asDecimal {
			if d, err := decimal.NewFromString(s); err == nil {
				return DecimalValue(d)
			}
		}
		return Float64Value(f)
	}
	// single letters such as "t" and "f" stay strings
	if b, err := strconv.ParseBool(s); err == nil && len(s) > 1 {
		return BoolValue(b)
	}
	if t, err := dateparse.ParseAny(s); err == nil {
		if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
			return DateValue(civil.DateOf(t))
		}
		return DateTimeValue(civil.DateTimeOf(t))
	}
	return StringValue(s)
}

func isNullString(s string) bool {
	switch strings.TrimSpace(s) {
	case "", optionNullString:
		return true
	}
	return false
}

// -- GETTERS

// DataType classifies the Value. The missing tag is None and label ids are Uint64.
func (v Value) DataType() DataType {
	return v.dtype
}

// IsMissing reports whether v is the missing tag.
func (v Value) IsMissing() bool {
	return v.dtype == None
}

// IsID reports whether v is a label id.
func (v Value) IsID() bool {
	return v.id
}

// Interface returns the underlying Go value, or nil if v is missing.
func (v Value) Interface() interface{} {
	return v.val
}

// String returns the stringified underlying value. The missing tag is an empty string.
func (v Value) String() string {
	switch val := v.val.(type) {
	case nil:
		return ""
	case string:
		return val
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}

// Equal reports whether v and other have the same tag, kind and underlying value.
func (v Value) Equal(other Value) bool {
	if v.dtype != other.dtype || v.id != other.id {
		return false
	}
	if v.dtype == Decimal {
		return v.val.(decimal.Decimal).Equal(other.val.(decimal.Decimal))
	}
	return v.val == other.val
}

// take moves the Value out of its slot and leaves the missing tag in its place.
func take(slot *Value) Value {
	var tmp Value
	tmp, *slot = *slot, tmp
	return tmp
}

// Copy returns a new Series with the same Values.
func (s Series) Copy() Series {
	if s == nil {
		return nil
	}
	ret := make(Series, len(s))
	copy(ret, s)
	return ret
}

// Strings returns the stringified Values of s, with missing values replaced by the null string.
func (s Series) Strings() []string {
	ret := make([]string, len(s))
	for k := range s {
		if s[k].IsMissing() {
			ret[k] = optionNullString
			continue
		}
		ret[k] = s[k].String()
	}
	return ret
}

// Copy returns a deep copy of the Records.
func (r Records) Copy() Records {
	if r == nil {
		return nil
	}
	ret := make(Records, len(r))
	for i := range r {
		ret[i] = r[i].Copy()
	}
	return ret
}

// NewColumn returns a Column.
func NewColumn(name string, dtype DataType) Column {
	return Column{Name: name, Type: dtype}
}

func (c Column) String() string {
	return fmt.Sprintf("%s (%v)", c.Name, c.Type)
}
