package tinydf

import "go.uber.org/zap"

// makeDefaultIndices returns a sequential series of label ids (inclusive of 0, exclusive of n).
func makeDefaultIndices(n int) []Index {
	ret := make([]Index, n)
	for i := range ret {
		ret[i] = ID(uint64(i))
	}
	return ret
}

func copyColumns(columns []Column) []Column {
	if columns == nil {
		return nil
	}
	ret := make([]Column, len(columns))
	copy(ret, columns)
	return ret
}

// inRange reports whether 0 <= i < n.
func inRange(i, n int) bool {
	return i >= 0 && i < n
}

func logInsertIgnored(i int, axis Orientation) {
	logger.Debug("insert ignored: position out of range",
		zap.Int("position", i),
		zap.Stringer("axis", axis))
}

// insertValue inserts `v` at position i and shifts later values right. Expects 0 <= i <= len(s).
func insertValue(s Series, i int, v Value) Series {
	s = append(s, Value{})
	copy(s[i+1:], s[i:])
	s[i] = v
	return s
}

// removeValue removes the value at position i and shifts later values left. Expects 0 <= i < len(s).
func removeValue(s Series, i int) Series {
	copy(s[i:], s[i+1:])
	s[len(s)-1] = Value{}
	return s[:len(s)-1]
}

func insertSeries(r Records, i int, s Series) Records {
	r = append(r, nil)
	copy(r[i+1:], r[i:])
	r[i] = s
	return r
}

func removeSeries(r Records, i int) Records {
	copy(r[i:], r[i+1:])
	r[len(r)-1] = nil
	return r[:len(r)-1]
}

func insertColumn(columns []Column, i int, c Column) []Column {
	if i > len(columns) {
		i = len(columns)
	}
	columns = append(columns, Column{})
	copy(columns[i+1:], columns[i:])
	columns[i] = c
	return columns
}

func removeColumn(columns []Column, i int) []Column {
	if i >= len(columns) {
		return columns
	}
	copy(columns[i:], columns[i+1:])
	return columns[:len(columns)-1]
}
