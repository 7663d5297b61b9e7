package tinydf

import "go.uber.org/zap"

// rowProcessor validates one record, cell by cell, into a Series.
//
// In dynamic mode the first cell names a new column, the second cell fixes its type,
// and every later cell must match that type.
// In reference mode the cell at position i must match columns[i].
// Matching cells are emitted unchanged, mismatching cells are emitted as missing.
type rowProcessor struct {
	data      Series
	columns   []Column
	dynamic   bool
	cacheName string
	cacheCol  *Column
}

func newDynamicProcessor() *rowProcessor {
	return &rowProcessor{dynamic: true}
}

func newReferenceProcessor(columns []Column) *rowProcessor {
	return &rowProcessor{columns: columns}
}

// exec takes the cell out of `cell` (leaving it missing) and emits it if its type matches,
// otherwise emits missing.
func (p *rowProcessor) exec(pos int, cell *Value) {
	v := take(cell)
	var want DataType
	if p.dynamic {
		switch pos {
		case 0:
			p.cacheName = v.String()
			return
		case 1:
			p.cacheCol = &Column{Name: p.cacheName, Type: v.DataType()}
		}
		if p.cacheCol != nil {
			want = p.cacheCol.Type
		}
	} else if pos < len(p.columns) {
		want = p.columns[pos].Type
	}
	if v.DataType() != want {
		if !v.IsMissing() {
			logger.Debug("cell rejected by schema",
				zap.Int("position", pos),
				zap.Stringer("want", want),
				zap.Stringer("got", v.DataType()))
		}
		v = Value{}
	}
	p.data = append(p.data, v)
}

// skip pads the output with missing when the record is shorter than the schema.
// In dynamic mode the name position is never emitted.
func (p *rowProcessor) skip(pos int) {
	if p.dynamic && pos == 0 {
		return
	}
	p.data = append(p.data, Value{})
}

// feed runs positions [0, n) of `record` through the processor.
func (p *rowProcessor) feed(record Series, n int) {
	for i := 0; i < n; i++ {
		p.step(record, i)
	}
}

// step processes a single position of `record`.
func (p *rowProcessor) step(record Series, pos int) {
	if pos < len(record) {
		p.exec(pos, &record[pos])
		return
	}
	p.skip(pos)
}

// pop removes and returns the most recently emitted Value.
func (p *rowProcessor) pop() Value {
	last := len(p.data) - 1
	ret := p.data[last]
	p.data = p.data[:last]
	return ret
}

// cacheColumn returns the column discovered in dynamic mode, or the zero Column if fewer than two cells were seen.
func (p *rowProcessor) cacheColumn() Column {
	if p.cacheCol == nil {
		return Column{}
	}
	return *p.cacheCol
}
