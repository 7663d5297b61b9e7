package tinydf

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"go.uber.org/zap"
)

// -- CONSTRUCTORS

// New creates a Dataframe from `records`, inferring the column schema from the data.
//
// Horizontal: the first record supplies the column names and the second record (the first row of data)
// supplies the column types. Every row is truncated or padded to the number of names.
//
// Vertical: each record is one column. Its first cell is the column name, its second cell fixes the column type,
// and the remaining cells are the column values. Every column is truncated or padded to the length of the first record.
//
// Raw: records are stored unchanged, with no schema or indices.
//
// Empty `records` (or an empty first record) returns an empty Dataframe.
// New takes ownership of `records`: the cells it stores are moved out and replaced with missing values.
func New(records Records, orientation Orientation) *Dataframe {
	if IsEmptyRecords(records) {
		return &Dataframe{}
	}
	switch orientation {
	case Horizontal:
		return newHorizontal(records)
	case Vertical:
		return newVertical(records)
	default:
		return newRaw(records)
	}
}

// FromRecords creates a Dataframe from `records`, validating every cell against `columns`.
// No header is expected: in a Horizontal Dataframe every record is a row,
// and in a Vertical Dataframe every record is a column (records beyond len(columns) are ignored).
//
// Empty `records` or empty `columns` returns an empty Dataframe.
// FromRecords takes ownership of `records` (see New).
func FromRecords(records Records, orientation Orientation, columns []Column) *Dataframe {
	if IsEmptyRecords(records) || len(columns) == 0 {
		return &Dataframe{}
	}
	switch orientation {
	case Horizontal:
		return newHorizontalWithColumns(records, copyColumns(columns))
	case Vertical:
		return newVerticalWithColumns(records, copyColumns(columns))
	default:
		return newRaw(records)
	}
}

func newRaw(records Records) *Dataframe {
	return &Dataframe{data: records}
}

// each record is one row, truncated or padded to len(columns)
func newHorizontalWithColumns(records Records, columns []Column) *Dataframe {
	width := len(columns)
	data := make(Records, 0, len(records))
	for i := range records {
		p := newReferenceProcessor(columns)
		p.feed(records[i], width)
		data = append(data, p.data)
	}
	return &Dataframe{
		data:        data,
		columns:     columns,
		indices:     makeDefaultIndices(len(data)),
		orientation: Horizontal,
		size:        [2]int{len(data), width},
	}
}

// each record is one column, truncated or padded to the length of the first record.
// records beyond len(columns) are not processed, and missing records are padded with missing columns.
func newVerticalWithColumns(records Records, columns []Column) *Dataframe {
	length := len(records[0])
	data := make(Records, len(columns))
	for k := range columns {
		var record Series
		if k < len(records) {
			record = records[k]
		}
		p := newReferenceProcessor(columns)
		for i := 0; i < length; i++ {
			if i < len(record) {
				p.exec(k, &record[i])
			} else {
				p.skip(i)
			}
		}
		data[k] = p.data
	}
	return &Dataframe{
		data:        data,
		columns:     columns,
		indices:     makeDefaultIndices(length),
		orientation: Vertical,
		size:        [2]int{len(columns), length},
	}
}

func newHorizontal(records Records) *Dataframe {
	header := records[0]
	if len(records) < 2 {
		return &Dataframe{}
	}
	// names from the header, types from the first row of data
	columns := make([]Column, len(header))
	for k := range header {
		columns[k].Name = header[k].String()
		if k < len(records[1]) {
			columns[k].Type = records[1][k].DataType()
		}
	}
	return newHorizontalWithColumns(records[1:], columns)
}

func newVertical(records Records) *Dataframe {
	// the first cell of each record is the column name
	length := len(records[0])
	if length == 1 {
		return &Dataframe{}
	}
	columns := make([]Column, 0, len(records))
	data := make(Records, 0, len(records))
	for k := range records {
		p := newDynamicProcessor()
		p.feed(records[k], length)
		columns = append(columns, p.cacheColumn())
		data = append(data, p.data)
	}
	return &Dataframe{
		data:        data,
		columns:     columns,
		indices:     makeDefaultIndices(length - 1),
		orientation: Vertical,
		size:        [2]int{len(data), length - 1},
	}
}

// Copy returns a new Dataframe with identical values as the original but no shared slices.
func (df *Dataframe) Copy() *Dataframe {
	return &Dataframe{
		data:        df.data.Copy(),
		columns:     copyColumns(df.columns),
		indices:     Series(df.indices).Copy(),
		orientation: df.orientation,
		size:        df.size,
	}
}

// IsEmptyRecords reports whether `records` has no records or an empty first record.
func IsEmptyRecords(records Records) bool {
	return len(records) == 0 || len(records[0]) == 0
}

// -- GETTERS

// ILoc returns the Value at position `j` of record `i`.
// If either position is out of range, returns false.
func (df *Dataframe) ILoc(i, j int) (Value, bool) {
	if i < 0 || i >= len(df.data) {
		return Value{}, false
	}
	if j < 0 || j >= len(df.data[i]) {
		return Value{}, false
	}
	return df.data[i][j], true
}

// Loc returns the Value at the row labelled `index` and the column named `name`.
// If more than one label or column matches, the first one is used.
// If either is not found, or the Dataframe is Raw, returns false.
func (df *Dataframe) Loc(index Index, name string) (Value, bool) {
	i := df.positionOfIndex(index)
	j := df.positionOfColumn(name)
	if i == -1 || j == -1 {
		return Value{}, false
	}
	switch df.orientation {
	case Horizontal:
		return df.ILoc(i, j)
	case Vertical:
		return df.ILoc(j, i)
	}
	return Value{}, false
}

func (df *Dataframe) positionOfIndex(index Index) int {
	for k := range df.indices {
		if df.indices[k].Equal(index) {
			return k
		}
	}
	return -1
}

func (df *Dataframe) positionOfColumn(name string) int {
	for k := range df.columns {
		if df.columns[k].Name == name {
			return k
		}
	}
	return -1
}

// Data returns the records stored in the Dataframe, along its outer axis.
// The returned Records share memory with the Dataframe.
func (df *Dataframe) Data() Records {
	return df.data
}

// IsEmpty reports whether the Dataframe stores no data.
func (df *Dataframe) IsEmpty() bool {
	return IsEmptyRecords(df.data)
}

// Size returns the length of the outer axis and of the inner axis.
// Horizontal: (rows, columns). Vertical: (columns, rows).
func (df *Dataframe) Size() (int, int) {
	return df.size[0], df.size[1]
}

// Columns returns a copy of the column schema.
func (df *Dataframe) Columns() []Column {
	return copyColumns(df.columns)
}

// ColumnNames returns the name of every column, in order.
func (df *Dataframe) ColumnNames() []string {
	ret := make([]string, len(df.columns))
	for k := range df.columns {
		ret[k] = df.columns[k].Name
	}
	return ret
}

// Indices returns a copy of the labels.
func (df *Dataframe) Indices() []Index {
	return Series(df.indices).Copy()
}

// Orientation returns the orientation of the Dataframe.
func (df *Dataframe) Orientation() Orientation {
	return df.orientation
}

// -- SETTERS

// RenameColumn sets the name of the column at position `i`.
// Out-of-range positions are ignored.
func (df *Dataframe) RenameColumn(i int, name string) {
	if i < 0 || i >= len(df.columns) {
		logger.Debug("rename ignored: column out of range", zap.Int("position", i))
		return
	}
	df.columns[i].Name = name
}

// RenameColumns renames columns left-to-right.
// If `names` and the columns differ in length, the excess names or columns are left untouched.
func (df *Dataframe) RenameColumns(names []string) {
	for k := 0; k < len(names) && k < len(df.columns); k++ {
		df.columns[k].Name = names[k]
	}
}

// ReplaceIndex sets the label at position `i`.
// Out-of-range positions are ignored.
func (df *Dataframe) ReplaceIndex(i int, index Index) {
	if i < 0 || i >= len(df.indices) {
		logger.Debug("replace ignored: index out of range", zap.Int("position", i))
		return
	}
	df.indices[i] = index
}

// ReplaceIndices replaces labels left-to-right.
// If `indices` and the labels differ in length, the excess are left untouched.
func (df *Dataframe) ReplaceIndices(indices []Index) {
	for k := 0; k < len(indices) && k < len(df.indices); k++ {
		df.indices[k] = indices[k]
	}
}

// -- MUTATORS

// Transpose swaps the outer and inner axes of the data, and flips the orientation between Horizontal and Vertical.
// Columns and indices are not changed: reconciling them with the new axes is the caller's responsibility.
// A Raw Dataframe is not changed.
func (df *Dataframe) Transpose() {
	if df.orientation == Raw {
		return
	}
	m, n := df.size[0], df.size[1]
	ret := make(Records, n)
	for j := 0; j < n; j++ {
		ret[j] = make(Series, m)
		for i := 0; i < m; i++ {
			if j < len(df.data[i]) {
				ret[j][i] = take(&df.data[i][j])
			}
		}
	}
	df.data = ret
	df.size = [2]int{n, m}
	if df.orientation == Horizontal {
		df.orientation = Vertical
	} else {
		df.orientation = Horizontal
	}
}

// Append adds `record` to the end of the outer axis.
//
// Horizontal: `record` is a row validated against the columns, and a new default index is added.
//
// Vertical: `record` is a column whose first cell is its name and whose second cell fixes its type.
//
// Raw: `record` is appended unchanged.
func (df *Dataframe) Append(record Series) {
	switch df.orientation {
	case Horizontal:
		p := newReferenceProcessor(df.columns)
		p.feed(record, len(df.columns))
		df.data = append(df.data, p.data)
		df.indices = append(df.indices, ID(uint64(df.size[0])))
		df.size[0]++
		df.size[1] = len(df.columns)
	case Vertical:
		df.prepareVertical(record)
		p := newDynamicProcessor()
		p.feed(record, df.size[1]+1)
		df.columns = append(df.columns, p.cacheColumn())
		df.data = append(df.data, p.data)
		df.size[0]++
	default:
		df.data = append(df.data, record)
	}
}

// Concat appends every record in `records`, in order (see Append).
func (df *Dataframe) Concat(records Records) {
	if df.orientation == Raw {
		df.data = append(df.data, records...)
		return
	}
	for i := range records {
		df.Append(records[i])
	}
}

// Insert inserts `record` at position `i` along `axis`.
// A Horizontal axis adds an outer record: a row of a Horizontal Dataframe or a column of a Vertical one.
// A Vertical axis splices a cell into every record: a column of a Horizontal Dataframe or a row of a Vertical one.
//
// A record inserted along the outer axis is validated like Append.
// A record inserted along the inner axis is spliced cell by cell into every existing record:
// a new column (Horizontal Dataframe) is named and typed by its first two cells,
// and a new row (Vertical Dataframe) is validated against the columns.
//
// An empty `record`, a Raw `axis`, or an out-of-range position is ignored.
func (df *Dataframe) Insert(i int, record Series, axis Orientation) {
	if len(record) == 0 {
		return
	}
	switch df.orientation {
	case Horizontal:
		df.insertHorizontal(i, record, axis)
	case Vertical:
		df.insertVertical(i, record, axis)
	default:
		df.insertRaw(i, record, axis)
	}
}

func (df *Dataframe) insertHorizontal(i int, record Series, axis Orientation) {
	switch axis {
	case Horizontal:
		if !inRange(i, df.size[0]+1) {
			logInsertIgnored(i, axis)
			return
		}
		p := newReferenceProcessor(df.columns)
		p.feed(record, len(df.columns))
		df.data = insertSeries(df.data, i, p.data)
		df.insertIndex(i, axis)
		df.size[1] = len(df.columns)
	case Vertical:
		if !inRange(i, len(df.columns)+1) {
			logInsertIgnored(i, axis)
			return
		}
		p := newDynamicProcessor()
		for pos := 0; pos < df.size[0]+1; pos++ {
			p.step(record, pos)
			if pos > 0 {
				df.data[pos-1] = insertValue(df.data[pos-1], i, p.pop())
			}
		}
		df.columns = insertColumn(df.columns, i, p.cacheColumn())
		df.size[1] = len(df.columns)
	}
}

func (df *Dataframe) insertVertical(i int, record Series, axis Orientation) {
	switch axis {
	case Horizontal:
		if !inRange(i, df.size[0]+1) {
			logInsertIgnored(i, axis)
			return
		}
		df.prepareVertical(record)
		p := newDynamicProcessor()
		p.feed(record, df.size[1]+1)
		df.columns = insertColumn(df.columns, i, p.cacheColumn())
		df.data = insertSeries(df.data, i, p.data)
		df.size[0]++
	case Vertical:
		if !inRange(i, df.size[1]+1) {
			logInsertIgnored(i, axis)
			return
		}
		p := newReferenceProcessor(df.columns)
		for pos := 0; pos < df.size[0]; pos++ {
			p.step(record, pos)
			df.data[pos] = insertValue(df.data[pos], i, p.pop())
		}
		df.insertIndex(i, axis)
	}
}

// prepareVertical readies a Vertical Dataframe without records to receive `record` as its first column.
// Columns kept by Truncate no longer describe any record and are dropped.
// If there are no rows either, the values in `record` fix the number of rows.
func (df *Dataframe) prepareVertical(record Series) {
	if df.size[0] > 0 {
		return
	}
	df.columns = []Column{}
	if df.size[1] == 0 && len(record) > 1 {
		df.size[1] = len(record) - 1
		df.indices = makeDefaultIndices(df.size[1])
	}
}

func (df *Dataframe) insertRaw(i int, record Series, axis Orientation) {
	switch axis {
	case Horizontal:
		if !inRange(i, len(df.data)+1) {
			logInsertIgnored(i, axis)
			return
		}
		df.data = insertSeries(df.data, i, record)
	case Vertical:
		for k := 0; k < len(df.data) && k < len(record); k++ {
			if !inRange(i, len(df.data[k])+1) {
				logInsertIgnored(i, axis)
				continue
			}
			df.data[k] = insertValue(df.data[k], i, record[k])
		}
	}
}

// adds a default index at position i and grows the labelled dimension
func (df *Dataframe) insertIndex(i int, axis Orientation) {
	switch axis {
	case Horizontal:
		df.indices = insertValue(df.indices, i, ID(uint64(df.size[0])))
		df.size[0]++
	case Vertical:
		df.indices = insertValue(df.indices, i, ID(uint64(df.size[1])))
		df.size[1]++
	}
}

// InsertMany inserts each record at position `i` + its offset in `records` (see Insert).
// Along the inner axis the per-record offset applies to the inner position,
// so records land in consecutive positions in input order.
func (df *Dataframe) InsertMany(i int, records Records, axis Orientation) {
	for k := range records {
		df.Insert(i+k, records[k], axis)
	}
}

// Truncate removes all data and indices. The columns and orientation are kept.
// A Horizontal Dataframe refilled by Append or Insert validates against the kept columns.
// A Vertical Dataframe drops them when its first column is appended or inserted.
func (df *Dataframe) Truncate() {
	df.data = Records{}
	df.indices = []Index{}
	df.size = [2]int{0, 0}
}

// Delete removes position `i` along `axis`.
// A Horizontal axis removes an outer record: a row of a Horizontal Dataframe or a column of a Vertical one.
// A Vertical axis removes a cell from every record: a column of a Horizontal Dataframe or a row of a Vertical one.
//
// Positions greater than the size of the axis are ignored.
// A position equal to the size passes that check but has nothing to remove, so it is also a no-op.
func (df *Dataframe) Delete(i int, axis Orientation) {
	if i < 0 {
		return
	}
	switch df.orientation {
	case Horizontal:
		df.deleteHorizontal(i, axis)
	case Vertical:
		df.deleteVertical(i, axis)
	default:
		df.deleteRaw(i, axis)
	}
}

func (df *Dataframe) deleteHorizontal(i int, axis Orientation) {
	switch axis {
	case Horizontal:
		if i > df.size[0] {
			return
		}
		if !df.removeOuter(i) {
			return
		}
		df.indices = removeValue(df.indices, i)
		df.size[0]--
	case Vertical:
		if i > len(df.columns) {
			return
		}
		if !df.removeInner(i, len(df.columns)) {
			return
		}
		df.columns = removeColumn(df.columns, i)
		df.size[1] = len(df.columns)
	}
}

func (df *Dataframe) deleteVertical(i int, axis Orientation) {
	switch axis {
	case Horizontal:
		if i > df.size[0] {
			return
		}
		if !df.removeOuter(i) {
			return
		}
		df.columns = removeColumn(df.columns, i)
		df.size[0]--
	case Vertical:
		if i > df.size[1] {
			return
		}
		if !df.removeInner(i, df.size[1]) {
			return
		}
		df.indices = removeValue(df.indices, i)
		df.size[1]--
	}
}

func (df *Dataframe) deleteRaw(i int, axis Orientation) {
	switch axis {
	case Horizontal:
		df.removeOuter(i)
	case Vertical:
		for k := range df.data {
			if i < len(df.data[k]) {
				df.data[k] = removeValue(df.data[k], i)
			}
		}
	}
}

// removes record i. returns false if there is no record at i.
func (df *Dataframe) removeOuter(i int) bool {
	if i >= len(df.data) {
		logger.Debug("delete position has no record", zap.Int("position", i))
		return false
	}
	df.data = removeSeries(df.data, i)
	return true
}

// removes position i from every record of length `width`. returns false if there is no position i.
func (df *Dataframe) removeInner(i, width int) bool {
	if i >= width {
		logger.Debug("delete position has no cell", zap.Int("position", i))
		return false
	}
	for k := range df.data {
		df.data[k] = removeValue(df.data[k], i)
	}
	return true
}

// DeleteMany removes the records at each position in `positions` along `axis` (see Delete).
// Positions refer to the Dataframe before any deletion: they are deleted from highest to lowest.
func (df *Dataframe) DeleteMany(positions []int, axis Orientation) {
	sorted := make([]int, len(positions))
	copy(sorted, positions)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	for _, i := range sorted {
		df.Delete(i, axis)
	}
}

// -- CONVERTERS

// ToRecords converts the Dataframe back into the raw nested-record form read by New.
// Horizontal: a header record of column names is prepended.
// Vertical: each column name is prepended to its record.
// Raw: the records are returned as-is.
// The returned Records do not share memory with the Dataframe.
func (df *Dataframe) ToRecords() Records {
	switch df.orientation {
	case Horizontal:
		ret := make(Records, 0, len(df.data)+1)
		header := make(Series, len(df.columns))
		for k := range df.columns {
			header[k] = StringValue(df.columns[k].Name)
		}
		ret = append(ret, header)
		return append(ret, df.data.Copy()...)
	case Vertical:
		ret := make(Records, 0, len(df.data))
		for k := 0; k < len(df.data) && k < len(df.columns); k++ {
			record := make(Series, 0, len(df.data[k])+1)
			record = append(record, StringValue(df.columns[k].Name))
			ret = append(ret, append(record, df.data[k]...))
		}
		return ret
	default:
		return df.data.Copy()
	}
}

// CSVRecords converts the Dataframe to [][]string in raw nested-record form (see ToRecords).
// Missing values are replaced with the null string.
func (df *Dataframe) CSVRecords() [][]string {
	records := df.ToRecords()
	ret := make([][]string, len(records))
	for i := range records {
		ret[i] = records[i].Strings()
	}
	return ret
}

// String prints the Dataframe as a table, with rows as the major dimension regardless of orientation.
// Horizontal and Vertical tables have a header of column names and a leading column of indices.
// The number of rows is constrained by optionMaxRows (configure with SetOptionMaxRows).
func (df *Dataframe) String() string {
	header, rows := df.table()
	if len(rows) > optionMaxRows && optionMaxRows > 0 {
		n := optionMaxRows / 2
		width := 0
		if len(rows) > 0 {
			width = len(rows[0])
		}
		filler := make([]string, width)
		for k := range filler {
			filler[k] = "..."
		}
		bottom := rows[len(rows)-n:]
		rows = append(append(rows[:n:n], filler), bottom...)
	}
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	if header != nil {
		table.SetHeader(header)
	}
	table.AppendBulk(rows)
	table.Render()
	ret := buf.String()
	if len(rows) == 0 {
		ret += fmt.Sprintf("empty (%s)\n", strings.ToLower(df.orientation.String()))
	}
	return ret
}

// table returns the printed header and rows, transposing Vertical data so that rows are the major dimension.
func (df *Dataframe) table() ([]string, [][]string) {
	switch df.orientation {
	case Horizontal:
		header := append([]string{""}, df.ColumnNames()...)
		rows := make([][]string, len(df.data))
		for i := range df.data {
			rows[i] = append([]string{labelString(df.indices, i)}, df.data[i].Strings()...)
		}
		return header, rows
	case Vertical:
		header := append([]string{""}, df.ColumnNames()...)
		rows := make([][]string, df.size[1])
		for i := range rows {
			rows[i] = make([]string, 0, len(df.data)+1)
			rows[i] = append(rows[i], labelString(df.indices, i))
			for k := range df.data {
				cell := optionNullString
				if i < len(df.data[k]) && !df.data[k][i].IsMissing() {
					cell = df.data[k][i].String()
				}
				rows[i] = append(rows[i], cell)
			}
		}
		return header, rows
	default:
		// raw records may be ragged, so pad them to the widest record
		var width int
		for i := range df.data {
			if len(df.data[i]) > width {
				width = len(df.data[i])
			}
		}
		rows := make([][]string, len(df.data))
		for i := range df.data {
			rows[i] = make([]string, width)
			copy(rows[i], df.data[i].Strings())
		}
		return nil, rows
	}
}

func labelString(indices []Index, i int) string {
	if i >= len(indices) {
		return ""
	}
	return indices[i].String()
}

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		return "Raw"
	}
}

// ParseOrientation converts `s` to an Orientation (case-insensitive).
// "h" and "horizontal" are Horizontal, "v" and "vertical" are Vertical, and anything else is Raw.
func ParseOrientation(s string) Orientation {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "h", "horizontal":
		return Horizontal
	case "v", "vertical":
		return Vertical
	default:
		return Raw
	}
}

// -- ITERATORS

// Iterator returns an iterator over copies of the records in the Dataframe, in storage order.
// Changing the copies does not change the Dataframe.
func (df *Dataframe) Iterator() *DataframeIterator {
	return &DataframeIterator{
		current: -1,
		data:    df.data,
	}
}

// Next advances to the next record. Returns false at the end of iteration.
func (iter *DataframeIterator) Next() bool {
	iter.current++
	return iter.current < len(iter.data)
}

// Series returns a copy of the current record.
func (iter *DataframeIterator) Series() Series {
	return iter.data[iter.current].Copy()
}

// MutIterator returns an iterator over the records in the Dataframe, in storage order,
// whose records may be changed in place.
func (df *Dataframe) MutIterator() *DataframeMutIterator {
	return &DataframeMutIterator{
		current: -1,
		df:      df,
	}
}

// Next advances to the next record. Returns false at the end of iteration.
func (iter *DataframeMutIterator) Next() bool {
	iter.current++
	return iter.current < len(iter.df.data)
}

// Series returns the current record. Changes made through the pointer are stored in the Dataframe.
// Changing the length or cell types of the record can break the Dataframe's schema.
func (iter *DataframeMutIterator) Series() *Series {
	return &iter.df.data[iter.current]
}

// Drain detaches the records from the Dataframe and returns an iterator over them.
// The Dataframe is truncated (see Truncate).
func (df *Dataframe) Drain() *DataframeIterator {
	data := df.data
	df.Truncate()
	return &DataframeIterator{
		current: -1,
		data:    data,
	}
}
