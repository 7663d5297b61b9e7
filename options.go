package tinydf

import "go.uber.org/zap"

var optionMaxRows = 50
var optionNullString = "(null)"
var logger = zap.NewNop()

// SetOptionMaxRows changes the maximum number of records printed by String() (default: 50).
// If a Dataframe has more records, the middle ones are replaced with a filler row.
func SetOptionMaxRows(n int) {
	optionMaxRows = n
}

// SetOptionNullString changes the string used for missing values when printing or writing csv (default: "(null)").
// The same string is read back as a missing value by ParseValue.
func SetOptionNullString(s string) {
	optionNullString = s
}

// SetOptionLogger replaces the package logger (default: a no-op logger).
// Rejected cells, ignored out-of-range mutations and similar recoveries are logged at debug level.
// Passing nil restores the no-op logger.
func SetOptionLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}
