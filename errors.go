package tinydf

import "errors"

var (
	// ErrEmptyRecords is returned when a reader has no records to read.
	ErrEmptyRecords = errors.New("records must contain at least one non-empty record")
	// ErrRawOrientation is returned by projections that need a schema, which a Raw Dataframe does not have.
	ErrRawOrientation = errors.New("operation not supported for Raw orientation")
	// ErrUnknownDataType is returned when a type name cannot be parsed.
	ErrUnknownDataType = errors.New("unknown data type")
)
