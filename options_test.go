package tinydf

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetOptionMaxRows(t *testing.T) {
	type args struct {
		n int
	}
	tests := []struct {
		name string
		args args
	}{
		{"pass", args{5}},
	}
	for _, tt := range tests {
		archive := optionMaxRows
		t.Run(tt.name, func(t *testing.T) {
			SetOptionMaxRows(tt.args.n)
		})
		if got := optionMaxRows; got != tt.args.n {
			t.Errorf("SetOptionMaxRows() -> %v, want %v", got, tt.args.n)
		}
		optionMaxRows = archive
	}
}

func TestSetOptionNullString(t *testing.T) {
	archive := optionNullString
	defer SetOptionNullString(archive)

	SetOptionNullString("NA")
	if got := optionNullString; got != "NA" {
		t.Errorf("SetOptionNullString() -> %v, want NA", got)
	}
	if !ParseValue("NA").IsMissing() {
		t.Errorf("ParseValue(NA) should be missing after SetOptionNullString(NA)")
	}
	if got := (Series{Missing()}).Strings()[0]; got != "NA" {
		t.Errorf("Series.Strings() = %v, want NA", got)
	}
}

func TestSetOptionLogger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	SetOptionLogger(zap.New(core))
	defer SetOptionLogger(nil)

	df := horizontalDF()
	df.Append(NewSeries(3, 42))
	df.Delete(3, Horizontal)
	if got := logs.FilterMessage("cell rejected by schema").Len(); got != 1 {
		t.Errorf("SetOptionLogger() logged %d rejections, want 1", got)
	}
	if got := logs.FilterMessage("delete position has no record").Len(); got != 1 {
		t.Errorf("SetOptionLogger() logged %d ignored deletes, want 1", got)
	}

	SetOptionLogger(nil)
	if logger == nil {
		t.Errorf("SetOptionLogger(nil) -> nil logger, want no-op logger")
	}
}
