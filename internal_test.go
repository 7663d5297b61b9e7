package tinydf

import (
	"reflect"
	"testing"
)

func Test_makeDefaultIndices(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want []Index
	}{
		{"pass", 3, []Index{ID(0), ID(1), ID(2)}},
		{"empty", 0, []Index{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := makeDefaultIndices(tt.n); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("makeDefaultIndices() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_insertValue(t *testing.T) {
	type args struct {
		s Series
		i int
		v Value
	}
	tests := []struct {
		name string
		args args
		want Series
	}{
		{"start", args{Series{Int64Value(1)}, 0, Int64Value(0)}, Series{Int64Value(0), Int64Value(1)}},
		{"end", args{Series{Int64Value(1)}, 1, Int64Value(2)}, Series{Int64Value(1), Int64Value(2)}},
		{"empty", args{Series{}, 0, Int64Value(0)}, Series{Int64Value(0)}},
		{"nil", args{nil, 0, Int64Value(0)}, Series{Int64Value(0)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := insertValue(tt.args.s, tt.args.i, tt.args.v); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("insertValue() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_removeValue(t *testing.T) {
	got := removeValue(Series{Int64Value(0), Int64Value(1), Int64Value(2)}, 1)
	want := Series{Int64Value(0), Int64Value(2)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("removeValue() = %v, want %v", got, want)
	}
}

func Test_insertSeries(t *testing.T) {
	got := insertSeries(Records{{Int64Value(0)}}, 0, Series{Int64Value(1)})
	want := Records{{Int64Value(1)}, {Int64Value(0)}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("insertSeries() = %v, want %v", got, want)
	}
	got = removeSeries(got, 1)
	want = Records{{Int64Value(1)}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("removeSeries() = %v, want %v", got, want)
	}
}

func Test_insertColumn(t *testing.T) {
	columns := []Column{{"a", Int64}}
	got := insertColumn(columns, 5, Column{"b", String})
	want := []Column{{"a", Int64}, {"b", String}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("insertColumn() = %v, want %v", got, want)
	}
	got = removeColumn(got, 0)
	want = []Column{{"b", String}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("removeColumn() = %v, want %v", got, want)
	}
	if got := removeColumn(want, 3); !reflect.DeepEqual(got, want) {
		t.Errorf("removeColumn() out of range = %v, want %v", got, want)
	}
}

func Test_inRange(t *testing.T) {
	tests := []struct {
		i, n int
		want bool
	}{
		{0, 1, true},
		{1, 1, false},
		{-1, 1, false},
	}
	for _, tt := range tests {
		if got := inRange(tt.i, tt.n); got != tt.want {
			t.Errorf("inRange(%d, %d) = %v, want %v", tt.i, tt.n, got, tt.want)
		}
	}
}
