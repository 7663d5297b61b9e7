package tinydf

import (
	"reflect"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/d4l3k/messagediff"
)

type person struct {
	ID      int    `tinydf:"id"`
	Name    string `tinydf:"name"`
	Age     *int
	Joined  time.Time
	Ignored bool `tinydf:"-"`
	secret  string
}

func TestReadStructs(t *testing.T) {
	age := 30
	joined := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	columns := []Column{{"id", Int64}, {"name", String}, {"Age", Int64}, {"Joined", DateTime}}
	tests := []struct {
		name    string
		slice   interface{}
		want    *Dataframe
		wantErr bool
	}{
		{"structs", []person{{1, "Jacob", &age, joined, true, "x"}, {2, "Sam", nil, joined, false, ""}},
			&Dataframe{
				data: Records{
					{Int64Value(1), StringValue("Jacob"), Int64Value(30), DateTimeValue(civil.DateTimeOf(joined))},
					{Int64Value(2), StringValue("Sam"), Missing(), DateTimeValue(civil.DateTimeOf(joined))}},
				columns:     columns,
				indices:     []Index{ID(0), ID(1)},
				orientation: Horizontal,
				size:        [2]int{2, 4},
			}, false},
		{"pointers", []*person{{ID: 1, Name: "Jacob", Joined: joined}, nil},
			&Dataframe{
				data: Records{
					{Int64Value(1), StringValue("Jacob"), Missing(), DateTimeValue(civil.DateTimeOf(joined))},
					{Missing(), Missing(), Missing(), Missing()}},
				columns:     columns,
				indices:     []Index{ID(0), ID(1)},
				orientation: Horizontal,
				size:        [2]int{2, 4},
			}, false},
		{"empty", []person{},
			&Dataframe{
				data:        Records{},
				columns:     columns,
				indices:     []Index{},
				orientation: Horizontal,
			}, false},
		{"not a slice", person{}, nil, true},
		{"not structs", []int{1}, nil, true},
		{"no exported fields", []struct{ a int }{{1}}, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadStructs(tt.slice)
			if (err != nil) != tt.wantErr {
				t.Errorf("ReadStructs() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ReadStructs() = %v, want %v", got, tt.want)
				t.Errorf(messagediff.PrettyDiff(got, tt.want))
			}
		})
	}
}
