package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestShow(t *testing.T) {
	path := writeFile(t, "people.csv", "id,name\n1,Jacob\n2,Sam\n")
	got, err := execute(t, "show", path)
	require.NoError(t, err)
	want := "+---+----+-------+\n" +
		"|   | id | name  |\n" +
		"+---+----+-------+\n" +
		"| 0 |  1 | Jacob |\n" +
		"| 1 |  2 |   Sam |\n" +
		"+---+----+-------+\n"
	assert.Equal(t, want, got)
}

func TestJSON(t *testing.T) {
	path := writeFile(t, "people.csv", "id;1;2\nname;Jacob;Sam\n")
	got, err := execute(t, "json", "--orientation", "vertical", "--delimiter", ";", "--projection", "objects", path)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":1,"name":"Jacob"},{"id":2,"name":"Sam"}]`+"\n", got)
}

func TestSchema(t *testing.T) {
	path := writeFile(t, "people.csv", "id,name\n1,Jacob\n")
	got, err := execute(t, "schema", path)
	require.NoError(t, err)
	assert.Equal(t, "- name: id\n  type: Int64\n- name: name\n  type: String\n", got)
}

func TestSchemaFlag(t *testing.T) {
	schema := writeFile(t, "schema.yaml", "- name: id\n  type: Int64\n- name: name\n  type: String\n")
	path := writeFile(t, "people.csv", "1,Jacob\nfoo,Sam\n")
	got, err := execute(t, "json", "--schema", schema, path)
	require.NoError(t, err)
	assert.Equal(t, `[["id","name"],[1,"Jacob"],[null,"Sam"]]`+"\n", got)
}

func TestInvalidFlags(t *testing.T) {
	path := writeFile(t, "people.csv", "id,name\n1,Jacob\n")
	tests := []struct {
		name string
		args []string
	}{
		{"orientation", []string{"show", "--orientation", "diagonal", path}},
		{"delimiter", []string{"show", "--delimiter", ";;", path}},
		{"projection", []string{"json", "--projection", "table", path}},
		{"log level", []string{"show", "--log-level", "loud", path}},
		{"missing file", []string{"show", filepath.Join(t.TempDir(), "missing.csv")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			assert.Error(t, err)
		})
	}
}
