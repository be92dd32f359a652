package export_test

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/ganot/labdesk/internal/export"
	"github.com/stretchr/testify/require"
)

func TestMarshalQuoting(t *testing.T) {
	columns := []export.Column{
		{Key: "name", Header: "Name"},
		{Key: "note", Header: "Note"},
	}
	rows := []export.Row{
		{"name": "A, B", "note": `He said "hi"`},
	}

	data, err := export.Marshal(columns, rows)
	require.NoError(t, err)
	require.Equal(t, "Name,Note\n\"A, B\",\"He said \"\"hi\"\"\"\n", string(data))
}

func TestMarshalPlainFieldsUnquoted(t *testing.T) {
	columns := []export.Column{
		{Key: "a", Header: "A"},
		{Key: "b", Header: "B"},
	}
	rows := []export.Row{{"a": "plain", "b": "text"}}

	data, err := export.Marshal(columns, rows)
	require.NoError(t, err)
	require.Equal(t, "A,B\nplain,text\n", string(data))
}

func TestMarshalNewlineInField(t *testing.T) {
	columns := []export.Column{{Key: "note", Header: "Note"}}
	rows := []export.Row{{"note": "line one\nline two"}}

	data, err := export.Marshal(columns, rows)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, "line one\nline two", records[1][0])
}

func TestMarshalNoRows(t *testing.T) {
	columns := []export.Column{{Key: "a", Header: "A"}}

	_, err := export.Marshal(columns, nil)
	require.ErrorIs(t, err, export.ErrNoRows)

	_, err = export.Marshal(columns, []export.Row{})
	require.ErrorIs(t, err, export.ErrNoRows)
}

func TestMarshalCellKinds(t *testing.T) {
	stamp := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
	str := "pointed"

	columns := []export.Column{
		{Key: "missing", Header: "Missing"},
		{Key: "str", Header: "Str"},
		{Key: "strptr", Header: "StrPtr"},
		{Key: "nilptr", Header: "NilPtr"},
		{Key: "time", Header: "Time"},
		{Key: "timeptr", Header: "TimePtr"},
		{Key: "niltime", Header: "NilTime"},
		{Key: "bool", Header: "Bool"},
	}
	rows := []export.Row{{
		"str":     "plain",
		"strptr":  &str,
		"nilptr":  (*string)(nil),
		"time":    stamp,
		"timeptr": &stamp,
		"niltime": (*time.Time)(nil),
		"bool":    true,
	}}

	data, err := export.Marshal(columns, rows)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Equal(t, []string{"", "plain", "pointed", "", "2025-06-15T10:30:00Z", "2025-06-15T10:30:00Z", "", "true"}, records[1])
}

func TestNewFileNaming(t *testing.T) {
	now := time.Date(2025, 6, 15, 23, 59, 0, 0, time.UTC)
	columns := []export.Column{{Key: "a", Header: "A"}}
	rows := []export.Row{{"a": "x"}}

	file, err := export.NewFile("activity-report", now, columns, rows)
	require.NoError(t, err)
	require.Equal(t, "activity-report-2025-06-15.csv", file.Name)
	require.Equal(t, "text/csv;charset=utf-8", file.ContentType)
	require.NotEmpty(t, file.Data)
}

func TestNewFilePropagatesNoRows(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	_, err := export.NewFile("empty", now, []export.Column{{Key: "a", Header: "A"}}, nil)
	require.ErrorIs(t, err, export.ErrNoRows)
}
