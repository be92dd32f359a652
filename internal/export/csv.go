// Package export serializes filtered report collections into portable
// delimited-text download payloads.
package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"time"
)

// ContentType tags the payload as UTF-8 CSV.
const ContentType = "text/csv;charset=utf-8"

// ErrNoRows is returned when an export has nothing to serialize. Callers
// surface it as an explicit no-data state rather than producing an empty file.
var ErrNoRows = errors.New("export: no rows")

// Column maps a row key to a header cell, in output order.
type Column struct {
	Key    string
	Header string
}

// Row is one arbitrary keyed record.
type Row map[string]any

// File is a rendered download payload.
type File struct {
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	Data        []byte `json:"data"`
}

// NewFile serializes rows through the column spec and names the payload
// <base>-<YYYY-MM-DD>.csv from the export instant.
func NewFile(base string, now time.Time, columns []Column, rows []Row) (*File, error) {
	data, err := Marshal(columns, rows)
	if err != nil {
		return nil, err
	}
	return &File{
		Name:        fmt.Sprintf("%s-%s.csv", base, now.Format("2006-01-02")),
		ContentType: ContentType,
		Data:        data,
	}, nil
}

// Marshal renders a header line plus one line per row. Fields containing a
// comma, double quote, or newline are quote-wrapped with internal quotes
// doubled; everything else is emitted verbatim.
func Marshal(columns []Column, rows []Row) ([]byte, error) {
	if len(rows) == 0 {
		return nil, ErrNoRows
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := make([]string, len(columns))
	for i, col := range columns {
		header[i] = col.Header
	}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("writing header: %w", err)
	}

	for _, row := range rows {
		fields := make([]string, len(columns))
		for i, col := range columns {
			fields[i] = cell(row[col.Key])
		}
		if err := w.Write(fields); err != nil {
			return nil, fmt.Errorf("writing row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flushing csv: %w", err)
	}
	return buf.Bytes(), nil
}

// cell renders one field value; absent values become empty strings.
func cell(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case *string:
		if val == nil {
			return ""
		}
		return *val
	case time.Time:
		return val.Format(time.RFC3339)
	case *time.Time:
		if val == nil {
			return ""
		}
		return val.Format(time.RFC3339)
	default:
		return fmt.Sprint(val)
	}
}
