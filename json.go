package tablefy

import (
	"bytes"
	"encoding/json"
	"io"
	"strconv"
)

// record is one data row keyed by header. It marshals as a JSON object whose
// members keep column order.
type record struct {
	keys   []string
	values []string
}

func newRecord(header, row []string) record {
	keys := make([]string, len(row))
	for i := range row {
		keys[i] = columnKey(header, i)
	}
	return record{keys: keys, values: row}
}

// columnKey names column i. Columns past the end of the header are named
// by their 1-based position.
func columnKey(header []string, i int) string {
	if i < len(header) {
		return header[i]
	}
	return "column" + strconv.Itoa(i+1)
}

func (r record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONString(&buf, key); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writeJSONString(&buf, r.values[i]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	buf.Truncate(buf.Len() - 1) // Encode appends a newline.
	return nil
}

func writeJSON(w io.Writer, header []string, rows [][]string) error {
	records := make([]record, len(rows))
	for i, row := range rows {
		records[i] = newRecord(header, row)
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(records)
}
