package tablefy

import (
	"bytes"
	"fmt"
	"io"
)

// Write renders the table to w in format f. JSON, JSONL and YAML use the
// header cells as object keys, so a table built by hand with repeated
// header cells produces repeated keys. Tables assembled from generated or
// reflected records never repeat a header.
func (t *Table) Write(w io.Writer, f Format) error {
	switch f {
	case Text:
		return t.Render(w)
	case CSV:
		return writeCSV(w, t.header, t.rows)
	case TSV:
		return writeTSV(w, t.header, t.rows)
	case Markdown:
		return writeMarkdown(w, t.header, t.rows, t.aligns)
	case HTML:
		return writeHTML(w, t.title, t.header, t.rows, t.aligns)
	case JSON:
		return writeJSON(w, t.header, t.rows)
	case JSONL:
		return writeJSONL(w, t.header, t.rows)
	case YAML:
		return writeYAML(w, t.header, t.rows)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Marshal renders the table in format f and returns the bytes.
func (t *Table) Marshal(f Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := t.Write(&buf, f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
