package tablefy

import (
	"errors"
	"fmt"

	"github.com/bjaus/tablefy/internal/annotation"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrMissingHeader     = errors.New("missing header row")
	ErrUnsupportedShape  = errors.New("unsupported record shape")
	ErrNotDisplayable    = errors.New("field type has no textual form")
	ErrDuplicateHeader   = errors.New("duplicate column header")

	// ErrMalformedAnnotation is returned when a tablefy struct tag does not
	// match header(name = "<text>").
	ErrMalformedAnnotation = annotation.ErrMalformed
)

// Tabular is implemented by records that can be laid out as table rows.
// The tablefy command generates both methods from a struct declaration.
//
// Headers describes the type, not the value: implementations must not read
// the receiver. Row returns one value per header, in the same order.
type Tabular interface {
	Headers() []string
	Row() []string
}

// Renderer is the backend a set of records is assembled into. [Table]
// is the default; any type with these methods can replace it.
type Renderer interface {
	SetHeader(header []string)
	AddRow(row []string)
	String() string
}

// Headers returns the column headers of T, read from its zero value.
func Headers[T Tabular]() []string {
	var zero T
	return zero.Headers()
}

// Assemble sets the header of r from T and appends one row per item in
// order. It returns r.
func Assemble[T Tabular, R Renderer](r R, items []T) R {
	r.SetHeader(Headers[T]())
	for _, item := range items {
		r.AddRow(item.Row())
	}
	return r
}

// IntoTable assembles items into a new [Table]. An empty slice yields a
// table holding only the header.
func IntoTable[T Tabular](items []T) *Table {
	return Assemble(NewTable(), items)
}

// IntoString assembles items and renders them as a text table.
func IntoString[T Tabular](items []T) string {
	return IntoTable(items).String()
}

// Format represents an output format of a [Table].
type Format string

const (
	Text     Format = "table"
	CSV      Format = "csv"
	TSV      Format = "tsv"
	Markdown Format = "markdown"
	HTML     Format = "html"
	JSON     Format = "json"
	JSONL    Format = "jsonl"
	YAML     Format = "yaml"
)

var formats = []Format{Text, CSV, TSV, Markdown, HTML, JSON, JSONL, YAML}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format name such as a CLI flag value.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}
