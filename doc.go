// Package tablefy turns slices of structs into tables.
//
// A type takes part by implementing [Tabular]. Headers is called on the zero
// value and must not depend on the receiver; Row returns one display string
// per header, in the same order:
//
//	type Server struct {
//		Host string `tablefy:"header(name = \"Hostname\")"`
//		Port int
//	}
//
// Implementations are normally generated rather than written by hand. The
// tablefy command reads the struct declaration, honors header annotations,
// and writes a <type>_tablefy.go file next to it:
//
//	//go:generate go run github.com/bjaus/tablefy/cmd/tablefy --type Server
//
// Fields without an annotation use the field name as the header. Pointer
// fields render as the empty string when nil, at every level of
// indirection. String fields are copied as-is and all others are formatted
// with fmt.
//
// # Assembly
//
// [Assemble] feeds the headers and rows of a slice into any [Renderer].
// [IntoTable] and [IntoString] do the same with the package's own [Table].
//
//	fmt.Print(tablefy.IntoString(servers))
//
// # Rendering
//
// A [Table] is rendered as text with a border style ([BorderRounded] by
// default) and can carry a title, a caption, per-column alignment, maximum
// column widths and a row number column. [Table.Write] and [Table.Marshal]
// also encode it as CSV, TSV, Markdown, HTML, JSON, JSONL or YAML. Use
// [ParseFormat] to turn a flag value into a [Format].
//
// [WriteIter] and [WriteChan] write a sequence without buffering it first
// when the format allows row-at-a-time output.
//
// # Reflection
//
// [Reflect] builds the same headers and rows at runtime from the struct
// tags, for types that cannot use the generator. Schemas are cached per
// type.
//
// # Errors
//
//   - [ErrUnsupportedFormat]: unknown format name
//   - [ErrMissingHeader]: the format needs a header and the table has none
//   - [ErrUnsupportedShape]: the type is not a struct with named fields
//   - [ErrNotDisplayable]: a field has no string form (func, chan)
//   - [ErrDuplicateHeader]: two fields resolve to the same header
//   - [ErrMalformedAnnotation]: a tablefy struct tag could not be parsed
package tablefy
