package tablefy

import (
	"fmt"
	"io"
	"iter"
)

// WriteIter assembles records from an iterator and writes them to w in
// format f. For formats where rows are independent (CSV, TSV, JSONL), each
// row is written as soon as its record arrives. For formats that need all
// rows for layout (Text, Markdown, HTML, JSON, YAML), records are collected
// into a [Table] first.
func WriteIter[T Tabular](w io.Writer, f Format, seq iter.Seq[T]) error {
	switch f {
	case CSV:
		return streamCSV(w, seq)
	case TSV:
		return streamTSV(w, seq)
	case JSONL:
		return streamJSONL(w, seq)
	case Text, Markdown, HTML, JSON, YAML:
		return streamCollect(w, f, seq)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// WriteChan assembles records from a channel and writes them to w.
// It is a thin wrapper around [WriteIter].
func WriteChan[T Tabular](w io.Writer, f Format, ch <-chan T) error {
	return WriteIter(w, f, chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}

func streamCollect[T Tabular](w io.Writer, f Format, seq iter.Seq[T]) error {
	t := NewTable()
	t.SetHeader(Headers[T]())
	for item := range seq {
		t.AddRow(item.Row())
	}
	return t.Write(w, f)
}

func streamCSV[T Tabular](w io.Writer, seq iter.Seq[T]) error {
	if err := writeCSVRow(w, Headers[T]()); err != nil {
		return err
	}
	for item := range seq {
		if err := writeCSVRow(w, item.Row()); err != nil {
			return err
		}
	}
	return nil
}

func streamTSV[T Tabular](w io.Writer, seq iter.Seq[T]) error {
	if err := writeTSVRow(w, Headers[T]()); err != nil {
		return err
	}
	for item := range seq {
		if err := writeTSVRow(w, item.Row()); err != nil {
			return err
		}
	}
	return nil
}

func streamJSONL[T Tabular](w io.Writer, seq iter.Seq[T]) error {
	header := Headers[T]()
	for item := range seq {
		if err := writeJSONLRow(w, header, item.Row()); err != nil {
			return err
		}
	}
	return nil
}
