package tablefy

import (
	"fmt"
	"io"
	"strings"
)

func writeTSV(w io.Writer, header []string, rows [][]string) error {
	if len(header) > 0 {
		if err := writeTSVRow(w, header); err != nil {
			return err
		}
	}
	for _, row := range rows {
		if err := writeTSVRow(w, row); err != nil {
			return err
		}
	}
	return nil
}

func writeTSVRow(w io.Writer, row []string) error {
	_, err := fmt.Fprintln(w, strings.Join(row, "\t"))
	return err
}
