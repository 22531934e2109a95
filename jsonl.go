package tablefy

import (
	"encoding/json"
	"io"
)

func writeJSONL(w io.Writer, header []string, rows [][]string) error {
	for _, row := range rows {
		if err := writeJSONLRow(w, header, row); err != nil {
			return err
		}
	}
	return nil
}

func writeJSONLRow(w io.Writer, header, row []string) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(newRecord(header, row))
}
