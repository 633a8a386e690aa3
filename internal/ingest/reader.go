package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrBadExtension rejects an upload before any parsing happens.
var ErrBadExtension = fmt.Errorf("invalid file type: expected .xlsx or .csv")

// ReadFile parses the uploaded bytes into raw rows. The first row is the
// header; each later row is keyed by it.
func ReadFile(filename string, r io.Reader) ([]Row, error) {
	switch {
	case strings.HasSuffix(filename, ".xlsx"):
		return readXLSX(r)
	case strings.HasSuffix(filename, ".csv"):
		return readCSV(r)
	default:
		return nil, ErrBadExtension
	}
}

func readXLSX(r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("xlsx has no sheets")
	}
	raw, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(raw) == 0 {
		return nil, nil
	}
	return keyRows(raw[0], raw[1:]), nil
}

func readCSV(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	raw, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(raw) == 0 {
		return nil, nil
	}
	return keyRows(raw[0], raw[1:]), nil
}

// keyRows maps each data row onto the header. Short rows are padded with
// empty cells (xlsx readers drop trailing blanks); extra cells are dropped.
func keyRows(header []string, data [][]string) []Row {
	for i, h := range header {
		header[i] = strings.TrimSpace(h)
	}
	rows := make([]Row, 0, len(data))
	for _, cells := range data {
		row := make(Row, len(header))
		for i, h := range header {
			if h == "" {
				continue
			}
			if i < len(cells) {
				row[h] = cells[i]
			} else {
				row[h] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows
}
