package export

import (
	"encoding/csv"
	"fmt"
	"io"
)

const bom = "\ufeff"

// Delimiter separates CSV fields. Spreadsheet tools in the event's locale
// expect a semicolon.
const Delimiter = ';'

// EncodeCSV writes a UTF-8 BOM, a short preamble with the title, date and
// filter summary, an empty row, the column header and one row per guest.
// Every record has as many fields as the header. Lines end in CRLF and
// fields are quoted only when needed.
func EncodeCSV(w io.Writer, t Table) error {
	if _, err := io.WriteString(w, bom); err != nil {
		return fmt.Errorf("write bom: %w", err)
	}

	cw := csv.NewWriter(w)
	cw.Comma = Delimiter
	cw.UseCRLF = true

	width := len(t.Columns)
	preamble := [][]string{
		padded(width, "Title", t.Title),
		padded(width, "Date", t.Date()),
		padded(width, "Filters", t.FilterSummary),
		padded(width),
		t.Columns,
	}
	if err := cw.WriteAll(append(preamble, t.Rows...)); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

func padded(width int, fields ...string) []string {
	row := make([]string, max(width, len(fields)))
	copy(row, fields)
	return row
}
