package export

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// Format identifies an artifact encoder.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatPDF  Format = "pdf"
	FormatHTML Format = "html"
)

// ParseFormat accepts csv, pdf, html and print (an alias for html).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "csv":
		return FormatCSV, nil
	case "pdf":
		return FormatPDF, nil
	case "html", "print":
		return FormatHTML, nil
	}
	return "", fmt.Errorf("unknown export format %q", s)
}

// Filename is guests-<YYYY-MM-DD>.<ext> using the generation date.
func Filename(f Format, generatedAt time.Time) string {
	return fmt.Sprintf("guests-%s.%s", generatedAt.Format(time.DateOnly), f)
}

func ContentType(f Format) string {
	switch f {
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatPDF:
		return "application/pdf"
	case FormatHTML:
		return "text/html; charset=utf-8"
	}
	return "application/octet-stream"
}

// Encode writes t to w in the requested format.
func Encode(w io.Writer, f Format, t Table) error {
	switch f {
	case FormatCSV:
		return EncodeCSV(w, t)
	case FormatPDF:
		return EncodePDF(w, t)
	case FormatHTML:
		return EncodeHTML(w, t)
	}
	return fmt.Errorf("unknown export format %q", f)
}
