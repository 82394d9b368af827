package export

import (
	"fmt"
	"html/template"
	"io"
)

var printTemplate = template.Must(template.New("print").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}} - Guests</title>
<style>
body { font-family: Helvetica, Arial, sans-serif; font-size: 12px; margin: 24px; }
h1 { font-size: 18px; margin: 0 0 4px; }
p { margin: 2px 0; }
table { border-collapse: collapse; width: 100%; margin-top: 12px; }
th, td { border-bottom: 1px solid #bbb; padding: 4px 6px; text-align: left; }
</style>
</head>
<body onload="window.print()">
<h1>{{.Title}}</h1>
<p>Date: {{.Date}}</p>
<p>{{.FilterSummary}}</p>
<p>Guests ({{len .Rows}})</p>
<table>
<thead><tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr></thead>
<tbody>
{{- range .Rows}}
<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{- end}}
</tbody>
</table>
</body>
</html>
`))

// EncodeHTML renders a standalone print document. Guest fields are
// HTML-escaped; the page opens the print dialog once loaded.
func EncodeHTML(w io.Writer, t Table) error {
	if err := printTemplate.Execute(w, t); err != nil {
		return fmt.Errorf("render print document: %w", err)
	}
	return nil
}
