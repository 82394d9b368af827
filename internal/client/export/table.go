// Package export turns a filtered guest list into printable artifacts.
//
// Every format goes through the same projection (Project) so the columns,
// labels and filter summary cannot drift between encoders:
//
//	t := export.Project(visible, title, filters, time.Now())
//	err := export.Encode(w, export.FormatCSV, t)
package export

import (
	"time"

	"github.com/dmitrijs2005/guestkeeper/internal/client/guestlist"
	"github.com/dmitrijs2005/guestkeeper/internal/client/models"
)

// Placeholder fills the accommodation cell of guests without lodging.
const Placeholder = "-"

// Columns is the fixed column order shared by all encoders.
var Columns = []string{"Name", "Invite", "Group", "Accommodation", "Status", "Arrived"}

// Table is the format-independent projection of a guest list.
type Table struct {
	Title         string
	GeneratedAt   time.Time
	FilterSummary string
	Columns       []string
	Rows          [][]string
}

// Date is the generation date as printed in headers and file names.
func (t Table) Date() string {
	return t.GeneratedAt.Format(time.DateOnly)
}

// Project builds the table for guests, which must already be filtered by f.
func Project(guests []models.Guest, title string, f guestlist.FilterState, generatedAt time.Time) Table {
	rows := make([][]string, 0, len(guests))
	for _, g := range guests {
		lodging := string(g.Accommodation)
		if lodging == "" {
			lodging = Placeholder
		}
		rows = append(rows, []string{
			g.Name,
			g.InviteName,
			string(g.Group),
			lodging,
			g.Status.Label(),
			guestlist.YesNo(g.Arrived),
		})
	}

	cols := make([]string, len(Columns))
	copy(cols, Columns)

	return Table{
		Title:         title,
		GeneratedAt:   generatedAt,
		FilterSummary: f.Summary(),
		Columns:       cols,
		Rows:          rows,
	}
}
