package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dmitrijs2005/guestkeeper/internal/client/export"
	"github.com/dmitrijs2005/guestkeeper/internal/client/guestlist"
	"github.com/dmitrijs2005/guestkeeper/internal/client/models"
	"golang.org/x/term"
)

// isTerminalFn reports whether stdout is a terminal. Plain tab-separated
// output is printed otherwise so the console can be piped.
var isTerminalFn = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4ade80")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	dimStyle    = cellStyle.Foreground(lipgloss.Color("#6b7280"))
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#374151"))
)

func render(headers []string, rows [][]string, dim func(row int) bool) string {
	if !isTerminalFn() {
		var b strings.Builder
		b.WriteString(strings.Join(headers, "\t"))
		for _, r := range rows {
			b.WriteString("\n")
			b.WriteString(strings.Join(r, "\t"))
		}
		return b.String()
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case dim != nil && dim(row):
				return dimStyle
			}
			return cellStyle
		}).
		String()
}

// renderGuests prints the projected rows with the guest id in front, since
// arrive/depart address guests by id.
func renderGuests(guests []models.Guest, t export.Table) string {
	rows := make([][]string, len(t.Rows))
	for i, r := range t.Rows {
		rows[i] = append([]string{guests[i].ID}, r...)
	}
	headers := append([]string{"ID"}, t.Columns...)
	return render(headers, rows, func(row int) bool {
		return row >= 0 && row < len(guests) && guests[row].Status == models.StatusWillNotAttend
	})
}

func renderStats(s guestlist.Stats) string {
	rows := [][]string{
		{"Guests", fmt.Sprint(s.Total)},
		{"Arrived", fmt.Sprint(s.Arrived)},
	}
	for _, st := range models.Statuses {
		rows = append(rows, []string{st.Label(), fmt.Sprint(s.ByStatus[st])})
	}
	for _, g := range models.Groups {
		rows = append(rows, []string{string(g), fmt.Sprint(s.ByGroup[g])})
	}
	for _, acc := range models.Accommodations {
		rows = append(rows, []string{string(acc), fmt.Sprint(s.ByLodging[acc])})
	}
	rows = append(rows, []string{"Without lodging", fmt.Sprint(s.WithoutLodged)})
	return render([]string{"", "Count"}, rows, nil)
}
