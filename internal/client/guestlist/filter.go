// Package guestlist computes the visible subset of the guest list and the
// aggregates shown by the stats command. Everything here is pure.
package guestlist

import (
	"strings"

	"github.com/dmitrijs2005/guestkeeper/internal/client/models"
)

// NoFilters is the summary shown when no predicate is constrained.
const NoFilters = "No filters"

// FilterState holds the five predicates of a list view. A nil pointer or an
// empty Search means "no constraint".
type FilterState struct {
	Search        string
	Status        *models.Status
	Accommodation *models.Accommodation
	Group         *models.Group
	Arrived       *bool
}

// Empty reports whether no predicate is set.
func (f FilterState) Empty() bool {
	return strings.TrimSpace(f.Search) == "" && f.Status == nil &&
		f.Accommodation == nil && f.Group == nil && f.Arrived == nil
}

// Match reports whether g satisfies every constrained predicate.
func (f FilterState) Match(g models.Guest) bool {
	if q := strings.ToLower(strings.TrimSpace(f.Search)); q != "" {
		if !strings.Contains(strings.ToLower(g.Name), q) &&
			!strings.Contains(strings.ToLower(g.InviteName), q) {
			return false
		}
	}
	if f.Status != nil && g.Status != *f.Status {
		return false
	}
	if f.Accommodation != nil && g.Accommodation != *f.Accommodation {
		return false
	}
	if f.Group != nil && g.Group != *f.Group {
		return false
	}
	if f.Arrived != nil && g.Arrived != *f.Arrived {
		return false
	}
	return true
}

// Apply returns the guests matching f in their original order. The input
// is never modified; an unconstrained f yields an equal copy.
func Apply(guests []models.Guest, f FilterState) []models.Guest {
	out := make([]models.Guest, 0, len(guests))
	for _, g := range guests {
		if f.Match(g) {
			out = append(out, g)
		}
	}
	return out
}

// YesNo renders a boolean the way every export does.
func YesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// Summary describes the constrained dimensions in the fixed order status,
// accommodation, group, arrived. Search text is not part of it.
func (f FilterState) Summary() string {
	var parts []string
	if f.Status != nil {
		parts = append(parts, "Status: "+f.Status.Label())
	}
	if f.Accommodation != nil {
		parts = append(parts, "Accommodation: "+string(*f.Accommodation))
	}
	if f.Group != nil {
		parts = append(parts, "Group: "+string(*f.Group))
	}
	if f.Arrived != nil {
		parts = append(parts, "Arrived: "+YesNo(*f.Arrived))
	}
	if len(parts) == 0 {
		return NoFilters
	}
	return strings.Join(parts, "; ")
}
