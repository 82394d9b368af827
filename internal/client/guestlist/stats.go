package guestlist

import "github.com/dmitrijs2005/guestkeeper/internal/client/models"

// Stats aggregates a guest list for the dashboard view.
type Stats struct {
	Total         int
	Arrived       int
	ByStatus      map[models.Status]int
	ByGroup       map[models.Group]int
	ByLodging     map[models.Accommodation]int
	WithoutLodged int
}

// Compute counts guests per status, group and accommodation. Guests who
// will not attend are left out of the lodging occupancy.
func Compute(guests []models.Guest) Stats {
	s := Stats{
		ByStatus:  make(map[models.Status]int, len(models.Statuses)),
		ByGroup:   make(map[models.Group]int, len(models.Groups)),
		ByLodging: make(map[models.Accommodation]int, len(models.Accommodations)),
	}
	for _, g := range guests {
		s.Total++
		if g.Arrived {
			s.Arrived++
		}
		s.ByStatus[g.Status]++
		s.ByGroup[g.Group]++

		if g.Status == models.StatusWillNotAttend {
			continue
		}
		if g.Accommodation == models.AccommodationNone {
			s.WithoutLodged++
			continue
		}
		s.ByLodging[g.Accommodation]++
	}
	return s
}
