package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dmitrijs2005/guestkeeper/internal/client/export"
	"github.com/dmitrijs2005/guestkeeper/internal/client/guestlist"
	"github.com/dmitrijs2005/guestkeeper/internal/client/models"
	"github.com/dmitrijs2005/guestkeeper/internal/common"
)

func (a *App) currentFilter() guestlist.FilterState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.filter
}

func (a *App) updateFilter(fn func(*guestlist.FilterState)) guestlist.FilterState {
	a.mu.Lock()
	defer a.mu.Unlock()
	fn(&a.filter)
	return a.filter
}

func (a *App) List(ctx context.Context) error {
	f := a.currentFilter()
	all := a.guests.Guests()
	visible := guestlist.Apply(all, f)

	t := export.Project(visible, a.guests.Title(), f, time.Now())
	printlnFn(renderGuests(visible, t))

	line := fmt.Sprintf("%d of %d guests; %s", len(visible), len(all), t.FilterSummary)
	if f.Search != "" {
		line += fmt.Sprintf("; search %q", f.Search)
	}
	printlnFn(line)
	return nil
}

func parseArrived(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y", "true":
		return true, nil
	case "no", "n", "false":
		return false, nil
	}
	return false, fmt.Errorf("arrived %q: %w", s, models.ErrUnknownValue)
}

// pick returns nil for "all", otherwise a pointer to v.
func pick[T any](all bool, v T) *T {
	if all {
		return nil
	}
	return &v
}

// Filter sets one dimension ("all" clears it) or, with "clear", resets the
// whole filter including the search text.
func (a *App) Filter(ctx context.Context, args []string) error {
	if len(args) == 1 && args[0] == "clear" {
		a.updateFilter(func(f *guestlist.FilterState) { *f = guestlist.FilterState{} })
		printlnFn(guestlist.NoFilters)
		return nil
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: usage: filter <status|accommodation|group|arrived> <value|all>", common.ErrorValidation)
	}

	dim := strings.ToLower(args[0])
	value := strings.Join(args[1:], " ")
	all := strings.EqualFold(value, "all")

	var apply func(*guestlist.FilterState)
	switch dim {
	case "status":
		v, err := models.ParseStatus(value)
		if err != nil && !all {
			return err
		}
		apply = func(f *guestlist.FilterState) { f.Status = pick(all, v) }
	case "accommodation", "lodging":
		v, err := models.ParseAccommodation(value)
		if err != nil && !all {
			return err
		}
		apply = func(f *guestlist.FilterState) { f.Accommodation = pick(all, v) }
	case "group":
		v, err := models.ParseGroup(value)
		if err != nil && !all {
			return err
		}
		apply = func(f *guestlist.FilterState) { f.Group = pick(all, v) }
	case "arrived":
		v, err := parseArrived(value)
		if err != nil && !all {
			return err
		}
		apply = func(f *guestlist.FilterState) { f.Arrived = pick(all, v) }
	default:
		return fmt.Errorf("%w: unknown filter %q", common.ErrorValidation, args[0])
	}

	f := a.updateFilter(apply)
	printlnFn(f.Summary())
	return nil
}

func (a *App) Search(ctx context.Context, text string) error {
	a.updateFilter(func(f *guestlist.FilterState) { f.Search = strings.TrimSpace(text) })
	return a.List(ctx)
}

func (a *App) Arrive(ctx context.Context, id string, arrived bool) error {
	if !a.guests.SetArrived(ctx, id, arrived) {
		return fmt.Errorf("guest %q: %w", id, common.ErrorNotFound)
	}
	printlnFn(fmt.Sprintf("%s: arrived %s", id, guestlist.YesNo(arrived)))
	return nil
}

func (a *App) Export(ctx context.Context, format string) error {
	f, err := export.ParseFormat(format)
	if err != nil {
		return err
	}
	art, err := a.exports.Export(ctx, f, a.currentFilter())
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Exported %d guests to %s", art.Rows, art.Path))
	if art.URL != "" {
		printlnFn("Download:", art.URL)
	}
	return nil
}

func (a *App) Import(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	n, err := a.guests.Import(ctx, data)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Imported %d guests", n))
	return nil
}

// Title prints the event title, or sets it when text is not empty.
func (a *App) Title(ctx context.Context, text string) error {
	if strings.TrimSpace(text) != "" {
		if res := a.guests.SetTitle(ctx, text); !res.OK() {
			printlnFn("Title changed for this session only:", res.Err)
		}
	}
	printlnFn(a.guests.Title())
	return nil
}

func (a *App) Stats(ctx context.Context) error {
	printlnFn(renderStats(guestlist.Compute(a.guests.Guests())))
	return nil
}

// Reset drops the stored guest list and title and clears every filter.
// Remote arrival flags are not touched.
func (a *App) Reset(ctx context.Context) error {
	res := a.guests.Reset(ctx)
	if !res.OK() {
		return fmt.Errorf("reset %s: %w", res.Kind, res.Err)
	}
	a.updateFilter(func(f *guestlist.FilterState) { *f = guestlist.FilterState{} })
	printlnFn("Local data reset:", len(a.guests.Guests()), "default guests")
	return nil
}
