package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/campusevents/internal/models"
	"github.com/dmitrijs2005/campusevents/internal/timex"
)

// List prints a one-line summary for every event in collection order.
func (a *App) List(ctx context.Context) error {
	a.printEvents(a.events.All())
	return nil
}

// Search prints events matching the query. A blank query means "show
// everything": the store itself would match every record on an empty
// substring, but the blank special case belongs to the view layer.
func (a *App) Search(ctx context.Context, query string) error {
	if query == "" {
		return a.List(ctx)
	}
	a.printEvents(a.events.Search(query))
	return nil
}

// Show fetches and displays a single event by ID.
func (a *App) Show(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter event id to show", os.Stdout)
	if err != nil {
		return err
	}

	e, ok := a.events.Get(id)
	if !ok {
		fmt.Fprintf(a.out, "No event with id %s\n", id)
		return nil
	}

	fmt.Fprintln(a.out, e.Title)
	fmt.Fprintf(a.out, "  Type:      %s\n", e.Type)
	fmt.Fprintf(a.out, "  When:      %s at %s\n", timex.FormatDate(e.Date), e.Time)
	fmt.Fprintf(a.out, "  Where:     %s\n", e.Location)
	fmt.Fprintf(a.out, "  Organizer: %s\n", e.Organizer)
	fmt.Fprintf(a.out, "  Image:     %s\n", imageURL(e))
	fmt.Fprintf(a.out, "  %s\n", e.Description)
	return nil
}

func (a *App) printEvents(list []models.Event) {
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No events found.")
		return
	}
	for _, e := range list {
		fmt.Fprintf(a.out, "%s  %-30s %-10s %s\n", e.ID, e.Title, e.Type, timex.FormatDate(e.Date))
	}
}
