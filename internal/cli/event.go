package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/campusevents/internal/imagex"
	"github.com/dmitrijs2005/campusevents/internal/models"
)

// Create prompts for every event field and adds the event to the collection,
// stamped with the acting user's id. Requires an authenticated session.
func (a *App) Create(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	title, err := getSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		return err
	}
	if title == "" {
		fmt.Fprintln(a.out, "Title is required.")
		return nil
	}

	description, err := GetMultiline(a.reader, "Enter description:", os.Stdout)
	if err != nil {
		return err
	}

	date, err := getSimpleText(a.reader, "Enter date (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		return err
	}

	timeOfDay, err := getSimpleText(a.reader, "Enter time (HH:MM)", os.Stdout)
	if err != nil {
		return err
	}

	location, err := getSimpleText(a.reader, "Enter location", os.Stdout)
	if err != nil {
		return err
	}

	organizer, err := getSimpleText(a.reader, "Enter organizer", os.Stdout)
	if err != nil {
		return err
	}

	eventType, err := a.promptEventType(models.EventTypeAcademic)
	if err != nil {
		return err
	}

	url, err := getSimpleText(a.reader, "Enter image URL (blank for a generated placeholder)", os.Stdout)
	if err != nil {
		return err
	}
	if url == "" {
		url = imagex.Placeholder(title)
	}

	e := models.Event{
		Title:       title,
		Description: description,
		Date:        date,
		Time:        timeOfDay,
		Location:    location,
		Organizer:   organizer,
		Type:        eventType,
		ImageURL:    url,
		CreatedBy:   a.session.CurrentUser().ID,
	}

	stored := a.events.Create(ctx, e)
	fmt.Fprintf(a.out, "Created event %s\n", stored.ID)
	return nil
}

// Edit loads an event by id and prompts per field, keeping the current value
// on blank input. The full record replaces the stored one.
func (a *App) Edit(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	id, err := getSimpleText(a.reader, "Enter event id to edit", os.Stdout)
	if err != nil {
		return err
	}

	e, ok := a.events.Get(id)
	if !ok {
		fmt.Fprintf(a.out, "No event with id %s\n", id)
		return nil
	}

	if e.Title, err = GetTextWithDefault(a.reader, "Title", e.Title, os.Stdout); err != nil {
		return err
	}
	if e.Description, err = GetTextWithDefault(a.reader, "Description", e.Description, os.Stdout); err != nil {
		return err
	}
	if e.Date, err = GetTextWithDefault(a.reader, "Date", e.Date, os.Stdout); err != nil {
		return err
	}
	if e.Time, err = GetTextWithDefault(a.reader, "Time", e.Time, os.Stdout); err != nil {
		return err
	}
	if e.Location, err = GetTextWithDefault(a.reader, "Location", e.Location, os.Stdout); err != nil {
		return err
	}
	if e.Organizer, err = GetTextWithDefault(a.reader, "Organizer", e.Organizer, os.Stdout); err != nil {
		return err
	}
	if e.Type, err = a.promptEventType(e.Type); err != nil {
		return err
	}
	if e.ImageURL, err = GetTextWithDefault(a.reader, "Image URL", e.ImageURL, os.Stdout); err != nil {
		return err
	}

	a.events.Update(ctx, e)
	return nil
}

// Delete removes an event by id after an explicit confirmation.
func (a *App) Delete(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	id, err := getSimpleText(a.reader, "Enter event id to delete", os.Stdout)
	if err != nil {
		return err
	}

	if _, ok := a.events.Get(id); !ok {
		fmt.Fprintf(a.out, "No event with id %s\n", id)
		return nil
	}

	ok, err := Confirm(a.reader, "This will permanently delete the event. Are you sure?", os.Stdout)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	a.events.Delete(ctx, id)
	return nil
}

// promptEventType asks for one of the known categories; a blank answer keeps
// the given default.
func (a *App) promptEventType(def models.EventType) (models.EventType, error) {
	prompt := fmt.Sprintf("Enter type (academic/cultural/sports/workshop/seminar/other) [%s]", def)
	got, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return "", err
	}
	if got == "" {
		return def, nil
	}
	t, perr := models.ParseEventType(got)
	if perr != nil {
		fmt.Fprintf(a.out, "%v, using %q\n", perr, def)
		return def, nil
	}
	return t, nil
}
