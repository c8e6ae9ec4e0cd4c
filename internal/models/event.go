package models

import "fmt"

// EventType classifies an event category.
type EventType string

const (
	EventTypeAcademic EventType = "academic"
	EventTypeCultural EventType = "cultural"
	EventTypeSports   EventType = "sports"
	EventTypeWorkshop EventType = "workshop"
	EventTypeSeminar  EventType = "seminar"
	EventTypeOther    EventType = "other"
)

// EventTypes lists all valid categories in display order.
var EventTypes = []EventType{
	EventTypeAcademic,
	EventTypeCultural,
	EventTypeSports,
	EventTypeWorkshop,
	EventTypeSeminar,
	EventTypeOther,
}

// ParseEventType validates a user-supplied category string.
func ParseEventType(s string) (EventType, error) {
	for _, t := range EventTypes {
		if s == string(t) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown event type %q", s)
}

// Event is a single listed event. Date is a calendar date ("2006-01-02") and
// Time a clock time ("15:04"), both kept in string form as entered.
type Event struct {
	ID          string    `json:"id" yaml:"id"`
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description" yaml:"description"`
	Date        string    `json:"date" yaml:"date"`
	Time        string    `json:"time" yaml:"time"`
	Location    string    `json:"location" yaml:"location"`
	ImageURL    string    `json:"imageUrl" yaml:"image_url"`
	Organizer   string    `json:"organizer" yaml:"organizer"`
	Type        EventType `json:"type" yaml:"type"`
	CreatedBy   string    `json:"createdBy" yaml:"created_by"`
}
