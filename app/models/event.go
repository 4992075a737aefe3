package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Event represents a scheduled show. Date carries the full timestamp; Time
// keeps the display string exactly as entered ("20:00").
type Event struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Title      string    `gorm:"type:varchar(255);not null" json:"title" validate:"required,min=1,max=255"`
	Date       time.Time `gorm:"index;not null" json:"date" validate:"required"`
	Time       string    `gorm:"type:varchar(10)" json:"time" validate:"required"`
	Location   string    `gorm:"type:varchar(255);not null" json:"location" validate:"required,max=255"`
	TicketsURL string    `gorm:"type:varchar(512);default:null" json:"tickets_url"`
	SoldOut    bool      `gorm:"default:false" json:"sold_out"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for the Event model
func (Event) TableName() string {
	return "eventos"
}

func (e *Event) Validate() error {
	v := validator.New()
	return v.Struct(e)
}

// SameDay reports whether the event falls on the given calendar day,
// ignoring time-of-day.
func (e *Event) SameDay(day time.Time) bool {
	return e.Date.Year() == day.Year() &&
		e.Date.Month() == day.Month() &&
		e.Date.Day() == day.Day()
}

// EventsOnDay filters events down to those on the selected calendar day.
func EventsOnDay(events []Event, day time.Time) []Event {
	selected := make([]Event, 0)
	for _, e := range events {
		if e.SameDay(day) {
			selected = append(selected, e)
		}
	}
	return selected
}

// DaysWithEvents collects the set of calendar days (YYYY-MM-DD) that have at
// least one event, used to highlight the calendar.
func DaysWithEvents(events []Event) map[string]bool {
	days := make(map[string]bool, len(events))
	for _, e := range events {
		days[e.Date.Format("2006-01-02")] = true
	}
	return days
}
