package events

import "github.com/tkoski/breeze-bridge/internal/platform/timeutil"

// Event is one calendar event instance. Starts and Ends are null when the
// source record carried no usable timestamp.
type Event struct {
	ID         string         `json:"id"          doc:"Event instance identifier" example:"501"`
	EventID    string         `json:"event_id"    doc:"Recurring event identifier" example:"42"`
	Name       string         `json:"name"        doc:"Event name" example:"Sunday Service"`
	CategoryID string         `json:"category_id" doc:"Calendar the event belongs to" example:"1"`
	Starts     *timeutil.Time `json:"starts"      doc:"Start time, RFC 3339"`
	Ends       *timeutil.Time `json:"ends"        doc:"End time, RFC 3339"`
}

// Calendar is one event calendar.
type Calendar struct {
	ID   string `json:"id"   doc:"Calendar identifier" example:"1"`
	Name string `json:"name" doc:"Calendar name"       example:"Main"`
}
