package events

import "github.com/tkoski/breeze-bridge/internal/service/breeze"

// EventListData is the response body for listing events.
type EventListData struct {
	Events []Event `json:"events" doc:"Events in calendar order"`
	Count  int     `json:"count"  doc:"Number of events returned" example:"4"`
}

// ListOutput is the response wrapper for GET /events.
type ListOutput struct {
	Body EventListData
}

// CalendarListData is the response body for listing calendars.
type CalendarListData struct {
	Calendars []Calendar `json:"calendars" doc:"Calendars configured for the account"`
}

// CalendarListOutput is the response wrapper for GET /calendars.
type CalendarListOutput struct {
	Body CalendarListData
}

// AttendanceListData is the response body for listing attendance. Entries
// are passed through in the shape Breeze produced them.
type AttendanceListData struct {
	Attendance []breeze.Record `json:"attendance" doc:"Attendance entries for the event instance"`
	Count      int             `json:"count"      doc:"Number of entries returned" example:"12"`
}

// AttendanceListOutput is the response wrapper for
// GET /events/{instanceId}/attendance.
type AttendanceListOutput struct {
	Body AttendanceListData
}

// AttendanceData is the response body after a check-in or check-out.
type AttendanceData struct {
	Success bool `json:"success" doc:"Whether Breeze accepted the change" example:"true"`
}

// AttendanceOutput is the response wrapper for attendance changes.
type AttendanceOutput struct {
	Body AttendanceData
}
