// Package events exposes the calendar and attendance endpoints.
package events

import (
	"context"
	"net/http"
	"strconv"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/tkoski/breeze-bridge/internal/platform/logging"
	"github.com/tkoski/breeze-bridge/internal/platform/timeutil"
	"github.com/tkoski/breeze-bridge/internal/respond"
	"github.com/tkoski/breeze-bridge/internal/service/breeze"
)

// Register wires event routes into the provided API router.
func Register(api huma.API, svc breeze.Service) {
	huma.Register(api, huma.Operation{
		OperationID: "list-events",
		Method:      http.MethodGet,
		Path:        "/events",
		Summary:     "List events",
		Description: "Returns calendar events in the requested date range. Without a range, Breeze returns the current month.",
		Tags:        []string{"Events"},
	}, func(ctx context.Context, input *ListInput) (*ListOutput, error) {
		records, err := svc.ListEvents(ctx, breeze.EventListParams{
			Start:      input.Start,
			End:        input.End,
			CategoryID: input.CategoryID,
		})
		if err != nil {
			return nil, respond.MapServiceError(err)
		}

		out := make([]Event, 0, len(records))
		for _, record := range records {
			out = append(out, toEvent(ctx, record))
		}
		return &ListOutput{Body: EventListData{Events: out, Count: len(out)}}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-calendars",
		Method:      http.MethodGet,
		Path:        "/calendars",
		Summary:     "List calendars",
		Description: "Returns every event calendar configured for the account.",
		Tags:        []string{"Events"},
	}, func(ctx context.Context, _ *struct{}) (*CalendarListOutput, error) {
		records, err := svc.ListCalendars(ctx)
		if err != nil {
			return nil, respond.MapServiceError(err)
		}
		calendars := make([]Calendar, 0, len(records))
		for _, record := range records {
			calendars = append(calendars, Calendar{
				ID:   stringValue(record["id"]),
				Name: stringValue(record["name"]),
			})
		}
		return &CalendarListOutput{Body: CalendarListData{Calendars: calendars}}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-attendance",
		Method:      http.MethodGet,
		Path:        "/events/{instanceId}/attendance",
		Summary:     "List attendance",
		Description: "Returns who attended one event instance.",
		Tags:        []string{"Events"},
	}, func(ctx context.Context, input *AttendanceListInput) (*AttendanceListOutput, error) {
		records, err := svc.ListAttendance(ctx, input.InstanceID, input.Details)
		if err != nil {
			return nil, respond.MapServiceError(err)
		}
		return &AttendanceListOutput{Body: AttendanceListData{
			Attendance: records,
			Count:      len(records),
		}}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "check-in-person",
		Method:      http.MethodPost,
		Path:        "/events/{instanceId}/check-in",
		Summary:     "Check a person in",
		Description: "Marks one person as present for an event instance. Success false means Breeze declined the check-in, usually because it is recorded already.",
		Tags:        []string{"Events"},
	}, func(ctx context.Context, input *AttendanceInput) (*AttendanceOutput, error) {
		ok, err := svc.EventCheckIn(ctx, input.Body.PersonID, input.InstanceID)
		if err != nil {
			return nil, respond.MapServiceError(err)
		}
		return &AttendanceOutput{Body: AttendanceData{Success: ok}}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "check-out-person",
		Method:      http.MethodPost,
		Path:        "/events/{instanceId}/check-out",
		Summary:     "Check a person out",
		Description: "Marks one person as checked out of an event instance.",
		Tags:        []string{"Events"},
	}, func(ctx context.Context, input *AttendanceInput) (*AttendanceOutput, error) {
		ok, err := svc.EventCheckOut(ctx, input.Body.PersonID, input.InstanceID)
		if err != nil {
			return nil, respond.MapServiceError(err)
		}
		return &AttendanceOutput{Body: AttendanceData{Success: ok}}, nil
	})
}

func toEvent(ctx context.Context, record breeze.Record) Event {
	event := Event{
		ID:         stringValue(record["id"]),
		EventID:    stringValue(record["event_id"]),
		Name:       stringValue(record["name"]),
		CategoryID: stringValue(record["category_id"]),
	}
	event.Starts = parseStamp(ctx, record, "start_datetime")
	event.Ends = parseStamp(ctx, record, "end_datetime")
	return event
}

// parseStamp returns nil both for absent keys and for unparseable values so
// one odd record cannot fail a listing.
func parseStamp(ctx context.Context, record breeze.Record, key string) *timeutil.Time {
	raw, ok := record[key].(string)
	if !ok {
		return nil
	}
	parsed, err := timeutil.ParseBreeze(raw)
	if err != nil {
		applog.LogWarn(ctx, "unparseable event timestamp",
			zap.String("key", key), zap.String("value", raw))
		return nil
	}
	if parsed.IsZero() {
		return nil
	}
	return &parsed
}

// stringValue tolerates both string and numeric ids; Breeze is inconsistent
// across endpoints.
func stringValue(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatInt(int64(s), 10)
	default:
		return ""
	}
}
