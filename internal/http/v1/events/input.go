package events

// ListInput defines query parameters for listing events. An empty range
// asks Breeze for its default window, the current month.
type ListInput struct {
	Start      string `query:"start"       doc:"Earliest event date, YYYY-MM-DD" example:"2024-06-01" pattern:"^\\d{4}-\\d{2}-\\d{2}$" required:"false"`
	End        string `query:"end"         doc:"Latest event date, YYYY-MM-DD"   example:"2024-06-30" pattern:"^\\d{4}-\\d{2}-\\d{2}$" required:"false"`
	CategoryID string `query:"category_id" doc:"Restrict to one calendar"        example:"1"          pattern:"^[0-9]+$"               required:"false"`
}

// InstanceInput defines path parameters for one event instance.
type InstanceInput struct {
	InstanceID string `path:"instanceId" doc:"Event instance identifier" example:"501" pattern:"^[0-9]+$"`
}

// AttendanceListInput defines parameters for listing attendance.
type AttendanceListInput struct {
	InstanceID string `path:"instanceId" doc:"Event instance identifier" example:"501" pattern:"^[0-9]+$"`
	Details    bool   `query:"details"   doc:"Return full person records instead of ids"`
}

// AttendanceInput defines the body for checking a person in or out.
type AttendanceInput struct {
	InstanceID string `path:"instanceId" doc:"Event instance identifier" example:"501" pattern:"^[0-9]+$"`
	Body       AttendanceBody
}

// AttendanceBody names the person whose attendance changes.
type AttendanceBody struct {
	PersonID string `json:"person_id" doc:"Person to check in or out" example:"12345" pattern:"^[0-9]+$"`
}
