package health

// Data models the health response payload. Status reports this service;
// Breeze reports whether the upstream account answered a summary probe.
type Data struct {
	Status string `json:"status" doc:"Service status"            example:"ok"`
	Breeze string `json:"breeze" doc:"Upstream Breeze API status" example:"ok"`
}

// Output is the response wrapper for GET /health.
type Output struct {
	Body Data
}
