package profile

// BatchError records a single failed item inside a batch normalization.
type BatchError struct {
	Index int
	Err   error
}

// BatchResult holds the outcome of normalizing a batch of records. Profiles
// keeps successfully normalized records in input order; Errors lists the
// items that were not record-shaped.
type BatchResult struct {
	Profiles []NormalizedProfile
	Errors   []BatchError
}

// NormalizeAll normalizes every item independently. A malformed record is
// reported in Errors and never aborts the rest of the batch.
func NormalizeAll(items []any) BatchResult {
	result := BatchResult{
		Profiles: make([]NormalizedProfile, 0, len(items)),
	}
	for i, item := range items {
		p, err := Normalize(item)
		if err != nil {
			result.Errors = append(result.Errors, BatchError{Index: i, Err: err})
			continue
		}
		result.Profiles = append(result.Profiles, p)
	}
	return result
}
