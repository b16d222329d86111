package models

// FieldError is one entry of a field-level validation report.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse is the body of every failed request.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: Recipe not found
	Error string `json:"error"`

	// Field-level report, present on validation failures only
	Details []FieldError `json:"details,omitempty"`
}

// MessageResponse carries a plain confirmation message.
// swagger:model MessageResponse
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse is returned by the liveness probe.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
