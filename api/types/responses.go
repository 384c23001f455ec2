package types

// Status constants for API responses
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// ErrorResponse is the body of non-200 responses
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// HealthResponse is the body of a healthy /health response
type HealthResponse struct {
	Status string `json:"status"`
}

// HealthErrorResponse is the body of an unhealthy /health response
type HealthErrorResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}
