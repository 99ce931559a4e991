package errors

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "INSUFFICIENT_BALANCE"
	Details string `json:"details,omitempty"` // Detailed error information (optional)
}

// Response is the unified error response body written by the central error
// handler.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Error   *ErrorInfo `json:"error,omitempty"`
}
