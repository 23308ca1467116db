package dto

import "time"

// ErrorResponse is the standardized JSON error body returned by every
// endpoint on failure.
//
// Fields:
//   - Message: human-readable description of what went wrong.
//   - ErrorDetails: underlying error text, omitted when there is none.
//   - Timestamp: moment the error response was built.
type ErrorResponse struct {
	Message      string    `json:"message" example:"symbol is required"`
	ErrorDetails string    `json:"error,omitempty" example:"request failed with status 502"`
	Timestamp    time.Time `json:"timestamp" example:"2024-01-15T12:00:00Z"`
}

// Error implements the error interface so an ErrorResponse can travel
// through gin's error chain.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails != "" {
		return e.Message + ": " + e.ErrorDetails
	}
	return e.Message
}

// NewErrorResponse builds an ErrorResponse from a message and an optional
// inner error.
func NewErrorResponse(message string, err error) ErrorResponse {
	details := ""
	if err != nil {
		details = err.Error()
	}
	return ErrorResponse{
		Message:      message,
		ErrorDetails: details,
		Timestamp:    time.Now().UTC(),
	}
}
