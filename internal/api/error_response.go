package api

// ErrorResponse is the global error body. Error carries the debug detail on
// unexpected failures and is omitted elsewhere.
// swagger:model api.ErrorResponse
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
