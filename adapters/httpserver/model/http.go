package model

// SuccessResponse wraps every 2xx payload.
type SuccessResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// ErrorResponse carries the apperror code and message. Info holds the
// underlying error text, if any.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Info    string `json:"info"`
}
