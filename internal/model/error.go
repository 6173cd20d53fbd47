package model

// ErrorResponse is the body shape of every rejection. Message is a fixed
// machine-readable code string, not a human sentence; clients match on it.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
