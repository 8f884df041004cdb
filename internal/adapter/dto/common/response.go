package common

// SuccessResponse is the envelope every successful JSON response uses
type SuccessResponse struct {
	Code    int         `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is the envelope every failed JSON response uses
type ErrorResponse struct {
	Code    interface{}       `json:"code,omitempty"`
	Message string            `json:"message,omitempty"`
	Info    string            `json:"info,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// HealthResponse is returned by the health check
type HealthResponse struct {
	Status      string `json:"status"`
	Environment string `json:"environment"`
	Storage     string `json:"storage"`
}
