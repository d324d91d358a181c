package models

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type CartResponse struct {
	Success bool       `json:"success"`
	Items   []CartLine `json:"items"`
	Total   float64    `json:"total"`
	Count   int        `json:"count"`
}
