package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// StatusResponse respuesta genérica de operaciones sin cuerpo (borrados, etc.).
type StatusResponse struct {
	Status string `json:"status"`
}
