package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse confirmación con texto ya traducido al idioma del cliente.
type MessageResponse struct {
	Message string `json:"message"`
}
