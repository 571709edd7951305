package dto

// BaseResponse confirmación simple de una operación.
type BaseResponse struct {
	Msg string `json:"msg"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
