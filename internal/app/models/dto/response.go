package dto

// Response is the uniform JSON envelope returned by every endpoint.
// Code mirrors the HTTP status (200, 400, 401, 403, 404, 500).
type Response struct {
	Code int         `json:"code" example:"200"`
	Msg  string      `json:"msg,omitempty" example:"ok"`
	Data interface{} `json:"data,omitempty"`
}

// NewDataResponse creates a success envelope carrying a payload
func NewDataResponse(data interface{}) Response {
	return Response{Code: 200, Data: data}
}

// NewMessageResponse creates a success envelope carrying only a message
func NewMessageResponse(msg string) Response {
	return Response{Code: 200, Msg: msg}
}

// NewErrorResponse creates a failure envelope
func NewErrorResponse(code int, msg string) Response {
	return Response{Code: code, Msg: msg}
}
