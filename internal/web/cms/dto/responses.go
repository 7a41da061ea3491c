package dto

// Response is the uniform JSON envelope of every endpoint.
type Response struct {
	Success    bool        `json:"success"`
	Data       any         `json:"data,omitempty"`
	Message    string      `json:"message,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// OK builds a success envelope around data.
func OK(data any) Response {
	return Response{Success: true, Data: data}
}

// OKList builds a success envelope with pagination.
func OKList(data any, p Pagination) Response {
	return Response{Success: true, Data: data, Pagination: &p}
}

// Fail builds a failure envelope with a client-facing message.
func Fail(message string) Response {
	return Response{Success: false, Message: message}
}
