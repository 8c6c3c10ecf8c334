package response

// Response is the common JSON envelope for API answers.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func Ok(data interface{}) Response {
	return Response{
		Success: true,
		Data:    data,
	}
}

func Error(msg string) Response {
	return Response{
		Success: false,
		Message: msg,
	}
}
