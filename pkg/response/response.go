package response

type Envelope struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func Success(message string, data interface{}) Envelope {
	return Envelope{
		Status:  "OK",
		Message: message,
		Data:    data,
	}
}

func Error(status, message string, data interface{}) Envelope {
	return Envelope{
		Status:  status,
		Message: message,
		Data:    data,
	}
}
