package serverutils

// ErrorBody is the error shape the presentation layer branches on: a
// machine-readable kind plus a human-readable message.
type ErrorBody struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

func ErrorResponse(kind, message string) ErrorBody {
	return ErrorBody{
		Error: message,
		Kind:  kind,
	}
}
