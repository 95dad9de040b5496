package httpapi

// Result wraps every successful response body in a content envelope.
type Result[T any] struct {
	Content T `json:"content"`
}

// ErrorResult is the body of every non-2xx response.
type ErrorResult struct {
	Error string `json:"error"`
}

func Ok[T any](content T) Result[T] {
	return Result[T]{Content: content}
}

func Fail(message string) ErrorResult {
	return ErrorResult{Error: message}
}
