package services

// ServiceError is a typed error with an HTTP status code. Controllers render
// it as {"error": Message} with the given status.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string { return e.Message }
