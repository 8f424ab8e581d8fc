package usecase

// Error codes surfaced to the HTTP layer.
const (
	CodeValidation       = "VALIDATION_ERROR"
	CodeInvalidStatus    = "INVALID_STATUS"
	CodeLeadNotFound     = "LEAD_NOT_FOUND"
	CodeClientNotFound   = "CLIENT_NOT_FOUND"
	CodeAlreadyConverted = "ALREADY_CONVERTED"
	CodeDatabase         = "DATABASE_ERROR"
)

// DomainError is terminal for the request: the caller did something the
// domain rejects (bad input, unknown id, status outside the enum).
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

// TechnicalError is transient infrastructure failure (store unreachable,
// partial write). Retryable from the caller's point of view.
type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}
