package pkg

// AppError is the application-level error carried between usecases and the HTTP
// layer. Handlers translate domain sentinels into AppErrors and render them with
// ToHTTPError, so every failure reaches the client as a JSON body.

type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// HTTPError is the wire shape of a failure. Details carries the underlying
// cause when one exists, for diagnostics only.
type HTTPError struct {
	Code    string `json:"code"`
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func (e *AppError) ToHTTPError() HTTPError {
	out := HTTPError{Code: e.Code, Error: e.Message}
	if e.Err != nil {
		out.Details = e.Err.Error()
	}
	return out
}
