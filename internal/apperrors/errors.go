// Package apperrors defines the user-visible error taxonomy. Every
// error here is a terminal request outcome carrying the HTTP status the
// transport layer should answer with.
package apperrors

import "net/http"

// APIError is a user-facing error with an HTTP status code.
type APIError struct {
	HTTPCode int
	Message  string
}

func (e *APIError) Error() string {
	return e.Message
}

// NewErrInvalidCredentials covers both unknown email and wrong password
// so callers cannot probe for account existence.
func NewErrInvalidCredentials() *APIError {
	return &APIError{HTTPCode: http.StatusUnauthorized, Message: "invalid email or password"}
}

// NewErrEmailTaken is the registration conflict outcome, including the
// concurrent-registration race translated from the storage layer.
func NewErrEmailTaken() *APIError {
	return &APIError{HTTPCode: http.StatusConflict, Message: "an account with this email already exists"}
}

// NewErrMissingAuthorizationToken is returned when a protected request
// carries no bearer token.
func NewErrMissingAuthorizationToken() *APIError {
	return &APIError{HTTPCode: http.StatusUnauthorized, Message: "missing authorization token"}
}

// NewErrInvalidAuthorizationToken covers forged, expired and
// unresolvable tokens alike.
func NewErrInvalidAuthorizationToken() *APIError {
	return &APIError{HTTPCode: http.StatusUnauthorized, Message: "invalid authorization token"}
}

// NewErrForbidden is the ownership-violation outcome for rows that
// exist but belong to someone else.
func NewErrForbidden() *APIError {
	return &APIError{HTTPCode: http.StatusForbidden, Message: "forbidden"}
}

// NewErrFederatedIdentity is returned when the upstream provider did
// not supply an email.
func NewErrFederatedIdentity() *APIError {
	return &APIError{HTTPCode: http.StatusUnauthorized, Message: "email not provided by identity provider"}
}

// NewErrValidation wraps a request-validation message.
func NewErrValidation(msg string) *APIError {
	return &APIError{HTTPCode: http.StatusBadRequest, Message: msg}
}
