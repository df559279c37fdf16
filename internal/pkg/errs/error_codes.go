/*
Package errs provides the application error type and the business error codes
shared by the user directory, the auth workflow and the HTTP layer.
*/
package errs

// 1xxx: General Request Handling Errors
const (
	// ErrInvalidParams indicates that request parameter validation failed.
	ErrInvalidParams = 1001

	// ErrUnsupportedMediaType indicates that the request Content-Type is neither JSON nor a url-encoded form.
	ErrUnsupportedMediaType = 1002

	// ErrInvalidJSONFormat indicates that the request body is not valid JSON for the target type.
	ErrInvalidJSONFormat = 1003

	// ErrExtraContentInBody indicates trailing data after the JSON document.
	ErrExtraContentInBody = 1004

	// ErrFormParseFailed indicates that the url-encoded form body could not be parsed.
	ErrFormParseFailed = 1005
)

// 2xxx: Directory Errors
const (
	// ErrUserNotFound indicates that no record matched the requested user id.
	ErrUserNotFound = 2001
)

// 3xxx: Registration and Login Errors
const (
	// ErrUsernameTaken indicates that a record with the requested username already exists.
	ErrUsernameTaken = 3001

	// ErrEmailTaken indicates that a record with the requested email already exists.
	ErrEmailTaken = 3002

	// ErrPasswordMismatch indicates that password and its confirmation differ.
	ErrPasswordMismatch = 3003

	// ErrCreationFailed indicates that the registry did not produce a record with an id.
	ErrCreationFailed = 3004

	// ErrUnknownEmail indicates that no record matched the login email.
	ErrUnknownEmail = 3101

	// ErrWrongPassword indicates that the login password hash did not match.
	ErrWrongPassword = 3102
)

// 5xxx: Internal System Errors
const (
	// ErrUnknown represents an unclassified server error.
	ErrUnknown = 5000

	// ErrInternal covers token key construction or signing failures and a poisoned user store.
	ErrInternal = 5001
)
