package errs

import "net/http"

// errorMap holds the template CustomError for every known code.
// A zero Status is rendered as HTTP 200 with the business code in the body.
var errorMap = map[int]CustomError{
	// 1xxx: General Request Handling Errors
	ErrInvalidParams:        {Code: ErrInvalidParams, Kind: KindValidation, Message: "Invalid request parameters.", Status: http.StatusBadRequest},
	ErrUnsupportedMediaType: {Code: ErrUnsupportedMediaType, Kind: KindValidation, Message: "Unsupported request format.", Status: http.StatusUnsupportedMediaType},
	ErrInvalidJSONFormat:    {Code: ErrInvalidJSONFormat, Kind: KindValidation, Message: "Unsupported request format.", Status: http.StatusBadRequest},
	ErrExtraContentInBody:   {Code: ErrExtraContentInBody, Kind: KindValidation, Message: "Request contains unexpected data.", Status: http.StatusBadRequest},
	ErrFormParseFailed:      {Code: ErrFormParseFailed, Kind: KindValidation, Message: "Failed to process form data.", Status: http.StatusBadRequest},

	// 2xxx: Directory Errors
	ErrUserNotFound: {Code: ErrUserNotFound, Kind: KindNotFound, Message: "user was not found", Status: http.StatusNotFound},

	// 3xxx: Registration and Login Errors
	ErrUsernameTaken:    {Code: ErrUsernameTaken, Kind: KindConflict, Message: "username already exists", Status: http.StatusBadRequest},
	ErrEmailTaken:       {Code: ErrEmailTaken, Kind: KindConflict, Message: "email already exists", Status: http.StatusBadRequest},
	ErrPasswordMismatch: {Code: ErrPasswordMismatch, Kind: KindValidation, Message: "password is different", Status: http.StatusBadRequest},
	ErrCreationFailed:   {Code: ErrCreationFailed, Kind: KindInternal, Message: "failed to create user", Status: http.StatusBadRequest},
	ErrUnknownEmail:     {Code: ErrUnknownEmail, Kind: KindNotFound, Message: "Incorrect email."},
	ErrWrongPassword:    {Code: ErrWrongPassword, Kind: KindValidation, Message: "Incorrect password."},

	// 5xxx: Internal System Errors
	ErrUnknown:  {Code: ErrUnknown, Kind: KindInternal, Message: "Something went wrong. Please try again.", Status: http.StatusInternalServerError},
	ErrInternal: {Code: ErrInternal, Kind: KindInternal, Message: "An internal server error occurred", Status: http.StatusInternalServerError},
}
