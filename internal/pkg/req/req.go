/*
Package req binds HTTP request bodies into handler input structs.

Registration and login are posted as url-encoded forms by browser clients and as
JSON by API clients, so Bind dispatches on Content-Type. Bodies are capped at
MaxBodySize in both cases.
*/
package req

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"userdir/internal/pkg/errs"
)

// MaxBodySize is the largest request body accepted by BindJSON and Bind (1 MB).
const MaxBodySize int64 = 1 << 20

// FormDecoder is implemented by inputs that can be populated from url-encoded form values.
type FormDecoder interface {
	DecodeForm(values url.Values)
}

// BindJSON decodes a single JSON document from the request body into dst.
// Unknown fields and trailing data are rejected.
func BindJSON(w http.ResponseWriter, r *http.Request, dst any) *errs.CustomError {
	return bindJSON(w, r, dst, true)
}

// BindJSONLenient is BindJSON that ignores fields dst does not declare.
func BindJSONLenient(w http.ResponseWriter, r *http.Request, dst any) *errs.CustomError {
	return bindJSON(w, r, dst, false)
}

func bindJSON(w http.ResponseWriter, r *http.Request, dst any, strict bool) *errs.CustomError {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		return errs.NewError(errs.ErrUnsupportedMediaType)
	}

	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)

	decoder := json.NewDecoder(r.Body)
	if strict {
		decoder.DisallowUnknownFields()
	}

	if err := decoder.Decode(dst); err != nil {
		return errs.NewError(errs.ErrInvalidJSONFormat)
	}

	if decoder.More() {
		return errs.NewError(errs.ErrExtraContentInBody)
	}

	return nil
}

// Bind fills dst from either a JSON body or an application/x-www-form-urlencoded body.
func Bind(w http.ResponseWriter, r *http.Request, dst FormDecoder) *errs.CustomError {
	contentType := r.Header.Get("Content-Type")

	switch {
	case strings.HasPrefix(contentType, "application/json"):
		return BindJSON(w, r, dst)

	case strings.HasPrefix(contentType, "application/x-www-form-urlencoded"):
		r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)
		if err := r.ParseForm(); err != nil {
			return errs.NewError(errs.ErrFormParseFailed)
		}
		dst.DecodeForm(r.PostForm)
		return nil
	}

	return errs.NewError(errs.ErrUnsupportedMediaType)
}
