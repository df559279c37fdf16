/*
Package handler provides the HTTP surface of the user directory: registration and
login forms, user CRUD and the health check.
*/
package handler

import (
	"net/http"
	"net/url"

	"userdir/internal/app/auth"
	"userdir/internal/pkg/req"
	"userdir/internal/pkg/resp"
)

// RegisterInput is the registration form. password_again is the confirmation field.
type RegisterInput struct {
	Username      string `json:"username"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	PasswordAgain string `json:"password_again"`
}

func (in *RegisterInput) DecodeForm(values url.Values) {
	in.Username = values.Get("username")
	in.Email = values.Get("email")
	in.Password = values.Get("password")
	in.PasswordAgain = values.Get("password_again")
}

// HandleRegister creates an account through the registration workflow.
func HandleRegister(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input RegisterInput
		if customErr := req.Bind(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		result, customErr := deps.Auth.Register(auth.RegistrationRequest{
			Username:        input.Username,
			Email:           input.Email,
			Password:        input.Password,
			PasswordConfirm: input.PasswordAgain,
		})
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondSuccess(w, r, result)
	}
}

// LoginInput is the login form.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (in *LoginInput) DecodeForm(values url.Values) {
	in.Email = values.Get("email")
	in.Password = values.Get("password")
}

// HandleLogin verifies credentials and returns a signed token.
func HandleLogin(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input LoginInput
		if customErr := req.Bind(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		result, customErr := deps.Auth.Login(auth.LoginRequest{
			Email:    input.Email,
			Password: input.Password,
		})
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondSuccess(w, r, result)
	}
}
