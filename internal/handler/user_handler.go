package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"userdir/internal/app/user"
	"userdir/internal/pkg/errs"
	"userdir/internal/pkg/logx"
	"userdir/internal/pkg/req"
	"userdir/internal/pkg/resp"
)

// UserInput is the JSON body of POST /user and PUT /user/{user_id}.
// Every field except user_id is required; fields it does not declare are ignored.
type UserInput struct {
	ID          *string `json:"user_id"`
	Username    *string `json:"username"`
	Email       *string `json:"email"`
	Description *string `json:"description"`
	Password    *string `json:"password"`
}

// ToUser returns the record, or ErrInvalidParams when a required field is missing or null.
func (in UserInput) ToUser() (user.User, *errs.CustomError) {
	if in.Username == nil || in.Email == nil || in.Description == nil || in.Password == nil {
		return user.User{}, errs.NewError(errs.ErrInvalidParams)
	}

	u := user.User{
		Username:    *in.Username,
		Email:       *in.Email,
		Description: *in.Description,
		Password:    *in.Password,
	}
	if in.ID != nil {
		u.ID = *in.ID
	}
	return u, nil
}

func bindUser(w http.ResponseWriter, r *http.Request) (user.User, *errs.CustomError) {
	var input UserInput
	if customErr := req.BindJSONLenient(w, r, &input); customErr != nil {
		return user.User{}, customErr
	}
	return input.ToUser()
}

// HandleListUsers returns every record in insertion order.
func HandleListUsers(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := deps.Directory.FindAll()
		if err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrInternal, err))
			return
		}

		resp.RespondSuccess(w, r, users)
	}
}

// HandleGetUser returns the record for {user_id}.
func HandleGetUser(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		found, err := deps.Directory.FindByID(chi.URLParam(r, "user_id"))
		respondUser(w, r, found, err)
	}
}

// HandleCreateUser stores the posted record as-is apart from the id.
// No uniqueness or password handling happens here; that is the registration path.
func HandleCreateUser(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		input, customErr := bindUser(w, r)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		created, err := deps.Registry.Create(input)
		if err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrInternal, err))
			return
		}
		if created == nil {
			logx.Warn("create_user: registry returned no record", "username", input.Username)
			resp.RespondError(w, r, errs.NewError(errs.ErrInternal))
			return
		}

		resp.RespondSuccess(w, r, created)
	}
}

// HandleUpdateUser replaces the record for {user_id} with the posted one.
func HandleUpdateUser(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		input, customErr := bindUser(w, r)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		updated, err := deps.Registry.Update(chi.URLParam(r, "user_id"), input)
		respondUser(w, r, updated, err)
	}
}

// HandleDeleteUser removes the record for {user_id} and returns it.
func HandleDeleteUser(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		removed, err := deps.Registry.Delete(chi.URLParam(r, "user_id"))
		respondUser(w, r, removed, err)
	}
}

func respondUser(w http.ResponseWriter, r *http.Request, u *user.User, err error) {
	switch {
	case err != nil:
		resp.RespondError(w, r, errs.NewError(errs.ErrInternal, err))
	case u == nil:
		resp.RespondError(w, r, errs.NewError(errs.ErrUserNotFound))
	default:
		resp.RespondSuccess(w, r, u)
	}
}
