/*
Package auth implements registration and login on top of the user directory.

Register checks username and email availability and the password confirmation,
hashes the password and inserts the record, all inside one registry transaction. Login looks the account
up by email, compares password digests and signs a token carrying the user id.
*/
package auth

import (
	"github.com/rs/zerolog"

	"userdir/internal/app/user"
	"userdir/internal/pkg/auth/jwt"
	"userdir/internal/pkg/errs"
	"userdir/internal/pkg/logx"
)

// UserFinder is the lookup Login reads from; user.Directory satisfies it.
type UserFinder interface {
	FindByEmail(email string) (*user.User, error)
}

// UserTransactor runs a callback under the store lock; user.Registry satisfies it.
type UserTransactor interface {
	Atomically(fn func(tx *user.Tx)) error
}

// Service runs the registration and login workflows.
type Service struct {
	users    UserFinder
	registry UserTransactor

	// secret is the token signing secret, already defaulted by configuration.
	secret string

	hash   func(password string) string
	logger zerolog.Logger
}

// NewService returns a Service that signs login tokens with secret.
func NewService(users UserFinder, registry UserTransactor, secret string) *Service {
	return &Service{
		users:    users,
		registry: registry,
		secret:   secret,
		hash:     HashPassword,
		logger:   logx.Component("AuthService"),
	}
}

// Register creates an account after checking, in order, username availability,
// email availability and that Password equals PasswordConfirm. The checks and the
// insert run under one store lock, so concurrent registrations of the same username
// or email cannot both succeed. Nothing is hashed or stored when a check fails.
func (s *Service) Register(req RegistrationRequest) (RegistrationResult, *errs.CustomError) {
	var (
		created  *user.User
		rejected *errs.CustomError
	)
	err := s.registry.Atomically(func(tx *user.Tx) {
		created, rejected = s.register(tx, req)
	})
	if err != nil {
		return RegistrationResult{}, errs.NewError(errs.ErrInternal, err)
	}

	if rejected != nil {
		s.logger.Warn().
			Int("code", rejected.Code).
			Str("username", req.Username).
			Str("email", req.Email).
			Msg("Registration rejected: " + rejected.Message)
		return RegistrationResult{}, rejected
	}

	s.logger.Info().Str("user_id", created.ID).Msg("User registered.")
	return RegistrationResult{ID: created.ID}, nil
}

func (s *Service) register(tx *user.Tx, req RegistrationRequest) (*user.User, *errs.CustomError) {
	if tx.FindByUsername(req.Username) != nil {
		return nil, errs.NewError(errs.ErrUsernameTaken)
	}
	if tx.FindByEmail(req.Email) != nil {
		return nil, errs.NewError(errs.ErrEmailTaken)
	}
	if req.Password != req.PasswordConfirm {
		return nil, errs.NewError(errs.ErrPasswordMismatch)
	}

	created := tx.Create(user.User{
		Username:    req.Username,
		Email:       req.Email,
		Description: "",
		Password:    s.hash(req.Password),
	})
	if created == nil || created.ID == "" {
		return nil, errs.NewError(errs.ErrCreationFailed)
	}
	return created, nil
}

// Login authenticates by email and password and returns a signed token for the
// account. An unknown email is rejected before any password hashing happens.
func (s *Service) Login(req LoginRequest) (LoginResult, *errs.CustomError) {
	account, err := s.users.FindByEmail(req.Email)
	if err != nil {
		return LoginResult{}, errs.NewError(errs.ErrInternal, err)
	}
	if account == nil {
		s.logger.Warn().Str("email", req.Email).Msg("Login rejected: unknown email.")
		return LoginResult{}, errs.NewError(errs.ErrUnknownEmail)
	}

	if !s.passwordMatches(req.Password, account.Password) {
		s.logger.Warn().Str("user_id", account.ID).Msg("Login rejected: password mismatch.")
		return LoginResult{}, errs.NewError(errs.ErrWrongPassword)
	}

	key, err := jwt.NewSigningKey(s.secret)
	if err != nil {
		return LoginResult{}, errs.NewError(errs.ErrInternal, err)
	}

	token, err := jwt.GenerateToken(account.ID, key)
	if err != nil {
		return LoginResult{}, errs.NewError(errs.ErrInternal, err)
	}

	return LoginResult{Token: token}, nil
}

func (s *Service) passwordMatches(password, storedHash string) bool {
	return digestsEqual(s.hash(password), storedHash)
}
