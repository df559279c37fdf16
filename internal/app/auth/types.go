package auth

// LoginRequest carries the credentials of a login attempt.
type LoginRequest struct {
	Email    string
	Password string
}

// RegistrationRequest carries a new account's details.
type RegistrationRequest struct {
	Username        string
	Email           string
	Password        string
	PasswordConfirm string
}

// LoginResult is returned on a successful login.
type LoginResult struct {
	Token string `json:"token"`
}

// RegistrationResult is returned on a successful registration.
type RegistrationResult struct {
	ID string `json:"user_id"`
}
