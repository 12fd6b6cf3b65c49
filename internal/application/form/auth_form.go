package form

import (
	"context"
	"errors"

	"taskboard/internal/application/usecase/auth"
	"taskboard/internal/domain/entity"
)

// Authenticator signs a user in
type Authenticator interface {
	Execute(ctx context.Context, email, password string) (entity.AuthResult, error)
}

// Registrar signs a user up
type Registrar interface {
	Execute(ctx context.Context, creds entity.Credentials) (entity.AuthResult, error)
}

// AuthMode selects between logging in and signing up
type AuthMode int

const (
	AuthModeSignup AuthMode = iota
	AuthModeLogin
)

func (m AuthMode) String() string {
	if m == AuthModeLogin {
		return "Login"
	}
	return "Signup"
}

// AuthForm toggles between login and signup and submits to the matching endpoint
type AuthForm struct {
	Mode     AuthMode
	Name     string
	Email    string
	Password string

	// Message is the last outcome shown to the user
	Message string
	Success bool

	// OnSuccess runs after a successful login or signup
	OnSuccess func(mode AuthMode)

	login  Authenticator
	signup Registrar
}

// NewAuthForm creates a form in signup mode
func NewAuthForm(login Authenticator, signup Registrar) *AuthForm {
	return &AuthForm{Mode: AuthModeSignup, login: login, signup: signup}
}

// Toggle switches between login and signup
func (f *AuthForm) Toggle() {
	if f.Mode == AuthModeLogin {
		f.Mode = AuthModeSignup
	} else {
		f.Mode = AuthModeLogin
	}
	f.Message = ""
	f.Success = false
}

// ToggleLabel is the text of the mode switch
func (f *AuthForm) ToggleLabel() string {
	if f.Mode == AuthModeLogin {
		return "Don't have an account? Signup"
	}
	return "Already have an account? Login"
}

// Submit sends the form. A rejected attempt is not an error; Message carries
// the server's answer either way.
func (f *AuthForm) Submit(ctx context.Context) (entity.AuthResult, error) {
	var (
		result entity.AuthResult
		err    error
	)
	if f.Mode == AuthModeLogin {
		result, err = f.login.Execute(ctx, f.Email, f.Password)
	} else {
		result, err = f.signup.Execute(ctx, entity.Credentials{Name: f.Name, Email: f.Email, Password: f.Password})
	}

	if err != nil {
		f.Success = false
		if errors.Is(err, entity.ErrMissingCredentials) || errors.Is(err, entity.ErrMissingName) {
			f.Message = err.Error()
		} else {
			f.Message = auth.MsgUnexpected
		}
		return result, err
	}

	f.Message = result.Message
	f.Success = result.Success
	if result.Success {
		f.Password = ""
		if f.OnSuccess != nil {
			f.OnSuccess(f.Mode)
		}
	}
	return result, nil
}
