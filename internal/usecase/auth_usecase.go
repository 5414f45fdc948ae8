// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import "context"

// SignupInput defines the data required to register a new account.
type SignupInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput returns the bearer token after a successful login.
type LoginOutput struct {
	Token string
}

// AuthUsecase defines the contract the delivery layer depends on for
// signup and login.
type AuthUsecase interface {
	// Signup creates a new account. The created credentials are not
	// echoed back.
	Signup(ctx context.Context, input SignupInput) error

	// Login verifies credentials and issues a bearer token with a fixed
	// one-hour validity window.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
}
