// Package auth implements account registration, credential checks and the
// bearer tokens handed to clients.
package auth

import (
	"context"

	"github.com/mmynk/dayplanner/internal/models"
)

// Authenticator verifies credentials and creates accounts.
// PasswordAuthenticator is the only implementation.
type Authenticator interface {
	// Register creates an account. The email is normalized before storage.
	Register(ctx context.Context, email, displayName, credential string) (*models.User, error)

	// Authenticate returns the user whose credential matches, or
	// ErrInvalidCredentials.
	Authenticate(ctx context.Context, email, credential string) (*models.User, error)

	ValidateCredential(credential string) error
}
