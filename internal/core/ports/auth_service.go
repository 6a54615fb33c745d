package ports

import (
	"context"

	"github.com/stackit/community-api/internal/core/domain"
)

// AuthService defines use-case operations for registration and login.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
	// Login verifies the credentials and returns a signed identity token
	// together with the user record.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
