// Package identity is the seam to the identity/profile collaborator.
// The engine never authenticates anyone itself; it resolves an opaque
// caller token into an owner ID and a read-only profile, failing fast
// when either is missing.
package identity

import (
	"context"
	"errors"
)

// Profile describes the caller for prompt construction.
type Profile struct {
	// Domain is the professional field, e.g. "backend engineering".
	Domain string

	// Skills is an ordered list of skill tags. May be empty.
	Skills []string

	// ExperienceYears is non-negative; zero when unknown.
	ExperienceYears int
}

// Identity is a resolved caller.
type Identity struct {
	OwnerID string
	Profile Profile
}

// Resolver resolves a caller token into an Identity.
type Resolver interface {
	Resolve(ctx context.Context, token string) (*Identity, error)
}

var (
	// ErrUnauthorized means the token carried no valid identity.
	ErrUnauthorized = errors.New("not signed in")

	// ErrProfileNotFound means the identity has no associated profile.
	ErrProfileNotFound = errors.New("no profile found for this account")
)
