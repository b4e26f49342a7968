package identity

import (
	"context"
	"os"
	"strconv"
	"strings"
)

// EnvResolver is the single-user resolver backing the CLI: the token is
// the owner ID and the profile comes from PREPDECK_PROFILE_* variables.
// Server deployments plug in a real identity collaborator instead.
type EnvResolver struct{}

func (EnvResolver) Resolve(_ context.Context, token string) (*Identity, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrUnauthorized
	}

	domain := os.Getenv("PREPDECK_PROFILE_DOMAIN")
	if domain == "" {
		return nil, ErrProfileNotFound
	}

	p := Profile{Domain: domain}

	if raw := os.Getenv("PREPDECK_PROFILE_SKILLS"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				p.Skills = append(p.Skills, s)
			}
		}
	}

	if raw := os.Getenv("PREPDECK_PROFILE_EXPERIENCE"); raw != "" {
		if years, err := strconv.Atoi(raw); err == nil && years > 0 {
			p.ExperienceYears = years
		}
	}

	return &Identity{OwnerID: token, Profile: p}, nil
}

// StaticResolver resolves from a fixed token → identity map. Used in tests.
type StaticResolver map[string]Identity

func (r StaticResolver) Resolve(_ context.Context, token string) (*Identity, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrUnauthorized
	}
	id, ok := r[token]
	if !ok {
		return nil, ErrProfileNotFound
	}
	return &id, nil
}
