package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/rvaughn/taskdesk/internal/domain"
)

// resolveProjectID maps user input to a full project ID. Accepts an
// exact short ID (case-insensitive), a full UUID, or a unique UUID
// prefix.
func resolveProjectID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("project ID is required")
	}

	projects, err := app.Projects.List(ctx)
	if err != nil {
		return "", err
	}

	for _, p := range projects {
		if strings.EqualFold(p.ShortID, input) {
			return p.ID, nil
		}
	}

	for _, p := range projects {
		if p.ID == input {
			return p.ID, nil
		}
	}

	var matches []string
	for _, p := range projects {
		if strings.HasPrefix(p.ID, input) {
			matches = append(matches, p.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("project not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("project ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// requireProfile loads the local profile and fails with a setup hint
// when onboarding has not run.
func requireProfile(ctx context.Context, app *App) (*domain.Profile, error) {
	profile, err := app.Profiles.Get(ctx)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, fmt.Errorf("no profile found, run 'taskdesk onboard' first")
	}
	return profile, nil
}

// requireRole loads the profile and checks it against the wanted role.
func requireRole(ctx context.Context, app *App, role domain.Role) (*domain.Profile, error) {
	profile, err := requireProfile(ctx, app)
	if err != nil {
		return nil, err
	}
	if profile.Role != role {
		return nil, fmt.Errorf("this command needs a %s profile, yours is %s", role, profile.Role)
	}
	return profile, nil
}
