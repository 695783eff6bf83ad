package usecase

import (
	"context"
	"errors"

	"github.com/secmon-lab/octoclone/pkg/domain/types"
)

// LookupFork returns the authenticated user's login and whether the user
// already has a repository with the given name. The repository metadata fetch
// doubles as the existence probe.
func (x *UseCase) LookupFork(ctx context.Context, repoName string) (string, bool, error) {
	login, err := x.clients.GitHub().GetAuthenticatedUser(ctx)
	if err != nil {
		return "", false, err
	}

	if _, err := x.clients.GitHub().CheckIssuesEnabled(ctx, login, repoName); err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return login, false, nil
		}
		return login, false, err
	}

	return login, true, nil
}
