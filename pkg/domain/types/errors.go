package types

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrInvalidFormat indicates a malformed URL or request payload.
	ErrInvalidFormat = goerr.New("invalid format")

	// ErrUnauthorized indicates a missing or invalid GitHub token.
	ErrUnauthorized = goerr.New("unauthorized")

	// ErrCapabilityDisabled indicates that issues are disabled in the target repository.
	ErrCapabilityDisabled = goerr.New("issues are disabled in the repository")

	// ErrNotFound indicates that a repository or issue does not exist.
	ErrNotFound = goerr.New("not found")

	// ErrPermissionOrRateLimit indicates a 403 response: insufficient permissions
	// or a secondary rate limit. GitHub does not distinguish the two.
	ErrPermissionOrRateLimit = goerr.New("rate limit exceeded or insufficient permissions")

	// ErrRateLimitExceeded indicates the rate limit budget is fully exhausted.
	// The wrapped error carries the reset time as a value.
	ErrRateLimitExceeded = goerr.New("GitHub API rate limit exceeded")

	// ErrDuplicateIssue indicates an issue with the same title already exists
	// in the target repository.
	ErrDuplicateIssue = goerr.New("an issue with the same title already exists")

	ErrAPI     = goerr.New("GitHub API error")
	ErrNetwork = goerr.New("network error")
	ErrTimeout = goerr.New("request timed out")

	ErrInvalidOption = goerr.New("invalid option")
)
