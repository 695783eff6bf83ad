package model

import (
	"regexp"
	"strconv"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/octoclone/pkg/domain/types"
)

// RepositoryRef identifies a repository location. Immutable once parsed.
type RepositoryRef struct {
	Owner string `json:"owner"`
	Repo  string `json:"repo"`
}

func (x RepositoryRef) String() string {
	return x.Owner + "/" + x.Repo
}

// IssueRef identifies a single issue in a repository.
type IssueRef struct {
	RepositoryRef
	Number int `json:"number"`
}

// The non-slash character classes make path segments containing "/" impossible
// by construction. Both patterns are anchored at the start of the string only.
var (
	ptnIssueURL = regexp.MustCompile(`^https://github\.com/([^/]+)/([^/]+)/issues/(\d+)`)
	ptnRepoURL  = regexp.MustCompile(`^https://github\.com/([^/]+)/([^/]+)/?`)
)

// ParseIssueURL extracts owner, repository and issue number from a GitHub
// issue URL such as https://github.com/owner/repo/issues/123.
func ParseIssueURL(url string) (*IssueRef, error) {
	m := ptnIssueURL.FindStringSubmatch(url)
	if m == nil {
		return nil, goerr.Wrap(types.ErrInvalidFormat,
			"invalid GitHub issue URL, expected https://github.com/owner/repo/issues/number",
			goerr.V("url", url))
	}

	number, err := strconv.Atoi(m[3])
	if err != nil {
		return nil, goerr.Wrap(types.ErrInvalidFormat, "invalid issue number", goerr.V("url", url))
	}

	return &IssueRef{
		RepositoryRef: RepositoryRef{Owner: m[1], Repo: m[2]},
		Number:        number,
	}, nil
}

// ParseRepoURL extracts owner and repository from a GitHub repository URL
// such as https://github.com/owner/repo with an optional trailing slash.
func ParseRepoURL(url string) (*RepositoryRef, error) {
	m := ptnRepoURL.FindStringSubmatch(url)
	if m == nil {
		return nil, goerr.Wrap(types.ErrInvalidFormat,
			"invalid GitHub repository URL, expected https://github.com/owner/repo",
			goerr.V("url", url))
	}

	return &RepositoryRef{Owner: m[1], Repo: m[2]}, nil
}
