package model

import (
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/octoclone/pkg/domain/types"
)

const githubURLPrefix = "https://github.com/"

// CloneIssueInput is the request to clone one issue into another repository.
type CloneIssueInput struct {
	IssueURL      string `json:"issue_url"`
	TargetRepoURL string `json:"target_fork_url"`
}

func (x *CloneIssueInput) Validate() error {
	if x.IssueURL == "" || x.TargetRepoURL == "" {
		return goerr.Wrap(types.ErrInvalidFormat, "missing issue URL or target fork URL")
	}
	if !strings.HasPrefix(x.IssueURL, githubURLPrefix) {
		return goerr.Wrap(types.ErrInvalidFormat, "issue URL must start with "+githubURLPrefix,
			goerr.V("url", x.IssueURL))
	}
	if !strings.HasPrefix(x.TargetRepoURL, githubURLPrefix) {
		return goerr.Wrap(types.ErrInvalidFormat, "target fork URL must start with "+githubURLPrefix,
			goerr.V("url", x.TargetRepoURL))
	}

	return nil
}

type CloneIssueOutput struct {
	NewIssueURL string `json:"new_issue_url"`
}

// CloneRecord is kept in process memory for the clone history listing of the
// web mode. Nothing is persisted across restarts.
type CloneRecord struct {
	ID             types.RequestID `json:"id"`
	SourceIssueURL string          `json:"source_issue_url"`
	TargetRepo     string          `json:"target_repo"`
	NewIssueURL    string          `json:"new_issue_url"`
	ClonedAt       time.Time       `json:"cloned_at"`
}
