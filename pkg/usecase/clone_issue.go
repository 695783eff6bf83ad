package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/octoclone/pkg/domain/model"
	"github.com/secmon-lab/octoclone/pkg/domain/types"
	"github.com/secmon-lab/octoclone/pkg/utils/logging"
)

// CloneIssue copies one GitHub issue into another repository. The sequence is
// strictly linear: parse both URLs, validate the token, check that issues are
// enabled in the target, fetch the source issue, reject duplicate titles, and
// only then create the clone. Creating the issue is the sole mutating step and
// it is last, so a failure anywhere needs no rollback. Nothing is retried.
func (x *UseCase) CloneIssue(ctx context.Context, input *model.CloneIssueInput) (*model.CloneIssueOutput, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	source, err := model.ParseIssueURL(input.IssueURL)
	if err != nil {
		return nil, err
	}
	target, err := model.ParseRepoURL(input.TargetRepoURL)
	if err != nil {
		return nil, err
	}

	logger := logging.From(ctx).With(
		"source", source.String(),
		"target", target.String(),
		"number", source.Number,
	)

	if !x.clients.GitHub().ValidateToken(ctx) {
		return nil, goerr.Wrap(types.ErrUnauthorized, "invalid GitHub token")
	}

	enabled, err := x.clients.GitHub().CheckIssuesEnabled(ctx, target.Owner, target.Repo)
	if err != nil {
		return nil, err
	}
	if !enabled {
		return nil, goerr.Wrap(types.ErrCapabilityDisabled, "issues are disabled in the target repository",
			goerr.V("target", target.String()))
	}

	issue, err := x.clients.GitHub().GetIssue(ctx, source.Owner, source.Repo, source.Number)
	if err != nil {
		return nil, err
	}

	if issue.Locked {
		logger.Warn("the source issue is locked, comments and interactions are limited")
	}
	if issue.State == "closed" {
		logger.Info("the source issue is closed, cloning it as a closed issue")
	}

	exists, err := x.issueExists(ctx, target.Owner, target.Repo, issue.Title)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, goerr.Wrap(types.ErrDuplicateIssue, "an issue with the same title already exists in the target repository",
			goerr.V("title", issue.Title), goerr.V("target", target.String()))
	}

	created, err := x.clients.GitHub().CreateIssue(ctx, target.Owner, target.Repo, model.NewIssuePayload(issue))
	if err != nil {
		return nil, err
	}

	logger.Info("successfully cloned issue", "new_issue_url", created.HTMLURL)

	x.recordClone(ctx, input, target, created)

	return &model.CloneIssueOutput{NewIssueURL: created.HTMLURL}, nil
}

// issueExists scans the first page of issues in the target repository for a
// byte-for-byte title match. Case-sensitive, no normalization.
func (x *UseCase) issueExists(ctx context.Context, owner, repo, title string) (bool, error) {
	issues, err := x.clients.GitHub().ListIssues(ctx, owner, repo)
	if err != nil {
		return false, err
	}

	for _, issue := range issues {
		if issue.Title == title {
			return true, nil
		}
	}

	return false, nil
}

// recordClone appends the completed clone to the in-memory history. The clone
// itself already succeeded, so a recording failure is logged and swallowed.
func (x *UseCase) recordClone(ctx context.Context, input *model.CloneIssueInput, target *model.RepositoryRef, created *model.Issue) {
	history := x.clients.CloneHistory()
	if history == nil {
		return
	}

	record := &model.CloneRecord{
		ID:             types.NewRequestID(),
		SourceIssueURL: input.IssueURL,
		TargetRepo:     target.String(),
		NewIssueURL:    created.HTMLURL,
		ClonedAt:       logging.CtxTime(ctx),
	}
	if err := history.Add(ctx, record); err != nil {
		logging.From(ctx).Warn("failed to record clone history", "error", err)
	}
}
