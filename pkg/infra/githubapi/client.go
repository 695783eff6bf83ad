// Package githubapi implements the GitHub REST v3 calls of the clone flow on
// top of google/go-github, translating HTTP statuses into the domain error
// taxonomy.
package githubapi

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v53/github"
	"github.com/gregjones/httpcache"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/oauth2"

	"github.com/secmon-lab/octoclone/pkg/domain/interfaces"
	"github.com/secmon-lab/octoclone/pkg/domain/model"
	"github.com/secmon-lab/octoclone/pkg/domain/types"
	"github.com/secmon-lab/octoclone/pkg/utils/logging"
)

const (
	defaultTimeout          = 10 * time.Second
	defaultRateLimitWarning = 10

	// Only the first page of issues is ever fetched. Titles beyond it are
	// invisible to the duplicate check; this is documented behavior.
	issuesPerPage = 100
)

type Client struct {
	gh               *github.Client
	rateLimitWarning int
}

var _ interfaces.GitHubClient = (*Client)(nil)

type config struct {
	timeout          time.Duration
	rateLimitWarning int
	baseURL          string
	httpClient       *http.Client
}

type Option func(*config)

func WithTimeout(d time.Duration) Option {
	return func(cfg *config) {
		cfg.timeout = d
	}
}

// WithRateLimitWarning sets the remaining-request threshold below which a
// warning is logged after each API call.
func WithRateLimitWarning(remaining int) Option {
	return func(cfg *config) {
		cfg.rateLimitWarning = remaining
	}
}

// WithBaseURL overrides the GitHub API endpoint. Intended for tests against
// an httptest server.
func WithBaseURL(baseURL string) Option {
	return func(cfg *config) {
		cfg.baseURL = baseURL
	}
}

// WithHTTPClient replaces the default transport stack entirely, including
// authentication. Intended for tests.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(cfg *config) {
		cfg.httpClient = httpClient
	}
}

// New creates a GitHub API client authenticated with the given token. The
// transport stack is httpcache (conditional request caching) under an oauth2
// bearer transport, with a fixed request timeout.
func New(token types.GitHubToken, options ...Option) (*Client, error) {
	cfg := &config{
		timeout:          defaultTimeout,
		rateLimitWarning: defaultRateLimitWarning,
	}
	for _, opt := range options {
		opt(cfg)
	}

	httpClient := cfg.httpClient
	if httpClient == nil {
		httpClient = &http.Client{
			Transport: &oauth2.Transport{
				Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: string(token)}),
				Base:   httpcache.NewMemoryCacheTransport(),
			},
			Timeout: cfg.timeout,
		}
	}

	gh := github.NewClient(httpClient)
	if cfg.baseURL != "" {
		u, err := url.Parse(cfg.baseURL)
		if err != nil {
			return nil, goerr.Wrap(types.ErrInvalidOption, "invalid GitHub API base URL", goerr.V("url", cfg.baseURL))
		}
		if !strings.HasSuffix(u.Path, "/") {
			u.Path += "/"
		}
		gh.BaseURL = u
	}

	return &Client{
		gh:               gh,
		rateLimitWarning: cfg.rateLimitWarning,
	}, nil
}

// ValidateToken checks the token against the current-user endpoint. Any
// failure, including network errors, is treated as an invalid token.
func (x *Client) ValidateToken(ctx context.Context) bool {
	if _, _, err := x.gh.Users.Get(ctx, ""); err != nil {
		logging.From(ctx).Debug("GitHub token validation failed", "error", err)
		return false
	}
	return true
}

func (x *Client) GetAuthenticatedUser(ctx context.Context) (string, error) {
	user, resp, err := x.gh.Users.Get(ctx, "")
	if rateErr := x.checkRate(ctx, resp); rateErr != nil {
		return "", rateErr
	}
	if err != nil {
		if terr := transportError(err); terr != nil {
			return "", terr
		}
		return "", goerr.Wrap(types.ErrAPI, "failed to fetch user information", goerr.V("status", errStatus(err)))
	}

	return user.GetLogin(), nil
}

func (x *Client) CheckIssuesEnabled(ctx context.Context, owner, repo string) (bool, error) {
	repository, resp, err := x.gh.Repositories.Get(ctx, owner, repo)
	if rateErr := x.checkRate(ctx, resp); rateErr != nil {
		return false, rateErr
	}
	if err != nil {
		if terr := transportError(err); terr != nil {
			return false, terr
		}
		switch errStatus(err) {
		case http.StatusNotFound:
			return false, goerr.Wrap(types.ErrNotFound, "repository not found",
				goerr.V("owner", owner), goerr.V("repo", repo))
		default:
			return false, goerr.Wrap(types.ErrAPI, "failed to check repository",
				goerr.V("status", errStatus(err)))
		}
	}

	return repository.GetHasIssues(), nil
}

func (x *Client) GetIssue(ctx context.Context, owner, repo string, number int) (*model.Issue, error) {
	issue, resp, err := x.gh.Issues.Get(ctx, owner, repo, number)
	if rateErr := x.checkRate(ctx, resp); rateErr != nil {
		return nil, rateErr
	}
	if err != nil {
		if terr := transportError(err); terr != nil {
			return nil, terr
		}
		switch errStatus(err) {
		case http.StatusNotFound:
			return nil, goerr.Wrap(types.ErrNotFound, "issue not found",
				goerr.V("owner", owner), goerr.V("repo", repo), goerr.V("number", number))
		case http.StatusForbidden:
			return nil, goerr.Wrap(types.ErrPermissionOrRateLimit, "failed to fetch issue")
		default:
			return nil, goerr.Wrap(types.ErrAPI, "failed to fetch issue",
				goerr.V("status", errStatus(err)))
		}
	}

	return issueFromGitHub(issue), nil
}

func (x *Client) ListIssues(ctx context.Context, owner, repo string) ([]*model.Issue, error) {
	opts := &github.IssueListByRepoOptions{
		State: "all",
		ListOptions: github.ListOptions{
			PerPage: issuesPerPage,
		},
	}

	issues, resp, err := x.gh.Issues.ListByRepo(ctx, owner, repo, opts)
	if rateErr := x.checkRate(ctx, resp); rateErr != nil {
		return nil, rateErr
	}
	if err != nil {
		if terr := transportError(err); terr != nil {
			return nil, terr
		}
		return nil, goerr.Wrap(types.ErrAPI, "failed to list issues",
			goerr.V("owner", owner), goerr.V("repo", repo), goerr.V("status", errStatus(err)))
	}

	result := make([]*model.Issue, 0, len(issues))
	for _, issue := range issues {
		result = append(result, issueFromGitHub(issue))
	}

	return result, nil
}

func (x *Client) CreateIssue(ctx context.Context, owner, repo string, payload *model.IssuePayload) (*model.Issue, error) {
	req := &github.IssueRequest{
		Title:  github.String(payload.Title),
		Body:   github.String(payload.Body),
		Labels: &payload.Labels,
		State:  github.String(payload.State),
	}

	created, resp, err := x.gh.Issues.Create(ctx, owner, repo, req)
	if rateErr := x.checkRate(ctx, resp); rateErr != nil {
		return nil, rateErr
	}
	if err != nil {
		if terr := transportError(err); terr != nil {
			return nil, terr
		}
		switch errStatus(err) {
		case http.StatusForbidden:
			return nil, goerr.Wrap(types.ErrPermissionOrRateLimit, "failed to create issue")
		default:
			return nil, goerr.Wrap(types.ErrAPI, "failed to create issue",
				goerr.V("status", errStatus(err)))
		}
	}

	return issueFromGitHub(created), nil
}

// checkRate inspects the rate limit headers of a response. A remaining count
// below the configured threshold logs a warning; exactly zero is a hard
// failure carrying the reset time.
func (x *Client) checkRate(ctx context.Context, resp *github.Response) error {
	if resp == nil || resp.Rate.Limit == 0 {
		return nil
	}

	if resp.Rate.Remaining < x.rateLimitWarning {
		logging.From(ctx).Warn("GitHub API requests are running low",
			"remaining", resp.Rate.Remaining,
			"reset", resp.Rate.Reset.Time,
		)
	}
	if resp.Rate.Remaining == 0 {
		return goerr.Wrap(types.ErrRateLimitExceeded, "no GitHub API requests remaining",
			goerr.V("reset", resp.Rate.Reset.Time))
	}

	return nil
}

// transportError maps non-API failures to the domain taxonomy. It returns nil
// for *github.ErrorResponse so callers can translate by status code.
func transportError(err error) error {
	var rateLimitErr *github.RateLimitError
	if errors.As(err, &rateLimitErr) {
		return goerr.Wrap(types.ErrRateLimitExceeded, "no GitHub API requests remaining",
			goerr.V("reset", rateLimitErr.Rate.Reset.Time))
	}

	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return goerr.Wrap(types.ErrPermissionOrRateLimit, "secondary rate limit hit")
	}

	var respErr *github.ErrorResponse
	if errors.As(err, &respErr) {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return goerr.Wrap(types.ErrTimeout, "GitHub API request timed out")
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return goerr.Wrap(types.ErrTimeout, "GitHub API request timed out")
	}

	return goerr.Wrap(types.ErrNetwork, "GitHub API request failed", goerr.V("cause", err))
}

func errStatus(err error) int {
	var respErr *github.ErrorResponse
	if errors.As(err, &respErr) && respErr.Response != nil {
		return respErr.Response.StatusCode
	}
	return 0
}

func issueFromGitHub(src *github.Issue) *model.Issue {
	labels := make([]string, 0, len(src.Labels))
	for _, label := range src.Labels {
		labels = append(labels, label.GetName())
	}

	return &model.Issue{
		Number:  src.GetNumber(),
		Title:   src.GetTitle(),
		Body:    src.GetBody(),
		State:   src.GetState(),
		Labels:  labels,
		Locked:  src.GetLocked(),
		HTMLURL: src.GetHTMLURL(),
	}
}
