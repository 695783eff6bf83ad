package config

import (
	"log/slog"
	"time"

	"github.com/secmon-lab/octoclone/pkg/domain/types"
	"github.com/secmon-lab/octoclone/pkg/infra/githubapi"
	"github.com/urfave/cli/v3"
)

type GitHub struct {
	token            types.GitHubToken `masq:"secret"`
	apiURL           string
	timeout          time.Duration
	rateLimitWarning int
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub personal access token",
			Category:    "GitHub",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("OCTOCLONE_GITHUB_TOKEN"),
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "github-api-url",
			Usage:       "GitHub API base URL (for GitHub Enterprise)",
			Category:    "GitHub",
			Destination: &x.apiURL,
			Sources:     cli.EnvVars("OCTOCLONE_GITHUB_API_URL"),
		},
		&cli.DurationFlag{
			Name:        "api-timeout",
			Usage:       "Timeout for each GitHub API request",
			Category:    "GitHub",
			Value:       10 * time.Second,
			Destination: &x.timeout,
			Sources:     cli.EnvVars("OCTOCLONE_API_TIMEOUT"),
		},
		&cli.IntFlag{
			Name:        "rate-limit-warning",
			Usage:       "Warn when the remaining API rate limit drops below this value",
			Category:    "GitHub",
			Value:       10,
			Destination: &x.rateLimitWarning,
			Sources:     cli.EnvVars("OCTOCLONE_RATE_LIMIT_WARNING"),
		},
	}
}

func (x GitHub) NewClient() (*githubapi.Client, error) {
	options := []githubapi.Option{
		githubapi.WithTimeout(x.timeout),
		githubapi.WithRateLimitWarning(x.rateLimitWarning),
	}
	if x.apiURL != "" {
		options = append(options, githubapi.WithBaseURL(x.apiURL))
	}

	return githubapi.New(x.token, options...)
}

func (x GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("Token.len", len(x.token)),
		slog.String("APIURL", x.apiURL),
		slog.Duration("Timeout", x.timeout),
		slog.Int("RateLimitWarning", x.rateLimitWarning),
	)
}
