package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/secmon-lab/octoclone/pkg/cli/config"
	"github.com/secmon-lab/octoclone/pkg/domain/model"
	"github.com/secmon-lab/octoclone/pkg/domain/types"
	"github.com/secmon-lab/octoclone/pkg/infra"
	"github.com/secmon-lab/octoclone/pkg/usecase"

	"github.com/urfave/cli/v3"
)

func cloneCommand() *cli.Command {
	var (
		issueURL      string
		targetRepoURL string

		githubConfig config.GitHub
	)
	cloneFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "issue-url",
			Aliases:     []string{"i"},
			Usage:       "URL of the issue to clone (prompted if not given)",
			Destination: &issueURL,
		},
		&cli.StringFlag{
			Name:        "target-repo-url",
			Aliases:     []string{"t"},
			Usage:       "URL of the target repository (your fork is looked up if not given)",
			Destination: &targetRepoURL,
		},
	}

	return &cli.Command{
		Name:    "clone",
		Aliases: []string{"c"},
		Usage:   "Clone a GitHub issue interactively",
		Flags: slice.Flatten(
			cloneFlags,
			githubConfig.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			ghClient, err := githubConfig.NewClient()
			if err != nil {
				return err
			}

			uc := usecase.New(infra.New(infra.WithGitHubClient(ghClient)))

			return runClone(ctx, uc, os.Stdin, os.Stdout, issueURL, targetRepoURL)
		},
	}
}

var (
	noticeColor  = color.New(color.FgYellow)
	successColor = color.New(color.FgGreen, color.Bold)
)

// runClone drives the interactive clone session. When targetRepoURL is empty
// it looks for a fork of the source repository under the authenticated user,
// guiding the user through creating one if none exists. When issues are
// disabled in the target it points at the settings page and retries once the
// user confirms.
func runClone(ctx context.Context, uc *usecase.UseCase, in io.Reader, out io.Writer, issueURL, targetRepoURL string) error {
	reader := bufio.NewReader(in)

	if issueURL == "" {
		url, err := prompt(reader, out, "Enter the URL of the issue to clone: ")
		if err != nil {
			return err
		}
		issueURL = url
	}

	source, err := model.ParseIssueURL(issueURL)
	if err != nil {
		return err
	}

	if targetRepoURL == "" {
		url, err := findTargetFork(ctx, uc, reader, out, source)
		if err != nil {
			return err
		}
		targetRepoURL = url
	}

	input := &model.CloneIssueInput{
		IssueURL:      issueURL,
		TargetRepoURL: targetRepoURL,
	}

	output, err := uc.CloneIssue(ctx, input)
	if errors.Is(err, types.ErrCapabilityDisabled) {
		target, parseErr := model.ParseRepoURL(targetRepoURL)
		if parseErr != nil {
			return err
		}

		noticeColor.Fprintf(out, "Issues are disabled in %s.\n", target.String())
		fmt.Fprintf(out, "Enable them at https://github.com/%s/%s/settings and press Enter to retry.", target.Owner, target.Repo)
		if _, err := reader.ReadString('\n'); err != nil {
			return goerr.Wrap(err, "failed to read input")
		}

		output, err = uc.CloneIssue(ctx, input)
	}
	if err != nil {
		return err
	}

	successColor.Fprintln(out, "Issue successfully cloned!")
	fmt.Fprintf(out, "New issue: %s\n", output.NewIssueURL)

	return nil
}

// findTargetFork locates a repository named after the source repository under
// the authenticated user's account, prompting the user to create a fork until
// one shows up.
func findTargetFork(ctx context.Context, uc *usecase.UseCase, reader *bufio.Reader, out io.Writer, source *model.IssueRef) (string, error) {
	for {
		login, exists, err := uc.LookupFork(ctx, source.Repo)
		if err != nil {
			return "", err
		}

		if exists {
			url := fmt.Sprintf("https://github.com/%s/%s", login, source.Repo)
			fmt.Fprintf(out, "Using fork %s/%s as the target repository.\n", login, source.Repo)
			return url, nil
		}

		noticeColor.Fprintf(out, "No fork of %s was found under @%s.\n", source.String(), login)
		fmt.Fprintf(out, "Create one at https://github.com/%s/%s/fork and press Enter to check again.", source.Owner, source.Repo)
		if _, err := reader.ReadString('\n'); err != nil {
			return "", goerr.Wrap(err, "failed to read input")
		}
	}
}

func prompt(reader *bufio.Reader, out io.Writer, message string) (string, error) {
	fmt.Fprint(out, message)

	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", goerr.Wrap(err, "failed to read input")
	}

	return strings.TrimSpace(line), nil
}
