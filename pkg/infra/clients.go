package infra

import (
	"github.com/secmon-lab/octoclone/pkg/domain/interfaces"
	"github.com/secmon-lab/octoclone/pkg/repository/memory"
)

type Clients struct {
	githubClient interfaces.GitHubClient
	cloneHistory interfaces.CloneHistory
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{
		cloneHistory: memory.New(),
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHub() interfaces.GitHubClient {
	return x.githubClient
}
func (x *Clients) CloneHistory() interfaces.CloneHistory {
	return x.cloneHistory
}

func WithGitHubClient(client interfaces.GitHubClient) Option {
	return func(x *Clients) {
		x.githubClient = client
	}
}

func WithCloneHistory(history interfaces.CloneHistory) Option {
	return func(x *Clients) {
		x.cloneHistory = history
	}
}
