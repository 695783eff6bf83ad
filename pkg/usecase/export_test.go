package usecase

// Export unexported functions for testing
var (
	IssueExists = (*UseCase).issueExists
)
