package cli

// Export unexported functions for testing
var (
	RunClone = runClone
)
