package cgoconf

// Exit codes returned by the cgoconf CLI.
// These constants allow external tools to check exit codes symbolically
// rather than using magic numbers.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitFailure indicates a runtime failure (unreadable file, etc.).
	ExitFailure = 1

	// ExitConfigError indicates a configuration error (invalid request,
	// unknown dependency shape, unknown toolchain, etc.).
	ExitConfigError = 2

	// ExitEnvError indicates an environment error (toolchain without native
	// compilation support, undetectable host, etc.).
	ExitEnvError = 3
)
