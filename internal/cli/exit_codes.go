package cli

// Exit codes for the autorel CLI.
// These codes support programmatic composition and CI/CD integration.
const (
	// ExitSuccess indicates successful command execution.
	ExitSuccess = 0

	// ExitRuntime indicates a failure during command execution.
	ExitRuntime = 1

	// ExitConfigError indicates invalid or unloadable configuration.
	ExitConfigError = 2

	// ExitInvalidArguments indicates invalid command arguments.
	ExitInvalidArguments = 3

	// ExitMissingPrerequisite indicates a required external capability is
	// missing (e.g., not inside a git repository).
	ExitMissingPrerequisite = 4

	// ExitSecurityError indicates a failed security-validation check.
	ExitSecurityError = 5
)
