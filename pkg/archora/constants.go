package archora

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess        = 0  // All commands completed
	ExitGeneralError   = 1  // Unknown or unclassified error
	ExitUsageError     = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic          = 3  // Internal panic (unexpected crash)
	ExitConfigError    = 10 // Invalid configuration
	ExitUnknownUser    = 11 // Requested user has no profile
	ExitInvalidFixture = 12 // Fixture or profile file could not be parsed
	ExitCommandFailed  = 13 // A terminal command failed in strict mode
)

const (
	// DefaultUser is the identity a fresh session starts as.
	DefaultUser = "prayatna"

	// HostName is the machine name shown in prompts and neofetch.
	HostName = "archora"

	// HomeRoot is the directory holding one home directory per user.
	HomeRoot = "/home"

	// ConfigFileName is the optional project configuration file.
	ConfigFileName = "archora.yaml"

	// EnvUser, EnvFixture and EnvProfiles override archora.yaml values.
	EnvUser     = "ARCHORA_USER"
	EnvFixture  = "ARCHORA_FIXTURE"
	EnvProfiles = "ARCHORA_PROFILES"

	// EnvNonInteractive=1 forces the line-mode shell.
	EnvNonInteractive = "ARCHORA_NON_INTERACTIVE"
)

// HomeDir returns the home directory of user.
func HomeDir(user string) string {
	return HomeRoot + "/" + user
}
