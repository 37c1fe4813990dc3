package mojifix

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess      = 0  // All matching files visited
	ExitGeneralError = 1  // Unknown or unclassified error
	ExitUsageError   = 2  // CLI usage error (unknown flags, too many args)
	ExitPanic        = 3  // Internal panic (unexpected crash)
	ExitConfigError  = 10 // Invalid mojifix.yaml or flag combination
	ExitDecodeError  = 11 // A matching file is not valid UTF-8
	ExitWriteError   = 12 // Writing a repaired file back failed
	ExitRootMissing  = 13 // Root directory does not exist or is not a directory
)

const (
	// DefaultExtension is the only file suffix repaired when no config overrides it.
	DefaultExtension = ".html"

	// ConfigFileName is looked up in the root directory.
	ConfigFileName = "mojifix.yaml"

	// DefaultMaxPasses keeps the engine to a single forward pass per file.
	DefaultMaxPasses = 1

	// FixedNoticeFormat is printed to stdout once per rewritten file.
	FixedNoticeFormat = "Fixed mojibake in %s\n"

	// DryRunNoticeFormat replaces FixedNoticeFormat when nothing is written.
	DryRunNoticeFormat = "Would fix mojibake in %s\n"
)
