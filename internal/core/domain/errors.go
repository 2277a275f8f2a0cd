package domain

import "go.trai.ch/zerr"

var (
	// ErrNotAClassContext is returned when a test case does not name a test class.
	ErrNotAClassContext = zerr.New("integration tests are only supported for classes")

	// ErrNoTestMethod is returned when a test case does not name a test method.
	ErrNoTestMethod = zerr.New("no test method given")

	// ErrInvalidCase is returned when a test case descriptor is malformed.
	ErrInvalidCase = zerr.New("invalid test case")

	// ErrExecutableNotFound is returned when the build tool executable cannot be located.
	ErrExecutableNotFound = zerr.New("could not find the maven executable")

	// ErrUnknownResultKind is returned when a result of an unsupported kind is requested.
	ErrUnknownResultKind = zerr.New("unknown result kind")

	// ErrResultNotFound is returned when no result was published for a test context.
	ErrResultNotFound = zerr.New("no result published for test context")

	// ErrWorkspaceCreateFailed is returned when a workspace directory cannot be created.
	ErrWorkspaceCreateFailed = zerr.New("failed to create workspace directory")

	// ErrWorkspaceCleanFailed is returned when a stale project directory cannot be removed.
	ErrWorkspaceCleanFailed = zerr.New("failed to remove project directory")

	// ErrWorkspaceCopyFailed is returned when copying into the workspace fails.
	ErrWorkspaceCopyFailed = zerr.New("failed to copy into workspace")

	// ErrDescriptorReadFailed is returned when the project descriptor cannot be read.
	ErrDescriptorReadFailed = zerr.New("failed to read project descriptor")

	// ErrDescriptorParseFailed is returned when the project descriptor cannot be parsed.
	ErrDescriptorParseFailed = zerr.New("failed to parse project descriptor")

	// ErrProcessStartFailed is returned when the build tool process cannot be started.
	ErrProcessStartFailed = zerr.New("failed to start build tool process")

	// ErrLogFileFailed is returned when a process log file cannot be written.
	ErrLogFileFailed = zerr.New("failed to write process log")

	// ErrArchiveWriteFailed is returned when a published result cannot be archived.
	ErrArchiveWriteFailed = zerr.New("failed to archive result")

	// ErrArchiveReadFailed is returned when an archived result cannot be read.
	ErrArchiveReadFailed = zerr.New("failed to read archived result")

	// ErrConfigReadFailed is returned when a configuration file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when a configuration file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrUnsupportedConfigFormat is returned for configuration files with an unknown extension.
	ErrUnsupportedConfigFormat = zerr.New("unsupported config format, expected .yaml, .yml or .toml")

	// ErrEnvFileReadFailed is returned when a dotenv file cannot be loaded.
	ErrEnvFileReadFailed = zerr.New("failed to read env file")

	// ErrUnexpectedOutcome is returned when a case finishes with a status other than expected.
	ErrUnexpectedOutcome = zerr.New("unexpected execution outcome")

	// ErrCaseExecutionFailed is returned when one or more cases could not be executed.
	ErrCaseExecutionFailed = zerr.New("test case execution failed")
)
