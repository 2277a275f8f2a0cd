package domain

import "strings"

// Plan is the ordered list of command line arguments passed to the build tool.
type Plan []string

// String renders the plan space separated, for logs.
func (p Plan) String() string {
	return strings.Join(p, " ")
}

// Status is the outcome of a build tool run.
type Status uint8

const (
	// StatusSuccessful is reported for exit code 0.
	StatusSuccessful Status = iota
	// StatusFailure is reported for every other exit code.
	StatusFailure
)

// StatusFromExitCode maps an exit code to a Status.
func StatusFromExitCode(code int) Status {
	if code == 0 {
		return StatusSuccessful
	}
	return StatusFailure
}

// String implements fmt.Stringer.
func (s Status) String() string {
	if s == StatusSuccessful {
		return "Successful"
	}
	return "Failure"
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(text []byte) error {
	if string(text) == "Successful" {
		*s = StatusSuccessful
		return nil
	}
	*s = StatusFailure
	return nil
}

// Invocation describes one child process run.
type Invocation struct {
	// Dir is the working directory of the child.
	Dir string
	// Executable is the path of the build tool.
	Executable string
	// Args is the execution plan.
	Args Plan
	// Env holds "KEY=VALUE" entries added to the inherited environment.
	Env []string
	// StdoutLog and StderrLog receive a copy of the respective stream. Empty disables the file.
	StdoutLog string
	StderrLog string
	// Label prefixes forwarded output lines in the orchestrator log.
	Label string
}

// ExecutionOutcome is the collected result of a finished child process.
type ExecutionOutcome struct {
	ExitCode int      `json:"exitCode"`
	Status   Status   `json:"status"`
	Stdout   []string `json:"-"`
	Stderr   []string `json:"-"`
}

// NewExecutionOutcome builds the outcome for an exit code and the captured lines.
func NewExecutionOutcome(exitCode int, stdout, stderr []string) *ExecutionOutcome {
	return &ExecutionOutcome{
		ExitCode: exitCode,
		Status:   StatusFromExitCode(exitCode),
		Stdout:   stdout,
		Stderr:   stderr,
	}
}
