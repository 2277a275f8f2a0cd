package domain

import "time"

// LogFiles references the captured output of a run.
type LogFiles struct {
	Stdout string `json:"stdout"`
	Stderr string `json:"stderr"`
}

// ProjectResult is the working copy after the run together with its parsed model.
type ProjectResult struct {
	Dir   string        `json:"dir"`
	Model *ProjectModel `json:"model,omitempty"`
}

// CacheResult references the isolated local repository of a run.
type CacheResult struct {
	Dir string `json:"dir"`
}

// PublishedResult bundles everything a test can inspect after a run.
type PublishedResult struct {
	RunID      string           `json:"runId"`
	Key        string           `json:"key"`
	Identity   TestIdentity     `json:"identity"`
	Outcome    ExecutionOutcome `json:"outcome"`
	Log        LogFiles         `json:"log"`
	Project    ProjectResult    `json:"project"`
	Cache      CacheResult      `json:"cache"`
	Plan       Plan             `json:"plan"`
	Executable string           `json:"executable"`
	StartedAt  time.Time        `json:"startedAt"`
	Duration   time.Duration    `json:"duration"`
}

// ResultKind selects one facet of a published result.
type ResultKind uint8

const (
	// KindExecution selects the whole PublishedResult.
	KindExecution ResultKind = iota + 1
	// KindLog selects the LogFiles.
	KindLog
	// KindCache selects the CacheResult.
	KindCache
	// KindProject selects the ProjectResult.
	KindProject
)

// String implements fmt.Stringer.
func (k ResultKind) String() string {
	switch k {
	case KindExecution:
		return "execution"
	case KindLog:
		return "log"
	case KindCache:
		return "cache"
	case KindProject:
		return "project"
	default:
		return "unknown"
	}
}
