// Package plan assembles the build tool command line of a test case.
package plan

import (
	"strings"
	"sync"

	"github.com/a-nickol/maven-it-extension/internal/core/domain"
	"github.com/a-nickol/maven-it-extension/internal/core/ports"
)

const (
	// LocalRepositoryFlag points the build tool at the isolated cache.
	LocalRepositoryFlag = "-Dmaven.repo.local="
	// ProfilesFlag activates a comma separated list of profiles.
	ProfilesFlag = "-P"
	// DebugFlag enables debug output of the build tool.
	DebugFlag = "--debug"
	// BatchModeFlag runs the build tool non-interactively.
	BatchModeFlag = "--batch-mode"
	// ShowVersionFlag prints the build tool version before the build.
	ShowVersionFlag = "--show-version"
	// ErrorsFlag prints stack traces of build errors.
	ErrorsFlag = "--errors"
	// DefaultGoal is run when a test case declares no goals.
	DefaultGoal = "package"
)

// DefaultOptions returns the options used when a test case declares none.
func DefaultOptions() []string {
	return []string{BatchModeFlag, ShowVersionFlag, ErrorsFlag}
}

type axis int

const (
	axisProfiles axis = iota
	axisDebug
	axisSystemProperties
	axisOptions
	axisGoals
	axisCount
)

var deprecationWarnings = [axisCount]string{
	axisProfiles:         "test cases use the deprecated activeProfiles setting, declare profiles instead",
	axisDebug:            "test cases use the deprecated debug setting, declare the --debug option instead",
	axisSystemProperties: "test cases use the deprecated systemProperties setting, declare systemProperties at case level instead",
	axisOptions:          "test cases use the deprecated options setting, declare options at case level instead",
	axisGoals:            "test cases use the deprecated goals setting, declare goals at case level instead",
}

// Builder turns a test case into an execution plan.
// Each deprecation warning is logged at most once per Builder.
type Builder struct {
	logger ports.Logger
	warned [axisCount]sync.Once
}

// NewBuilder creates a new Builder.
func NewBuilder(logger ports.Logger) *Builder {
	return &Builder{logger: logger}
}

// Build assembles the arguments in their fixed order: local repository,
// profiles, debug, system properties, options, goals.
func (b *Builder) Build(tc domain.TestCase, ws domain.Workspace, c domain.Coordinates) domain.Plan {
	args := domain.Plan{LocalRepositoryFlag + ws.CacheDir}

	if profiles, src := tc.Profiles.Resolve(nil); src != domain.SourceDefault {
		b.noteSource(axisProfiles, src)
		if len(profiles) > 0 {
			args = append(args, ProfilesFlag+strings.Join(profiles, ","))
		}
	}

	if tc.Debug {
		b.noteSource(axisDebug, domain.SourceDeprecated)
		args = append(args, DebugFlag)
	}

	props, src := tc.SystemProperties.Resolve(nil)
	b.noteSource(axisSystemProperties, src)
	for _, p := range props {
		args = append(args, p.Argument())
	}

	options, src := tc.Options.Resolve(DefaultOptions())
	b.noteSource(axisOptions, src)
	args = append(args, options...)

	goals, src := tc.Goals.Resolve([]string{DefaultGoal})
	b.noteSource(axisGoals, src)
	args = append(args, Filter(goals, c)...)

	return args
}

func (b *Builder) noteSource(a axis, src domain.Source) {
	if src != domain.SourceDeprecated || b.logger == nil {
		return
	}
	b.warned[a].Do(func() {
		b.logger.Warn(deprecationWarnings[a])
	})
}
