package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// TestCase is the fully resolved configuration of one test invocation.
// Every recognized setting carries an explicit presence flag; settings
// that changed their declaration form keep both sources in a Sourced pair.
type TestCase struct {
	Identity TestIdentity

	// SharedProject names a project copy reused by all methods declaring it.
	SharedProject Option[string]

	// SourceDir overrides the location of the project under test.
	SourceDir Option[string]

	Profiles         Sourced[[]string]
	SystemProperties Sourced[[]SystemProperty]
	Options          Sourced[[]string]
	Goals            Sourced[[]string]

	// Debug is only available from the deprecated source.
	Debug bool

	PredefinedRepository PredefinedRepository

	// Environment is added on top of the inherited process environment.
	Environment map[string]string

	// Expect is the outcome the host asserts after execution.
	Expect Expectation
}

// Shared reports whether the test case runs in shared project mode.
func (tc TestCase) Shared() bool {
	return tc.SharedProject.IsSet()
}

// ProjectName returns the name of the project under test: the shared
// project name in shared mode and the method name otherwise.
func (tc TestCase) ProjectName() string {
	if name, ok := tc.SharedProject.Get(); ok {
		return name
	}
	return tc.Identity.Method
}

// Validate checks the test case for configuration errors.
func (tc TestCase) Validate() error {
	if err := tc.Identity.Validate(); err != nil {
		return err
	}
	if name, ok := tc.SharedProject.Get(); ok && strings.TrimSpace(name) == "" {
		return zerr.Wrap(ErrInvalidCase, "shared project name is empty")
	}
	return nil
}

// SystemProperty is a single -D definition.
type SystemProperty struct {
	Name  string
	Value string
	// raw, when set, is rendered unchanged after -D.
	raw string
}

// RawSystemProperty keeps the definition exactly as declared, so "a=" is
// passed on as "-Da=" rather than "-Da".
func RawSystemProperty(raw string) SystemProperty {
	p := ParseSystemProperty(raw)
	p.raw = raw
	return p
}

// RawSystemProperties keeps each definition as declared.
func RawSystemProperties(raw []string) []SystemProperty {
	props := make([]SystemProperty, 0, len(raw))
	for _, r := range raw {
		props = append(props, RawSystemProperty(r))
	}
	return props
}

// ParseSystemProperty splits a "name=value" definition. A definition
// without '=' yields a property without value.
func ParseSystemProperty(raw string) SystemProperty {
	name, value, _ := strings.Cut(raw, "=")
	return SystemProperty{Name: name, Value: value}
}

// ParseSystemProperties parses each raw definition.
func ParseSystemProperties(raw []string) []SystemProperty {
	props := make([]SystemProperty, 0, len(raw))
	for _, r := range raw {
		props = append(props, ParseSystemProperty(r))
	}
	return props
}

// Argument renders the property as a command line token.
func (p SystemProperty) Argument() string {
	if p.raw != "" {
		return "-D" + p.raw
	}
	if p.Value == "" {
		return "-D" + p.Name
	}
	return "-D" + p.Name + "=" + p.Value
}

// PredefinedRepository describes an optional pre-populated repository
// overlaid onto the isolated cache.
type PredefinedRepository struct {
	// Dir is an explicit directory. It takes precedence over Path.
	Dir Option[string]
	// Path is resolved relative to the project under test.
	Path Option[string]
}

// Expectation is the outcome a test case expects.
type Expectation uint8

const (
	// ExpectAny accepts every outcome.
	ExpectAny Expectation = iota
	// ExpectSuccess requires StatusSuccessful.
	ExpectSuccess
	// ExpectFailure requires StatusFailure.
	ExpectFailure
)

// ParseExpectation parses "", "any", "success" or "failure".
func ParseExpectation(s string) (Expectation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "any":
		return ExpectAny, nil
	case "success", "successful":
		return ExpectSuccess, nil
	case "failure", "failed":
		return ExpectFailure, nil
	default:
		return ExpectAny, zerr.With(zerr.Wrap(ErrInvalidCase, "unknown expectation"), "expect", s)
	}
}

// Matches reports whether status satisfies the expectation.
func (e Expectation) Matches(status Status) bool {
	switch e {
	case ExpectSuccess:
		return status == StatusSuccessful
	case ExpectFailure:
		return status == StatusFailure
	default:
		return true
	}
}

// String implements fmt.Stringer.
func (e Expectation) String() string {
	switch e {
	case ExpectSuccess:
		return "success"
	case ExpectFailure:
		return "failure"
	default:
		return "any"
	}
}
