// Package build holds build-time information.
package build

import "fmt"

// Version and Commit default to development values and are overwritten by
// linker flags, e.g. -X github.com/a-nickol/maven-it-extension/internal/build.Version=v1.2.0.
var (
	Version = "dev"
	Commit  = "none"
)

// String renders the version line printed by the CLI.
func String() string {
	return fmt.Sprintf("mvnit %s (%s)", Version, Commit)
}
