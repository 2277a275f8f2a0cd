package plan

import (
	"strings"

	"github.com/a-nickol/maven-it-extension/internal/core/domain"
)

const (
	// GroupIDKey is replaced by the group id of the component under test.
	GroupIDKey = "project.groupId"
	// ArtifactIDKey is replaced by the artifact id of the component under test.
	ArtifactIDKey = "project.artifactId"
	// VersionKey is replaced by the version of the component under test.
	VersionKey = "project.version"
)

// Placeholder returns key in placeholder syntax, e.g. "${project.version}".
func Placeholder(key string) string {
	return "${" + key + "}"
}

// Filter replaces the coordinate placeholders in every goal. Unknown
// placeholders are left untouched. goals is not modified.
func Filter(goals []string, c domain.Coordinates) []string {
	r := strings.NewReplacer(
		Placeholder(GroupIDKey), c.GroupID,
		Placeholder(ArtifactIDKey), c.ArtifactID,
		Placeholder(VersionKey), c.Version,
	)
	filtered := make([]string, len(goals))
	for i, goal := range goals {
		filtered[i] = r.Replace(goal)
	}
	return filtered
}
