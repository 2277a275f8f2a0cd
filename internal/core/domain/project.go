package domain

// Coordinates identify a project artifact.
type Coordinates struct {
	GroupID    string `json:"groupId"`
	ArtifactID string `json:"artifactId"`
	Version    string `json:"version"`
}

// Parent references the parent of a project descriptor.
type Parent struct {
	GroupID      string `json:"groupId,omitempty"`
	ArtifactID   string `json:"artifactId,omitempty"`
	Version      string `json:"version,omitempty"`
	RelativePath string `json:"relativePath,omitempty"`
}

// ProjectModel is the parsed content of a project descriptor.
type ProjectModel struct {
	ModelVersion string            `json:"modelVersion,omitempty"`
	GroupID      string            `json:"groupId,omitempty"`
	ArtifactID   string            `json:"artifactId"`
	Version      string            `json:"version,omitempty"`
	Packaging    string            `json:"packaging,omitempty"`
	Name         string            `json:"name,omitempty"`
	Parent       *Parent           `json:"parent,omitempty"`
	Modules      []string          `json:"modules,omitempty"`
	Properties   map[string]string `json:"properties,omitempty"`
}

// Coordinates returns the effective coordinates. Group and version are
// inherited from the parent when the project does not declare them.
func (m *ProjectModel) Coordinates() Coordinates {
	c := Coordinates{
		GroupID:    m.GroupID,
		ArtifactID: m.ArtifactID,
		Version:    m.Version,
	}
	if m.Parent != nil {
		if c.GroupID == "" {
			c.GroupID = m.Parent.GroupID
		}
		if c.Version == "" {
			c.Version = m.Parent.Version
		}
	}
	return c
}

// EffectivePackaging returns the declared packaging or "jar".
func (m *ProjectModel) EffectivePackaging() string {
	if m.Packaging == "" {
		return "jar"
	}
	return m.Packaging
}
