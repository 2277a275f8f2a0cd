// Package pom reads project descriptors.
package pom

import (
	"encoding/xml"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/a-nickol/maven-it-extension/internal/core/domain"
	"github.com/a-nickol/maven-it-extension/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ModelReader = (*Reader)(nil)

// Reader parses pom.xml files.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

type xmlParent struct {
	GroupID      string `xml:"groupId"`
	ArtifactID   string `xml:"artifactId"`
	Version      string `xml:"version"`
	RelativePath string `xml:"relativePath"`
}

type xmlProperty struct {
	XMLName xml.Name
	Value   string `xml:",chardata"`
}

type xmlProject struct {
	XMLName      xml.Name      `xml:"project"`
	ModelVersion string        `xml:"modelVersion"`
	GroupID      string        `xml:"groupId"`
	ArtifactID   string        `xml:"artifactId"`
	Version      string        `xml:"version"`
	Packaging    string        `xml:"packaging"`
	Name         string        `xml:"name"`
	Parent       *xmlParent    `xml:"parent"`
	Modules      []string      `xml:"modules>module"`
	Properties   []xmlProperty `xml:"properties>*"`
}

// Read parses the descriptor at path.
func (r *Reader) Read(path string) (*domain.ProjectModel, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return nil, errors.Join(domain.ErrDescriptorReadFailed, zerr.With(zerr.Wrap(err, "failed to open descriptor"), "path", path))
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	model, err := r.Decode(f)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return model, nil
}

// Decode parses a descriptor from src.
func (r *Reader) Decode(src io.Reader) (*domain.ProjectModel, error) {
	var p xmlProject
	if err := xml.NewDecoder(src).Decode(&p); err != nil {
		return nil, errors.Join(domain.ErrDescriptorParseFailed, zerr.Wrap(err, "failed to parse descriptor"))
	}
	if strings.TrimSpace(p.ArtifactID) == "" {
		return nil, zerr.Wrap(domain.ErrDescriptorParseFailed, "descriptor declares no artifactId")
	}

	model := &domain.ProjectModel{
		ModelVersion: strings.TrimSpace(p.ModelVersion),
		GroupID:      strings.TrimSpace(p.GroupID),
		ArtifactID:   strings.TrimSpace(p.ArtifactID),
		Version:      strings.TrimSpace(p.Version),
		Packaging:    strings.TrimSpace(p.Packaging),
		Name:         strings.TrimSpace(p.Name),
	}
	if p.Parent != nil {
		model.Parent = &domain.Parent{
			GroupID:      strings.TrimSpace(p.Parent.GroupID),
			ArtifactID:   strings.TrimSpace(p.Parent.ArtifactID),
			Version:      strings.TrimSpace(p.Parent.Version),
			RelativePath: strings.TrimSpace(p.Parent.RelativePath),
		}
	}
	for _, m := range p.Modules {
		if m = strings.TrimSpace(m); m != "" {
			model.Modules = append(model.Modules, m)
		}
	}
	if len(p.Properties) > 0 {
		model.Properties = make(map[string]string, len(p.Properties))
		for _, prop := range p.Properties {
			model.Properties[prop.XMLName.Local] = strings.TrimSpace(prop.Value)
		}
	}
	return model, nil
}
