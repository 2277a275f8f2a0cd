// Package locator finds the build tool executable on a search path.
package locator

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/a-nickol/maven-it-extension/internal/core/domain"
	"github.com/a-nickol/maven-it-extension/internal/core/ports"
)

var _ ports.ExecutableLocator = (*Finder)(nil)

// windowsExtensions are tried in order on Windows-like platforms.
var windowsExtensions = []string{".cmd", ".bat"}

// Locator searches an ordered list of directories for an executable.
type Locator struct {
	dirs    []string
	windows bool
}

// New creates a Locator for a PATH-like search string.
// An empty search string yields a Locator that never finds anything.
func New(searchPath string, windows bool) *Locator {
	var dirs []string
	for _, dir := range filepath.SplitList(searchPath) {
		if dir = strings.TrimSpace(dir); dir != "" {
			dirs = append(dirs, dir)
		}
	}
	return &Locator{dirs: dirs, windows: windows}
}

// FromEnvironment creates a Locator for the PATH of the current process.
// A missing PATH is treated as empty.
func FromEnvironment(windows bool) *Locator {
	path, _ := os.LookupEnv("PATH")
	return New(path, windows)
}

// Find returns the first candidate for name that exists and is usable.
func (l *Locator) Find(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	for _, dir := range l.dirs {
		for _, candidate := range l.candidates(name) {
			path := filepath.Join(dir, candidate)
			if l.usable(path) {
				return path, true
			}
		}
	}
	return "", false
}

func (l *Locator) candidates(name string) []string {
	if !l.windows {
		return []string{name}
	}
	names := make([]string, 0, len(windowsExtensions))
	for _, ext := range windowsExtensions {
		names = append(names, name+ext)
	}
	return names
}

// usable reports whether path is a regular file that is executable on
// Unix-like platforms or readable on Windows.
func (l *Locator) usable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	if l.windows {
		f, err := os.Open(path) //nolint:gosec // probing a search path entry
		if err != nil {
			return false
		}
		_ = f.Close()
		return true
	}
	return info.Mode()&0o111 != 0
}

// Finder implements ports.ExecutableLocator on top of Locator.
type Finder struct{}

// NewFinder creates a new Finder.
func NewFinder() *Finder {
	return &Finder{}
}

// Locate resolves settings.Executable. Absolute paths are checked directly,
// bare names are searched on settings.SearchPath.
func (f *Finder) Locate(settings domain.Settings) (string, bool) {
	name := settings.Executable
	if name == "" {
		name = domain.DefaultExecutable
	}
	if filepath.IsAbs(name) {
		l := &Locator{windows: settings.Windows}
		if l.usable(name) {
			return name, true
		}
		return "", false
	}
	return New(settings.SearchPath, settings.Windows).Find(name)
}
