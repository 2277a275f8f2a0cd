package domain

import (
	"path/filepath"
	"runtime"
)

// Settings holds the orchestrator-wide layout shared by all test cases.
type Settings struct {
	// BuildDir is the build output root. Workspaces live below BuildDir/maven-it.
	BuildDir string
	// ITsDir is the root of the integration test projects.
	ITsDir string
	// ComponentDir holds the component under test as a repository payload.
	ComponentDir string
	// Descriptor is the project descriptor of the component under test.
	// Its coordinates are substituted into goals.
	Descriptor string
	// Executable is the build tool name searched on SearchPath, or an absolute path.
	Executable string
	// SearchPath is a PATH-like list of directories.
	SearchPath string
	// Windows selects Windows executable naming.
	Windows bool
	// Environment is added to the inherited environment of every child process.
	Environment map[string]string
}

// DefaultSettings returns the settings of a conventional project layout.
func DefaultSettings() Settings {
	return Settings{
		BuildDir:     DefaultBuildDir,
		ITsDir:       DefaultITsDir,
		ComponentDir: DefaultComponentDir(DefaultBuildDir),
		Descriptor:   DescriptorFileName,
		Executable:   DefaultExecutable,
		Windows:      runtime.GOOS == "windows",
	}
}

// BaseDir returns the directory holding all workspaces.
func (s Settings) BaseDir() string {
	return filepath.Join(s.BuildDir, MavenITDirName)
}
