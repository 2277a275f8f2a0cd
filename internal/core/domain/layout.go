package domain

import "path/filepath"

const (
	// MavenITDirName is the directory below the build output root holding all workspaces.
	MavenITDirName = "maven-it"

	// ProjectDirName is the name of the project copy inside a test case directory.
	ProjectDirName = "project"

	// CacheDirName is the name of the isolated local repository inside a test case directory.
	CacheDirName = "repository"

	// SharedSuffix distinguishes shared project directories and log prefixes.
	SharedSuffix = "-mvn"

	// DefaultLogPrefix is the log file prefix of fresh copy test cases.
	DefaultLogPrefix = "mvn"

	// ReadyMarkerName marks a shared project directory as completely populated.
	ReadyMarkerName = ".mvnit-ready"

	// StdoutLogSuffix is appended to the log prefix for the stdout log file.
	StdoutLogSuffix = "-stdout.log"

	// StderrLogSuffix is appended to the log prefix for the stderr log file.
	StderrLogSuffix = "-stderr.log"

	// ResultFileSuffix is appended to the log prefix for the archived result.
	ResultFileSuffix = "-result.json"

	// DefaultBuildDir is the default build output root.
	DefaultBuildDir = "target"

	// DefaultITsDir is the default root of the integration test projects.
	DefaultITsDir = "src/test/resources-its"

	// DefaultComponentDirName is the directory below the build output root holding
	// the component under test as a repository payload.
	DefaultComponentDirName = "itf-repo"

	// DescriptorFileName is the name of the project descriptor.
	DescriptorFileName = "pom.xml"

	// DefaultExecutable is the name of the build tool executable.
	DefaultExecutable = "mvn"

	// SettingsFileName is the base name of the optional orchestrator settings file.
	SettingsFileName = "mvnit"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultComponentDir returns the default component payload directory for the given build root.
func DefaultComponentDir(buildDir string) string {
	return filepath.Join(buildDir, DefaultComponentDirName)
}
