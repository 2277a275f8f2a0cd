package domain

import "path/filepath"

// Workspace is the isolated directory tree prepared for one test invocation.
type Workspace struct {
	// BaseDir holds the workspaces of all test classes.
	BaseDir string
	// TestCaseDir holds the project copy, the cache and the logs of the test case.
	TestCaseDir string
	// ProjectDir is the working copy of the project under test.
	ProjectDir string
	// CacheDir is the isolated local dependency repository.
	CacheDir string
	// SourceDir is the project under test the working copy is made from.
	SourceDir string
	// LogPrefix prefixes the log and result files inside TestCaseDir.
	LogPrefix string
	// Shared is set for shared project workspaces.
	Shared bool
}

// StdoutLog returns the path of the stdout log file.
func (w Workspace) StdoutLog() string {
	return filepath.Join(w.TestCaseDir, w.LogPrefix+StdoutLogSuffix)
}

// StderrLog returns the path of the stderr log file.
func (w Workspace) StderrLog() string {
	return filepath.Join(w.TestCaseDir, w.LogPrefix+StderrLogSuffix)
}

// ResultFile returns the path of the archived result.
func (w Workspace) ResultFile() string {
	return filepath.Join(w.TestCaseDir, w.LogPrefix+ResultFileSuffix)
}

// Descriptor returns the project descriptor inside the working copy.
func (w Workspace) Descriptor() string {
	return filepath.Join(w.ProjectDir, DescriptorFileName)
}
