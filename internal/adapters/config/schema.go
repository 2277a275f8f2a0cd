package config

// SettingsFile represents the structure of the mvnit.yaml or mvnit.toml settings file.
// Unset fields keep their defaults.
type SettingsFile struct {
	BuildDir     *string           `yaml:"buildDir" toml:"buildDir"`
	ITsDir       *string           `yaml:"itsDir" toml:"itsDir"`
	ComponentDir *string           `yaml:"componentDir" toml:"componentDir"`
	Descriptor   *string           `yaml:"descriptor" toml:"descriptor"`
	Executable   *string           `yaml:"executable" toml:"executable"`
	SearchPath   *string           `yaml:"searchPath" toml:"searchPath"`
	EnvFile      *string           `yaml:"envFile" toml:"envFile"`
	Environment  map[string]string `yaml:"environment" toml:"environment"`
}

// CasesFile represents a test case descriptor file.
type CasesFile struct {
	Version string `yaml:"version" toml:"version"`
	// Class is the default test class of all cases in the file.
	Class string    `yaml:"class" toml:"class"`
	Cases []CaseDTO `yaml:"cases" toml:"cases"`
}

// CaseDTO represents a single test case. Pointer fields distinguish absent
// settings from settings declared empty.
type CaseDTO struct {
	Class            string            `yaml:"class" toml:"class"`
	Method           string            `yaml:"method" toml:"method"`
	Shared           *string           `yaml:"shared" toml:"shared"`
	Source           *string           `yaml:"source" toml:"source"`
	Profiles         *[]string         `yaml:"profiles" toml:"profiles"`
	SystemProperties *[]string         `yaml:"systemProperties" toml:"systemProperties"`
	Options          *[]string         `yaml:"options" toml:"options"`
	Goals            *[]string         `yaml:"goals" toml:"goals"`
	Repository       *RepositoryDTO    `yaml:"repository" toml:"repository"`
	Environment      map[string]string `yaml:"environment" toml:"environment"`
	Expect           string            `yaml:"expect" toml:"expect"`
	Deprecated       *DeprecatedDTO    `yaml:"deprecated" toml:"deprecated"`
}

// RepositoryDTO declares a predefined repository copied into the isolated cache.
type RepositoryDTO struct {
	Dir  *string `yaml:"dir" toml:"dir"`
	Path *string `yaml:"path" toml:"path"`
}

// DeprecatedDTO holds settings in their superseded form.
type DeprecatedDTO struct {
	ActiveProfiles   *[]string `yaml:"activeProfiles" toml:"activeProfiles"`
	Debug            bool      `yaml:"debug" toml:"debug"`
	SystemProperties *[]string `yaml:"systemProperties" toml:"systemProperties"`
	Options          *[]string `yaml:"options" toml:"options"`
	Goals            *[]string `yaml:"goals" toml:"goals"`
}
