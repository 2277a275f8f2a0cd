// Package config provides the settings and test case loader for mvnit.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/a-nickol/maven-it-extension/internal/core/domain"
	"github.com/a-nickol/maven-it-extension/internal/core/ports"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// settingsExtensions are tried in order when looking for the settings file.
var settingsExtensions = []string{".yaml", ".yml", ".toml"}

// Loader implements ports.ConfigLoader using YAML or TOML files.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// LoadSettings reads the optional settings file from cwd on top of the defaults.
// Relative directories are resolved against cwd. The search path defaults to
// the PATH of the current process.
func (l *Loader) LoadSettings(cwd string) (domain.Settings, error) {
	settings := domain.DefaultSettings()
	settings.SearchPath = os.Getenv("PATH")

	path, found := findSettingsFile(cwd)
	if found {
		var file SettingsFile
		if err := readAndUnmarshal(path, &file); err != nil {
			return domain.Settings{}, err
		}
		if err := l.applySettings(&settings, &file, cwd); err != nil {
			return domain.Settings{}, err
		}
	}

	settings.BuildDir = resolvePath(cwd, settings.BuildDir)
	settings.ITsDir = resolvePath(cwd, settings.ITsDir)
	settings.ComponentDir = resolvePath(cwd, settings.ComponentDir)
	settings.Descriptor = resolvePath(cwd, settings.Descriptor)
	return settings, nil
}

func (l *Loader) applySettings(s *domain.Settings, file *SettingsFile, cwd string) error {
	componentSet := file.ComponentDir != nil
	setString(&s.BuildDir, file.BuildDir)
	setString(&s.ITsDir, file.ITsDir)
	setString(&s.ComponentDir, file.ComponentDir)
	setString(&s.Descriptor, file.Descriptor)
	setString(&s.Executable, file.Executable)
	setString(&s.SearchPath, file.SearchPath)

	// The component payload follows a relocated build directory unless configured.
	if !componentSet && file.BuildDir != nil {
		s.ComponentDir = domain.DefaultComponentDir(s.BuildDir)
	}

	env := make(map[string]string)
	if file.EnvFile != nil {
		fromFile, err := LoadEnvFile(resolvePath(cwd, *file.EnvFile))
		if err != nil {
			return err
		}
		mergeEnv(env, fromFile)
	}
	mergeEnv(env, file.Environment)
	if len(env) > 0 {
		s.Environment = env
	}

	if file.Executable != nil && strings.ContainsAny(*file.Executable, `/\`) && !filepath.IsAbs(*file.Executable) {
		l.Logger.Warn(fmt.Sprintf("executable %q is neither a bare name nor an absolute path, resolving it against %s", *file.Executable, cwd))
		s.Executable = filepath.Join(cwd, *file.Executable)
	}
	return nil
}

// LoadCases reads the test case descriptors from path.
// Relative source and repository directories are resolved against the directory of path.
func (l *Loader) LoadCases(path string) ([]domain.TestCase, error) {
	var file CasesFile
	if err := readAndUnmarshal(path, &file); err != nil {
		return nil, err
	}
	if len(file.Cases) == 0 {
		l.Logger.Warn(fmt.Sprintf("%s declares no test cases", path))
		return nil, nil
	}

	base := filepath.Dir(path)
	cases := make([]domain.TestCase, 0, len(file.Cases))
	seen := make(map[string]bool, len(file.Cases))
	for i := range file.Cases {
		tc, err := buildCase(&file.Cases[i], file.Class, base)
		if err == nil {
			err = tc.Validate()
		}
		if err != nil {
			return nil, zerr.With(zerr.With(zerr.Wrap(err, "invalid test case"), "file", path), "case", i)
		}
		key := tc.Identity.Key()
		if seen[key] {
			return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrInvalidCase, "duplicate test case"), "key", key), "file", path)
		}
		seen[key] = true
		cases = append(cases, tc)
	}
	return cases, nil
}

func buildCase(dto *CaseDTO, defaultClass, base string) (domain.TestCase, error) {
	class := dto.Class
	if class == "" {
		class = defaultClass
	}

	expect, err := domain.ParseExpectation(dto.Expect)
	if err != nil {
		return domain.TestCase{}, err
	}

	tc := domain.TestCase{
		Identity:    domain.NewTestIdentity(class, dto.Method),
		Environment: dto.Environment,
		Expect:      expect,
	}
	if dto.Shared != nil {
		tc.SharedProject = domain.Some(*dto.Shared)
	}
	if dto.Source != nil {
		tc.SourceDir = domain.Some(resolvePath(base, *dto.Source))
	}
	tc.Profiles.Current = optional(dto.Profiles)
	tc.SystemProperties.Current = optionalProperties(dto.SystemProperties, domain.ParseSystemProperties)
	tc.Options.Current = optional(dto.Options)
	tc.Goals.Current = optional(dto.Goals)

	if dto.Repository != nil {
		if dto.Repository.Dir != nil {
			tc.PredefinedRepository.Dir = domain.Some(resolvePath(base, *dto.Repository.Dir))
		}
		if dto.Repository.Path != nil {
			tc.PredefinedRepository.Path = domain.Some(*dto.Repository.Path)
		}
	}

	if d := dto.Deprecated; d != nil {
		tc.Profiles.Deprecated = optional(d.ActiveProfiles)
		tc.Debug = d.Debug
		tc.SystemProperties.Deprecated = optionalProperties(d.SystemProperties, domain.RawSystemProperties)
		tc.Options.Deprecated = optional(d.Options)
		tc.Goals.Deprecated = optional(d.Goals)
	}
	return tc, nil
}

// LoadEnvFile reads KEY=VALUE pairs from a dotenv file.
func LoadEnvFile(path string) (map[string]string, error) {
	env, err := godotenv.Read(path)
	if err != nil {
		return nil, errors.Join(domain.ErrEnvFileReadFailed, zerr.With(zerr.Wrap(err, "failed to load env file"), "path", path))
	}
	return env, nil
}

func findSettingsFile(cwd string) (string, bool) {
	for _, ext := range settingsExtensions {
		path := filepath.Join(cwd, domain.SettingsFileName+ext)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

func readAndUnmarshal[T any](path string, target *T) error {
	//nolint:gosec // path is provided by user
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Join(domain.ErrConfigReadFailed, zerr.With(zerr.Wrap(err, "failed to read file"), "path", path))
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, target)
	case ".toml":
		err = toml.Unmarshal(data, target)
	default:
		return zerr.With(zerr.Wrap(domain.ErrUnsupportedConfigFormat, "cannot read config"), "path", path)
	}
	if err != nil {
		return errors.Join(domain.ErrConfigParseFailed, zerr.With(zerr.Wrap(err, "failed to parse file"), "path", path))
	}
	return nil
}

func optional(v *[]string) domain.Option[[]string] {
	if v == nil {
		return domain.None[[]string]()
	}
	return domain.Some(*v)
}

func optionalProperties(v *[]string, parse func([]string) []domain.SystemProperty) domain.Option[[]domain.SystemProperty] {
	if v == nil {
		return domain.None[[]domain.SystemProperty]()
	}
	return domain.Some(parse(*v))
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func mergeEnv(dst, src map[string]string) {
	for k, v := range src {
		dst[k] = v
	}
}

func resolvePath(base, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}
