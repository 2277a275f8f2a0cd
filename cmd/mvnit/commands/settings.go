package commands

import (
	"os"
	"path/filepath"

	"github.com/a-nickol/maven-it-extension/internal/adapters/config"
	"github.com/a-nickol/maven-it-extension/internal/core/domain"
	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

func osGetwd() (string, error) {
	return os.Getwd()
}

// layoutFlags are the settings overrides shared by all commands touching workspaces.
type layoutFlags struct {
	buildDir     string
	itsDir       string
	componentDir string
	descriptor   string
	executable   string
	envFile      string
}

func (f *layoutFlags) register(cmd *cobra.Command, full bool) {
	cmd.Flags().StringVar(&f.buildDir, "build-dir", "", "Build output root holding the workspaces (default \"target\")")
	if !full {
		return
	}
	cmd.Flags().StringVar(&f.itsDir, "its-dir", "", "Root of the integration test projects (default \"src/test/resources-its\")")
	cmd.Flags().StringVar(&f.componentDir, "component-dir", "", "Repository payload of the component under test")
	cmd.Flags().StringVar(&f.descriptor, "descriptor", "", "Descriptor of the component under test (default \"pom.xml\")")
	cmd.Flags().StringVar(&f.executable, "mvn", "", "Build tool executable name or absolute path (default \"mvn\")")
	cmd.Flags().StringVar(&f.envFile, "env-file", "", "Dotenv file with variables for every build")
}

// settings loads the settings file of the working directory and applies the flags on top.
func (c *CLI) settings(f *layoutFlags) (domain.Settings, string, error) {
	cwd, err := c.getwd()
	if err != nil {
		return domain.Settings{}, "", zerr.Wrap(err, "failed to determine working directory")
	}

	settings, err := c.loader.LoadSettings(cwd)
	if err != nil {
		return domain.Settings{}, "", err
	}

	abs := func(p string) string {
		if filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(cwd, p)
	}

	if f.buildDir != "" {
		settings.BuildDir = abs(f.buildDir)
		if f.componentDir == "" {
			settings.ComponentDir = domain.DefaultComponentDir(settings.BuildDir)
		}
	}
	if f.itsDir != "" {
		settings.ITsDir = abs(f.itsDir)
	}
	if f.componentDir != "" {
		settings.ComponentDir = abs(f.componentDir)
	}
	if f.descriptor != "" {
		settings.Descriptor = abs(f.descriptor)
	}
	if f.executable != "" {
		settings.Executable = f.executable
	}
	if f.envFile != "" {
		env, err := config.LoadEnvFile(abs(f.envFile))
		if err != nil {
			return domain.Settings{}, "", err
		}
		merged := make(map[string]string, len(settings.Environment)+len(env))
		for k, v := range settings.Environment {
			merged[k] = v
		}
		for k, v := range env {
			merged[k] = v
		}
		settings.Environment = merged
	}
	return settings, cwd, nil
}
