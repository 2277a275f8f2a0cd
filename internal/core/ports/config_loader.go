package ports

import "github.com/a-nickol/maven-it-extension/internal/core/domain"

// ConfigLoader defines the interface for loading settings and test cases.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// LoadSettings reads the optional settings file from cwd on top of the defaults.
	LoadSettings(cwd string) (domain.Settings, error)

	// LoadCases reads the test case descriptors from path.
	LoadCases(path string) ([]domain.TestCase, error)
}
