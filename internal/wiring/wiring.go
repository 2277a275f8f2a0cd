// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/a-nickol/maven-it-extension/internal/adapters/config"
	_ "github.com/a-nickol/maven-it-extension/internal/adapters/fs"
	_ "github.com/a-nickol/maven-it-extension/internal/adapters/locator"
	_ "github.com/a-nickol/maven-it-extension/internal/adapters/logger"
	_ "github.com/a-nickol/maven-it-extension/internal/adapters/pom"
	_ "github.com/a-nickol/maven-it-extension/internal/adapters/shell"
	_ "github.com/a-nickol/maven-it-extension/internal/adapters/store"
	_ "github.com/a-nickol/maven-it-extension/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "github.com/a-nickol/maven-it-extension/internal/app"
	_ "github.com/a-nickol/maven-it-extension/internal/engine/plan"
)
