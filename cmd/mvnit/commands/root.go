// Package commands implements the CLI commands of mvnit.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/a-nickol/maven-it-extension/internal/app"
	"github.com/a-nickol/maven-it-extension/internal/build"
	"github.com/a-nickol/maven-it-extension/internal/core/domain"
	"github.com/a-nickol/maven-it-extension/internal/core/ports"
	"github.com/spf13/cobra"
)

// CLI represents the command line interface for mvnit.
type CLI struct {
	app     Application
	results ports.ResultStore
	loader  ports.ConfigLoader
	logger  ports.Logger
	rootCmd *cobra.Command
	getwd   func() (string, error)
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, settings domain.Settings, cases []domain.TestCase, opts app.RunOptions) ([]app.Report, error)
	Results(settings domain.Settings) ([]*domain.PublishedResult, error)
	Clean(ctx context.Context, settings domain.Settings) error
}

type jsonSwitcher interface {
	SetJSON(enable bool)
}

// New creates a new CLI instance. Results published by the application are
// read back from results.
func New(a Application, results ports.ResultStore, loader ports.ConfigLoader, log ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "mvnit",
		Short:         "Run build tool integration tests in isolated workspaces",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf("{{.Name}} version {{.Version}} (commit: %s)\n", build.Commit))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().Bool("json-logs", false, "Write logs as JSON lines")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if enabled, _ := cmd.Flags().GetBool("json-logs"); enabled {
			if s, ok := log.(jsonSwitcher); ok {
				s.SetJSON(true)
			}
		}
	}

	c := &CLI{
		app:     a,
		results: results,
		loader:  loader,
		logger:  log,
		rootCmd: rootCmd,
		getwd:   osGetwd,
	}

	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newResultsCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// SetWorkingDir makes the CLI resolve settings against dir. Used for testing.
func (c *CLI) SetWorkingDir(dir string) {
	c.getwd = func() (string, error) { return dir, nil }
}
