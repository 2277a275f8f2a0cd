package commands

import (
	"fmt"
	"path/filepath"
	"runtime"
	"time"

	"github.com/a-nickol/maven-it-extension/internal/adapters/telemetry"
	"github.com/a-nickol/maven-it-extension/internal/app"
	"github.com/a-nickol/maven-it-extension/internal/core/domain"
	"github.com/spf13/cobra"
)

func (c *CLI) newRunCmd() *cobra.Command {
	var layout layoutFlags
	cmd := &cobra.Command{
		Use:   "run [case files...]",
		Short: "Run the test cases declared in the given files",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			jobs, _ := cmd.Flags().GetInt("jobs")
			progress, _ := cmd.Flags().GetString("progress")
			timings, _ := cmd.Flags().GetBool("timings")

			settings, cwd, err := c.settings(&layout)
			if err != nil {
				return err
			}

			var cases []domain.TestCase
			for _, file := range args {
				if !filepath.IsAbs(file) {
					file = filepath.Join(cwd, file)
				}
				loaded, err := c.loader.LoadCases(file)
				if err != nil {
					return err
				}
				cases = append(cases, loaded...)
			}
			if len(cases) == 0 {
				c.logger.Warn("no test cases to run")
				return nil
			}

			if timings {
				shutdown := telemetry.Install(telemetry.NewBridge(c.logPhase))
				defer func() { _ = shutdown(cmd.Context()) }()
			}

			bar := newProgress(cmd.ErrOrStderr(), len(cases), progress)
			reports, runErr := c.app.Run(cmd.Context(), settings, cases, app.RunOptions{
				Jobs:   jobs,
				OnDone: bar.done,
			})
			bar.finish()

			if reports != nil {
				renderSummary(cmd.OutOrStdout(), reports, c.results)
			}
			return runErr
		},
	}
	layout.register(cmd, true)
	cmd.Flags().IntP("jobs", "j", runtime.NumCPU(), "Number of test cases run concurrently")
	cmd.Flags().String("progress", "auto", "Progress bar: auto, always or never")
	cmd.Flags().Bool("timings", false, "Log the duration of every pipeline phase")
	return cmd
}

func (c *CLI) logPhase(p telemetry.Phase) {
	if p.Name == "execute" {
		return
	}
	msg := fmt.Sprintf("%s %s took %s", p.Case, p.Name, p.Duration.Round(time.Millisecond))
	if p.Failed() {
		c.logger.Warn(msg + " and failed: " + p.Err)
		return
	}
	c.logger.Info(msg)
}
