package commands

import (
	"bytes"
	"testing"
	"time"

	"github.com/a-nickol/maven-it-extension/internal/adapters/store"
	"github.com/a-nickol/maven-it-extension/internal/app"
	"github.com/a-nickol/maven-it-extension/internal/core/domain"
	"github.com/sebdah/goldie/v2"
)

func TestRenderSummary(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	ok := domain.NewTestIdentity("com.example.BasicIT", "build")
	failed := domain.NewTestIdentity("com.example.BasicIT", "fail")
	broken := domain.NewTestIdentity("com.example.OtherIT", "broken")

	reports := []app.Report{
		{
			Case: domain.TestCase{Identity: ok},
			Result: &domain.PublishedResult{
				Outcome:  domain.ExecutionOutcome{Status: domain.StatusSuccessful},
				Duration: 1500 * time.Millisecond,
			},
		},
		{
			Case: domain.TestCase{Identity: failed},
			Err:  domain.ErrUnexpectedOutcome,
		},
		{
			Case: domain.TestCase{Identity: broken},
			Err:  domain.ErrExecutableNotFound,
		},
	}

	registry := store.NewRegistry()
	registry.Publish(failed.Key(), &domain.PublishedResult{
		Key:      failed.Key(),
		Identity: failed,
		Outcome:  domain.ExecutionOutcome{Status: domain.StatusFailure, ExitCode: 1},
		Log: domain.LogFiles{
			Stdout: "/work/target/maven-it/com/example/BasicIT/fail/mvn-stdout.log",
			Stderr: "/work/target/maven-it/com/example/BasicIT/fail/mvn-stderr.log",
		},
	})

	buf := new(bytes.Buffer)
	renderSummary(buf, reports, registry)

	g := goldie.New(t)
	g.Assert(t, "summary_mixed", buf.Bytes())
}
