package commands

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/a-nickol/maven-it-extension/internal/app"
	"github.com/a-nickol/maven-it-extension/internal/core/domain"
	"github.com/a-nickol/maven-it-extension/internal/core/ports"
	"github.com/a-nickol/maven-it-extension/internal/ui/output"
	"github.com/a-nickol/maven-it-extension/internal/ui/style"
)

// renderSummary writes one line per case followed by the totals.
// Case details are read back from the published results, failed cases also
// point at their output log.
func renderSummary(w io.Writer, reports []app.Report, results ports.ResultStore) {
	r := output.Renderer(w)
	passedStyle := style.Passed.Renderer(r)
	failedStyle := style.Failed.Renderer(r)
	mutedStyle := style.Muted.Renderer(r)

	var b strings.Builder
	b.WriteString(style.Title.Renderer(r).Render("Test cases") + "\n")

	passed := 0
	for _, rep := range reports {
		key := rep.Case.Identity.Key()
		result := publishedResult(results, rep)
		if rep.Passed() {
			passed++
			b.WriteString(passedStyle.Render(style.Check) + " " + key)
			if result != nil {
				b.WriteString(mutedStyle.Render(fmt.Sprintf(" (%s, %s)", result.Outcome.Status, result.Duration.Round(time.Millisecond))))
			}
			b.WriteString("\n")
			continue
		}
		b.WriteString(failedStyle.Render(style.Cross) + " " + key)
		if result != nil {
			b.WriteString(mutedStyle.Render(fmt.Sprintf(" (%s, exit code %d)", result.Outcome.Status, result.Outcome.ExitCode)))
		}
		b.WriteString("\n")
		if logs, ok := publishedLogs(results, key); ok {
			b.WriteString(mutedStyle.Render("  stdout: "+logs.Stdout) + "\n")
		}
	}

	failed := len(reports) - passed
	totals := fmt.Sprintf("%d passed, %d failed", passed, failed)
	if failed > 0 {
		totals = failedStyle.Render(totals)
	} else {
		totals = passedStyle.Render(totals)
	}
	b.WriteString("\n" + style.Summary.Renderer(r).Render(totals) + "\n")

	_, _ = io.WriteString(w, b.String())
}

// publishedResult returns the result published for the case of rep, or the
// result attached to rep when nothing was published.
func publishedResult(results ports.ResultStore, rep app.Report) *domain.PublishedResult {
	if results != nil {
		if result, err := results.ExecutionResult(rep.Case.Identity.Key()); err == nil {
			return result
		}
	}
	return rep.Result
}

func publishedLogs(results ports.ResultStore, key string) (domain.LogFiles, bool) {
	if results == nil {
		return domain.LogFiles{}, false
	}
	logs, err := results.Log(key)
	if err != nil || logs.Stdout == "" {
		return domain.LogFiles{}, false
	}
	return logs, true
}
