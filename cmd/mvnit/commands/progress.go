package commands

import (
	"io"

	"github.com/a-nickol/maven-it-extension/internal/app"
	"github.com/a-nickol/maven-it-extension/internal/ui/output"
	"github.com/schollz/progressbar/v3"
)

// progress advances a progress bar per finished case. The zero value is disabled.
type progress struct {
	bar *progressbar.ProgressBar
}

// newProgress creates a progress bar on w. In "auto" mode it is only shown
// when w is a terminal.
func newProgress(w io.Writer, total int, mode string) *progress {
	switch mode {
	case "never":
		return &progress{}
	case "always":
	default:
		if !output.IsTerminal(w) {
			return &progress{}
		}
	}

	return &progress{bar: progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("running test cases"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)}
}

func (p *progress) done(app.Report) {
	if p.bar != nil {
		_ = p.bar.Add(1)
	}
}

func (p *progress) finish() {
	if p.bar != nil {
		_ = p.bar.Finish()
	}
}
