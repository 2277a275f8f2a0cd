package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/a-nickol/maven-it-extension/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Report is the outcome of one test case of a batch.
type Report struct {
	Case   domain.TestCase
	Result *domain.PublishedResult
	// Err is set when the case could not be executed or its outcome did not
	// match the expectation.
	Err error
}

// Passed reports whether the case ran and matched its expectation.
func (r Report) Passed() bool {
	return r.Err == nil
}

// RunOptions configures a batch run.
type RunOptions struct {
	// Jobs limits the number of concurrently executing groups. Values below 1 mean one.
	Jobs int
	// OnDone is called once per finished case. Calls are serialized.
	OnDone func(Report)
}

// Run executes every case and reports them in input order.
// Cases sharing a project directory run sequentially in input order, all
// other cases run concurrently up to opts.Jobs.
func (a *App) Run(ctx context.Context, settings domain.Settings, cases []domain.TestCase, opts RunOptions) ([]Report, error) {
	if err := checkUniqueKeys(cases); err != nil {
		return nil, err
	}
	if err := a.checkWorkspaces(settings, cases); err != nil {
		return nil, err
	}

	reports := make([]Report, len(cases))
	var mu sync.Mutex
	done := func(i int, r Report) {
		mu.Lock()
		defer mu.Unlock()
		reports[i] = r
		if opts.OnDone != nil {
			opts.OnDone(r)
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.Jobs, 1))

	for _, group := range groupCases(cases) {
		g.Go(func() error {
			for _, i := range group {
				done(i, a.runCase(ctx, settings, cases[i]))
			}
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for _, r := range reports {
		if !r.Passed() {
			failed++
		}
	}
	if failed > 0 {
		return reports, zerr.With(zerr.Wrap(domain.ErrCaseExecutionFailed,
			fmt.Sprintf("%d of %d cases failed", failed, len(cases))), "failed", failed)
	}
	return reports, nil
}

func (a *App) runCase(ctx context.Context, settings domain.Settings, tc domain.TestCase) Report {
	report := Report{Case: tc}
	result, err := a.Execute(ctx, settings, tc)
	if err == nil {
		report.Result = result
		err = Verify(tc, result)
	}
	if err != nil {
		a.logger.Error(err)
		report.Err = err
	}
	return report
}

// groupCases returns case indexes grouped by their project directory.
// Fresh cases form a group of their own.
func groupCases(cases []domain.TestCase) [][]int {
	var groups [][]int
	shared := make(map[string]int)
	for i, tc := range cases {
		name, ok := tc.SharedProject.Get()
		if !ok {
			groups = append(groups, []int{i})
			continue
		}
		key := tc.Identity.ClassPath() + "/" + domain.SanitizeName(name)
		if g, seen := shared[key]; seen {
			groups[g] = append(groups[g], i)
			continue
		}
		shared[key] = len(groups)
		groups = append(groups, []int{i})
	}
	return groups
}

func checkUniqueKeys(cases []domain.TestCase) error {
	seen := make(map[string]struct{}, len(cases))
	for _, tc := range cases {
		key := tc.Identity.Key()
		if _, dup := seen[key]; dup {
			return zerr.With(zerr.Wrap(domain.ErrInvalidCase, "duplicate test case"), "case", key)
		}
		seen[key] = struct{}{}
	}
	return nil
}

// checkWorkspaces rejects cases whose workspaces overlap. Only cases using the
// same shared project may share a directory. Cases that cannot be resolved are
// left to fail on their own.
func (a *App) checkWorkspaces(settings domain.Settings, cases []domain.TestCase) error {
	type owner struct {
		key    string
		shared bool
	}
	owners := make(map[string]owner, len(cases))
	for _, tc := range cases {
		ws, err := a.resolver.Resolve(settings, tc)
		if err != nil {
			continue
		}
		key := tc.Identity.Key()
		dir := filepath.Clean(ws.TestCaseDir)
		if prev, seen := owners[dir]; seen {
			if prev.shared && ws.Shared {
				continue
			}
			return workspaceConflict(prev.key, key, dir)
		}
		for other, prev := range owners {
			if nested(other, dir) || nested(dir, other) {
				return workspaceConflict(prev.key, key, dir)
			}
		}
		owners[dir] = owner{key: key, shared: ws.Shared}
	}
	return nil
}

func workspaceConflict(first, second, dir string) error {
	err := zerr.Wrap(domain.ErrInvalidCase, "test cases resolve to overlapping workspaces")
	err = zerr.With(err, "case", second)
	err = zerr.With(err, "conflicts_with", first)
	return zerr.With(err, "path", dir)
}

// nested reports whether dir lies strictly below parent.
func nested(parent, dir string) bool {
	return strings.HasPrefix(dir, parent+string(filepath.Separator))
}
