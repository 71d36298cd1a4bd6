package frontend

import (
	"context"
	"strings"
	"sync"

	"github.com/web3dev-labs/polkastarter/internal/process"
)

type runCall struct {
	name string
	args []string
	opts process.Options
}

func (c runCall) key() string {
	if len(c.args) == 0 {
		return c.name
	}
	return c.name + " " + c.args[0]
}

// fakeRunner answers Run calls from canned results keyed by
// "<name> <first arg>". Unknown keys succeed with an empty result.
type fakeRunner struct {
	mu      sync.Mutex
	calls   []runCall
	results map[string]*process.Result
	errs    map[string]error
}

func (f *fakeRunner) Run(_ context.Context, name string, args []string, opts process.Options) (*process.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	c := runCall{name: name, args: append([]string(nil), args...), opts: opts}
	f.calls = append(f.calls, c)
	if err, ok := f.errs[c.key()]; ok {
		return nil, err
	}
	if res, ok := f.results[c.key()]; ok {
		return res, nil
	}
	return &process.Result{}, nil
}

func (f *fakeRunner) keys() []string {
	keys := make([]string, 0, len(f.calls))
	for _, c := range f.calls {
		keys = append(keys, c.key())
	}
	return keys
}

// fakeFS records filesystem calls. Paths in existing are reported present.
type fakeFS struct {
	existing   map[string]bool
	existsErrs map[string]error
	moveErr    error
	cleanupErr error

	moves    [][2]string
	removes  []string
	cleanups [][]string
}

func (f *fakeFS) Exists(path string) (bool, error) {
	if err, ok := f.existsErrs[path]; ok {
		return false, err
	}
	return f.existing[path], nil
}

func (f *fakeFS) MoveDirectoryContents(src, dst string) error {
	f.moves = append(f.moves, [2]string{src, dst})
	return f.moveErr
}

func (f *fakeFS) SafeRemove(path string) {
	f.removes = append(f.removes, path)
}

func (f *fakeFS) CleanupTempFiles(_ context.Context, paths []string) error {
	f.cleanups = append(f.cleanups, append([]string(nil), paths...))
	return f.cleanupErr
}

func generatorKey(projectDir string) string {
	return "node " + NewPaths(projectDir, "demo").EntryScript
}

func joinKeys(keys []string) string { return strings.Join(keys, " | ") }
