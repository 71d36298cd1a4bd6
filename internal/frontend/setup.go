package frontend

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/web3dev-labs/polkastarter/internal/branding"
	"github.com/web3dev-labs/polkastarter/internal/process"
	"go.uber.org/zap"
)

// GeneratorOp names the scaffolder invocation in its failure message.
const GeneratorOp = "create-polkadot-dapp"

// ErrEmptyProjectName is returned when the project name is blank.
var ErrEmptyProjectName = errors.New("project name cannot be empty")

// Filesystem is the subset of fsutil.Helper the pipeline needs.
type Filesystem interface {
	Exists(path string) (bool, error)
	MoveDirectoryContents(src, dst string) error
	SafeRemove(path string)
	CleanupTempFiles(ctx context.Context, paths []string) error
}

// SetupResult is returned by a successful run.
type SetupResult struct {
	Success bool
	// Output is the scaffolder's captured stdout.
	Output string
}

// Stage is a point reached by a frontend setup run.
type Stage int

// Stages of a run, in order.
const (
	StageStart Stage = iota
	StageCloned
	StageInstalled
	StageBuilt
	StageGenerated
	StageReorganized
	StageDone
)

var stageNames = [...]string{"start", "cloned", "installed", "built", "generated", "reorganized", "done"}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return fmt.Sprintf("stage(%d)", int(s))
	}
	return stageNames[s]
}

// Setup runs the frontend pipeline.
type Setup struct {
	Runner process.Runner
	FS     Filesystem
	// Out receives progress lines; defaults to os.Stdout.
	Out io.Writer
	Log *zap.Logger

	// RepoURL, Template and PackageManager default to the branding and
	// config defaults when empty.
	RepoURL        string
	Template       string
	PackageManager string
	// Quiet suppresses the live output of the external tools.
	Quiet bool
}

func (s *Setup) out() io.Writer {
	if s.Out == nil {
		return os.Stdout
	}
	return s.Out
}

func (s *Setup) log() *zap.Logger {
	if s.Log == nil {
		return zap.NewNop()
	}
	return s.Log
}

func (s *Setup) repoURL() string {
	if s.RepoURL == "" {
		return branding.ScaffolderRepoURL()
	}
	return s.RepoURL
}

func (s *Setup) template() string {
	if s.Template == "" {
		return branding.ScaffolderTemplate()
	}
	return s.Template
}

func (s *Setup) packageManager() string {
	if s.PackageManager == "" {
		return "yarn"
	}
	return s.PackageManager
}

// Run clones, installs and builds create-polkadot-dapp under projectDir,
// generates the frontend for projectName into projectDir/front, and
// reorganizes the result. The temporary clone is removed exactly once
// whether the run succeeds or fails.
//
// On failure the error from the failing step is returned unchanged and a
// cleanup failure is only logged. On success a cleanup failure is returned.
func (s *Setup) Run(ctx context.Context, projectDir, projectName string) (*SetupResult, error) {
	name := strings.TrimSpace(projectName)
	if name == "" {
		return nil, ErrEmptyProjectName
	}

	paths := NewPaths(projectDir, name)
	fmt.Fprintln(s.out(), "\n🚀 Setting up frontend with create-polkadot-dapp...")

	stage, res, err := s.generate(ctx, paths, name)
	if err != nil {
		s.log().Warn("frontend setup failed",
			zap.Stringer("stage", stage),
			zap.String("project", paths.ProjectDir),
			zap.Error(err))
		if cerr := s.FS.CleanupTempFiles(ctx, []string{paths.TempRepoDir}); cerr != nil {
			s.log().Warn("cleanup after failed setup", zap.Error(cerr))
		}
		return nil, err
	}

	if err := s.FS.CleanupTempFiles(ctx, []string{paths.TempRepoDir}); err != nil {
		return nil, fmt.Errorf("cleaning up temporary files: %w", err)
	}

	fmt.Fprintln(s.out(), "\n✅ Frontend setup completed successfully!")
	return &SetupResult{Success: true, Output: res.Stdout}, nil
}

// generate drives the run up to StageReorganized and reports the last stage
// reached. It never removes the temporary clone.
func (s *Setup) generate(ctx context.Context, p Paths, name string) (Stage, *process.Result, error) {
	steps := &process.Steps{
		Runner:         s.Runner,
		PackageManager: s.packageManager(),
		Out:            s.out(),
		Quiet:          s.Quiet,
	}

	stage := StageStart
	if _, err := steps.Clone(ctx, s.repoURL(), p.TempRepoDir, p.ProjectDir); err != nil {
		return stage, nil, err
	}
	stage = StageCloned
	if _, err := steps.Install(ctx, p.TempRepoDir); err != nil {
		return stage, nil, err
	}
	stage = StageInstalled
	if _, err := steps.Build(ctx, p.TempRepoDir); err != nil {
		return stage, nil, err
	}
	stage = StageBuilt

	fmt.Fprintln(s.out(), "🎨 Creating frontend project...")
	args := []string{
		p.EntryScript,
		"--project-name", GeneratedProjectName(name),
		"--template", s.template(),
	}
	res, err := s.Runner.Run(ctx, "node", args, process.Options{Dir: p.FrontDir, Quiet: s.Quiet})
	if err != nil {
		return stage, nil, err
	}
	if err := process.CheckExit(GeneratorOp, res); err != nil {
		return stage, nil, err
	}
	fmt.Fprintln(s.out(), "✅ Frontend project created!")
	stage = StageGenerated

	if err := s.Reorganize(p.FrontDir, name); err != nil {
		return stage, nil, err
	}
	return StageReorganized, res, nil
}

// Reorganize flattens the scaffolder output under frontDir: the generated
// frontend sources move up into frontDir, and the bundled contracts folder,
// the generated README and the emptied wrapper directory are removed. Each
// step is skipped when its target is absent. Errors are logged and returned.
func (s *Setup) Reorganize(frontDir, projectName string) error {
	fmt.Fprintln(s.out(), "🔧 Reorganizing frontend structure...")

	if err := s.reorganize(NewLayout(frontDir, projectName), frontDir); err != nil {
		s.log().Warn("failed to reorganize frontend structure", zap.String("front_dir", frontDir), zap.Error(err))
		return err
	}
	return nil
}

func (s *Setup) reorganize(l Layout, frontDir string) error {
	ok, err := s.FS.Exists(l.FrontendSourcePath)
	if err != nil {
		return err
	}
	if ok {
		if err := s.FS.MoveDirectoryContents(l.FrontendSourcePath, frontDir); err != nil {
			return err
		}
		fmt.Fprintln(s.out(), "✅ Frontend files moved to correct location!")
	}

	removals := []struct {
		path string
		msg  string
	}{
		{l.ContractsPath, "✅ Removed duplicate contracts folder!"},
		{l.ReadmePath, "✅ Removed generated README!"},
		{l.CreatedProjectPath, "✅ Cleaned up nested directories!"},
	}
	for _, r := range removals {
		ok, err := s.FS.Exists(r.path)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		s.FS.SafeRemove(r.path)
		fmt.Fprintln(s.out(), r.msg)
	}
	return nil
}
