package process

import (
	"context"
	"fmt"
	"io"
)

// Steps runs the clone/install/build stages of the frontend pipeline.
type Steps struct {
	Runner Runner
	// PackageManager is the executable used for install and build (e.g. "yarn").
	PackageManager string
	// Out receives the progress lines.
	Out   io.Writer
	Quiet bool
}

// Clone runs `git clone <repoURL> <targetDir>` from dir.
func (s *Steps) Clone(ctx context.Context, repoURL, targetDir, dir string) (*Result, error) {
	fmt.Fprintf(s.Out, "📦 Cloning repository: %s\n", repoURL)

	res, err := s.Runner.Run(ctx, "git", []string{"clone", repoURL, targetDir}, Options{Dir: dir, Quiet: s.Quiet})
	if err != nil {
		return nil, err
	}
	if err := CheckExit("Git clone", res); err != nil {
		return res, err
	}

	fmt.Fprintln(s.Out, "✅ Repository cloned successfully!")
	return res, nil
}

// Install runs `<pm> install` in dir.
func (s *Steps) Install(ctx context.Context, dir string) (*Result, error) {
	fmt.Fprintln(s.Out, "🔧 Installing dependencies...")

	res, err := s.Runner.Run(ctx, s.PackageManager, []string{"install"}, Options{Dir: dir, Quiet: s.Quiet})
	if err != nil {
		return nil, err
	}
	if err := CheckExit(s.PackageManager+" install", res); err != nil {
		return res, err
	}

	fmt.Fprintln(s.Out, "✅ Dependencies installed successfully!")
	return res, nil
}

// Build runs `<pm> build` in dir.
func (s *Steps) Build(ctx context.Context, dir string) (*Result, error) {
	fmt.Fprintln(s.Out, "🔨 Building the project...")

	res, err := s.Runner.Run(ctx, s.PackageManager, []string{"build"}, Options{Dir: dir, Quiet: s.Quiet})
	if err != nil {
		return nil, err
	}
	if err := CheckExit(s.PackageManager+" build", res); err != nil {
		return res, err
	}

	fmt.Fprintln(s.Out, "✅ Project built successfully!")
	return res, nil
}
