package process

import (
	"bytes"
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
)

type call struct {
	name string
	args []string
	opts Options
}

// scriptedRunner returns canned results keyed by "<name> <first arg>".
type scriptedRunner struct {
	calls   []call
	results map[string]*Result
	errs    map[string]error
}

func (s *scriptedRunner) Run(_ context.Context, name string, args []string, opts Options) (*Result, error) {
	s.calls = append(s.calls, call{name: name, args: args, opts: opts})
	key := name
	if len(args) > 0 {
		key += " " + args[0]
	}
	if err, ok := s.errs[key]; ok {
		return nil, err
	}
	if res, ok := s.results[key]; ok {
		return res, nil
	}
	return &Result{}, nil
}

func TestStepsClone(t *testing.T) {
	r := &scriptedRunner{}
	var out bytes.Buffer
	s := &Steps{Runner: r, PackageManager: "yarn", Out: &out}

	if _, err := s.Clone(context.Background(), "https://example.com/repo.git", "/p/temp", "/p"); err != nil {
		t.Fatalf("Clone: %v", err)
	}

	want := call{name: "git", args: []string{"clone", "https://example.com/repo.git", "/p/temp"}, opts: Options{Dir: "/p"}}
	if len(r.calls) != 1 || !reflect.DeepEqual(r.calls[0], want) {
		t.Errorf("calls = %+v, want [%+v]", r.calls, want)
	}
	if !strings.Contains(out.String(), "Cloning repository: https://example.com/repo.git") {
		t.Errorf("missing start message:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "Repository cloned successfully!") {
		t.Errorf("missing success message:\n%s", out.String())
	}
}

func TestStepsFailureMessages(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		stderr  string
		run     func(s *Steps) error
		wantMsg string
	}{
		{
			name:   "clone",
			key:    "git clone",
			stderr: "Permission denied",
			run: func(s *Steps) error {
				_, err := s.Clone(context.Background(), "url", "/p/temp", "/p")
				return err
			},
			wantMsg: "Git clone failed: Permission denied",
		},
		{
			name:   "install",
			key:    "yarn install",
			stderr: "Network error",
			run: func(s *Steps) error {
				_, err := s.Install(context.Background(), "/p/temp")
				return err
			},
			wantMsg: "yarn install failed: Network error",
		},
		{
			name:   "build",
			key:    "yarn build",
			stderr: "TypeScript errors",
			run: func(s *Steps) error {
				_, err := s.Build(context.Background(), "/p/temp")
				return err
			},
			wantMsg: "yarn build failed: TypeScript errors",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &scriptedRunner{results: map[string]*Result{
				tt.key: {ExitCode: 1, Stderr: tt.stderr},
			}}
			var out bytes.Buffer
			s := &Steps{Runner: r, PackageManager: "yarn", Out: &out}

			err := tt.run(s)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if err.Error() != tt.wantMsg {
				t.Errorf("error = %q, want %q", err.Error(), tt.wantMsg)
			}
			if strings.Contains(out.String(), "successfully") {
				t.Errorf("success message printed on failure:\n%s", out.String())
			}
		})
	}
}

func TestStepsLaunchFailurePropagates(t *testing.T) {
	launchErr := errors.New("starting yarn: exec: \"yarn\": executable file not found in $PATH")
	r := &scriptedRunner{errs: map[string]error{"yarn install": launchErr}}
	s := &Steps{Runner: r, PackageManager: "yarn", Out: &bytes.Buffer{}}

	_, err := s.Install(context.Background(), "/p/temp")
	if !errors.Is(err, launchErr) {
		t.Errorf("error = %v, want %v", err, launchErr)
	}
}

func TestStepsUseConfiguredPackageManager(t *testing.T) {
	r := &scriptedRunner{}
	s := &Steps{Runner: r, PackageManager: "npm", Out: &bytes.Buffer{}, Quiet: true}

	if _, err := s.Install(context.Background(), "/p/temp"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Build(context.Background(), "/p/temp"); err != nil {
		t.Fatal(err)
	}

	want := []call{
		{name: "npm", args: []string{"install"}, opts: Options{Dir: "/p/temp", Quiet: true}},
		{name: "npm", args: []string{"build"}, opts: Options{Dir: "/p/temp", Quiet: true}},
	}
	if !reflect.DeepEqual(r.calls, want) {
		t.Errorf("calls = %+v, want %+v", r.calls, want)
	}
}
