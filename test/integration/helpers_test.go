//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir    string // HOME, so no user config leaks in
	BinDir     string // fake git, yarn and node, first on PATH
	ProjectDir string // where the project gets created
}

// fakeTools are POSIX shell stand-ins for the external tools. Setting
// FAKE_FAIL to "clone", "install", "build" or "generate" makes that step
// exit non-zero with a message on stderr.
var fakeTools = map[string]string{
	"git": `#!/bin/sh
if [ "$1" = "--version" ]; then echo "git version 2.43.0"; exit 0; fi
if [ "$1" = "clone" ]; then
  mkdir -p "$3/dist/src/bin"
  if [ "$FAKE_FAIL" = "clone" ]; then echo "fatal: repository not found" >&2; exit 128; fi
  echo "Cloning into '$3'..."
  exit 0
fi
exit 1
`,
	"yarn": `#!/bin/sh
if [ "$1" = "--version" ]; then echo "1.22.19"; exit 0; fi
if [ "$FAKE_FAIL" = "$1" ]; then echo "error Command failed: $1" >&2; exit 1; fi
echo "yarn $1 done"
`,
	"node": `#!/bin/sh
if [ "$1" = "--version" ]; then echo "v20.11.0"; exit 0; fi
if [ "$FAKE_FAIL" = "generate" ]; then echo "Template not found" >&2; exit 1; fi
shift
while [ $# -gt 0 ]; do
  case "$1" in
    --project-name) name="$2"; shift ;;
  esac
  shift
done
mkdir -p "$name/frontend/src" "$name/contracts"
echo '{"name":"'"$name"'"}' > "$name/frontend/package.json"
echo 'export {}' > "$name/frontend/src/main.tsx"
echo "# generated" > README.md
echo "created $name"
`,
}

// setupTestEnv creates isolated temp directories, installs the fake tools
// and points PATH and HOME at them. Env vars are restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake tools are shell scripts")
	}

	env := &testEnv{
		HomeDir:    t.TempDir(),
		BinDir:     t.TempDir(),
		ProjectDir: filepath.Join(t.TempDir(), "my-dapp"),
	}

	for name, script := range fakeTools {
		writeFile(t, filepath.Join(env.BinDir, name), script)
		if err := os.Chmod(filepath.Join(env.BinDir, name), 0755); err != nil {
			t.Fatalf("chmod %s: %v", name, err)
		}
	}

	t.Setenv("HOME", env.HomeDir)
	t.Setenv("PATH", env.BinDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	t.Setenv("FAKE_FAIL", "")

	return env
}

// writeFile creates a file with the given content, creating parent dirs.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected file to exist: %s (%v)", path, err)
		return
	}
	if info.IsDir() {
		t.Errorf("expected file but found directory: %s", path)
	}
}

// assertNotExists fails the test if the path exists.
func assertNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Lstat(path); err == nil {
		t.Errorf("expected path to not exist: %s", path)
	}
}
