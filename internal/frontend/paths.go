package frontend

import "path/filepath"

// Directory and file names of the frontend layout.
const (
	FrontDirName    = "front"
	TempRepoDirName = "temp-create-polkadot-dapp"
	GeneratedSuffix = "-frontend"
	readmeName      = "README.md"
)

// entryScript is the scaffolder's CLI entry point relative to its clone.
var entryScript = filepath.Join("dist", "src", "bin", "main.js")

// Paths holds every location the frontend pipeline touches. It is a pure
// function of the project directory and name.
type Paths struct {
	ProjectDir string
	FrontDir   string
	// TempRepoDir is the scaffolder checkout owned by a single run.
	TempRepoDir string
	EntryScript string
	Layout
}

// Layout is the part of Paths derived from the front directory alone: where
// the scaffolder writes its output and what the reorganizer cleans up.
type Layout struct {
	// CreatedProjectPath is the wrapper directory the scaffolder generates.
	CreatedProjectPath string
	// FrontendSourcePath holds the real frontend sources inside the wrapper.
	FrontendSourcePath string
	ContractsPath      string
	ReadmePath         string
}

// NewPaths derives the pipeline paths for projectName under projectDir.
func NewPaths(projectDir, projectName string) Paths {
	frontDir := filepath.Join(projectDir, FrontDirName)
	tempRepoDir := filepath.Join(projectDir, TempRepoDirName)
	return Paths{
		ProjectDir:  projectDir,
		FrontDir:    frontDir,
		TempRepoDir: tempRepoDir,
		EntryScript: filepath.Join(tempRepoDir, entryScript),
		Layout:      NewLayout(frontDir, projectName),
	}
}

// NewLayout derives the generated-tree paths under frontDir.
func NewLayout(frontDir, projectName string) Layout {
	created := filepath.Join(frontDir, GeneratedProjectName(projectName))
	return Layout{
		CreatedProjectPath: created,
		FrontendSourcePath: filepath.Join(created, "frontend"),
		ContractsPath:      filepath.Join(created, "contracts"),
		ReadmePath:         filepath.Join(frontDir, readmeName),
	}
}

// GeneratedProjectName is the --project-name given to the scaffolder.
func GeneratedProjectName(projectName string) string {
	return projectName + GeneratedSuffix
}
