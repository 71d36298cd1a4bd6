package frontend

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/Masterminds/semver/v3"
	"github.com/web3dev-labs/polkastarter/internal/process"
)

// Validation messages.
const (
	ErrMsgNoFrontDir       = "Frontend directory does not exist"
	ErrMsgNoGit            = "Git is not available"
	ErrMsgNoPackageManager = "Neither yarn nor npm is available"
	WarnMsgNoNode          = "Node.js is not available"
)

// Minimum tool versions below which a warning is recorded.
var minimumVersions = map[string]*semver.Version{
	"git":  semver.MustParse("2.0.0"),
	"node": semver.MustParse("18.0.0"),
}

var versionPattern = regexp.MustCompile(`\d+\.\d+(\.\d+)?`)

// ValidationResult is produced by Validate. Valid is true iff Errors is
// empty; Warnings and Tools are informational.
type ValidationResult struct {
	Valid    bool
	Errors   []string
	Warnings []string
	Tools    []ToolStatus
}

// ToolStatus records one `<tool> --version` probe.
type ToolStatus struct {
	Name      string
	Available bool
	// Version is the parsed version, empty when unavailable or unparseable.
	Version string
}

// Validator checks the prerequisites of Setup without changing anything.
type Validator struct {
	Runner process.Runner
	FS     interface {
		Exists(path string) (bool, error)
	}
	// PackageManager and FallbackPackageManager default to yarn and npm.
	PackageManager         string
	FallbackPackageManager string
}

// Validate checks that projectDir/front exists, that git is available, and
// that the primary or the fallback package manager is available.
func (v *Validator) Validate(ctx context.Context, projectDir string) (*ValidationResult, error) {
	result := &ValidationResult{}

	frontDir := filepath.Join(projectDir, FrontDirName)
	ok, err := v.FS.Exists(frontDir)
	switch {
	case err != nil:
		result.Errors = append(result.Errors, fmt.Sprintf("Frontend directory cannot be checked: %v", err))
	case !ok:
		result.Errors = append(result.Errors, ErrMsgNoFrontDir)
	}

	if git := v.probe(ctx, "git", result); !git.Available {
		result.Errors = append(result.Errors, ErrMsgNoGit)
	}

	primary, fallback := v.packageManagers()
	if pm := v.probe(ctx, primary, result); !pm.Available {
		if fb := v.probe(ctx, fallback, result); !fb.Available {
			result.Errors = append(result.Errors, ErrMsgNoPackageManager)
		}
	}

	if node := v.probe(ctx, "node", result); !node.Available {
		result.Warnings = append(result.Warnings, WarnMsgNoNode)
	}

	result.Valid = len(result.Errors) == 0
	return result, ctx.Err()
}

func (v *Validator) packageManagers() (string, string) {
	primary, fallback := v.PackageManager, v.FallbackPackageManager
	if primary == "" {
		primary = "yarn"
	}
	if fallback == "" {
		fallback = "npm"
	}
	return primary, fallback
}

// probe runs `<name> --version` and records the outcome on result.
func (v *Validator) probe(ctx context.Context, name string, result *ValidationResult) ToolStatus {
	status := ToolStatus{Name: name}

	res, err := v.Runner.Run(ctx, name, []string{"--version"}, process.Options{Quiet: true})
	if err != nil || !res.Success() {
		result.Tools = append(result.Tools, status)
		return status
	}
	status.Available = true

	if ver, ok := parseToolVersion(res.Stdout); ok {
		status.Version = ver.String()
		if floor, ok := minimumVersions[name]; ok && ver.LessThan(floor) {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("%s %s is older than the recommended %s", name, ver, floor))
		}
	}

	result.Tools = append(result.Tools, status)
	return status
}

// parseToolVersion extracts the first dotted version from --version output,
// e.g. "git version 2.43.0" or "v20.11.1".
func parseToolVersion(output string) (*semver.Version, bool) {
	match := versionPattern.FindString(output)
	if match == "" {
		return nil, false
	}
	ver, err := semver.NewVersion(match)
	if err != nil {
		return nil, false
	}
	return ver, true
}
