// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed. Hard defaults cover a missing or partial file.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName              string `yaml:"cli_name"`
	DisplayName          string `yaml:"display_name"`
	Description          string `yaml:"description"`
	HomeDir              string `yaml:"home_dir"`
	EnvPrefix            string `yaml:"env_prefix"`
	GitHubRepo           string `yaml:"github_repo"`
	ScaffolderRepoURL    string `yaml:"scaffolder_repo_url"`
	ScaffolderPackageURL string `yaml:"scaffolder_package_url"`
	ScaffolderTemplate   string `yaml:"scaffolder_template"`
}

func load() {
	once.Do(func() {
		defaults = brand{
			CLIName:              "polkastarter",
			DisplayName:          "Polkadot Cloud Starter",
			Description:          "Scaffold a Polkadot cloud project",
			HomeDir:              ".polkastarter",
			EnvPrefix:            "POLKASTARTER",
			GitHubRepo:           "web3dev-labs/polkastarter",
			ScaffolderRepoURL:    "https://github.com/w3b3d3v/create-polkadot-dapp.git",
			ScaffolderPackageURL: "https://github.com/w3b3d3v/create-polkadot-dapp",
			ScaffolderTemplate:   "react-solidity-hardhat",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "polkastarter").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".polkastarter").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "POLKASTARTER").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GitHubRepo returns the "owner/repo" string of this CLI.
func GitHubRepo() string { load(); return defaults.GitHubRepo }

// ScaffolderRepoURL returns the git URL of the create-polkadot-dapp fork
// that the frontend pipeline clones and builds.
func ScaffolderRepoURL() string { load(); return defaults.ScaffolderRepoURL }

// ScaffolderPackageURL returns the package URL suitable for `npx --package=`.
func ScaffolderPackageURL() string { load(); return defaults.ScaffolderPackageURL }

// ScaffolderTemplate returns the template id passed to the scaffolder.
func ScaffolderTemplate() string { load(); return defaults.ScaffolderTemplate }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("log_level") → "POLKASTARTER_LOG_LEVEL".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
