// Package config manages user-level settings stored at ~/.polkastarter/config.yaml.
// Values can be overridden with POLKASTARTER_* environment variables, e.g.
// POLKASTARTER_SCAFFOLDER_REPO_URL or POLKASTARTER_PACKAGE_MANAGER.
package config
