package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/viper"
	"github.com/web3dev-labs/polkastarter/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized configuration keys.
const (
	KeyScaffolderRepoURL      = "scaffolder.repo_url"
	KeyScaffolderTemplate     = "scaffolder.template"
	KeyPackageManager         = "package_manager"
	KeyFallbackPackageManager = "fallback_package_manager"
	KeyLogLevel               = "log_level"
)

// Defaults for keys that are not tied to branding.
const (
	DefaultPackageManager         = "yarn"
	DefaultFallbackPackageManager = "npm"
	DefaultLogLevel               = "warn"
)

// Keys returns every recognized key in sorted order.
func Keys() []string {
	keys := []string{
		KeyScaffolderRepoURL,
		KeyScaffolderTemplate,
		KeyPackageManager,
		KeyFallbackPackageManager,
		KeyLogLevel,
	}
	sort.Strings(keys)
	return keys
}

// Dir returns the path to the config directory (~/.polkastarter/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key, falling back to the built-in default.
func Get(key string) string {
	if v := viper.GetString(key); v != "" {
		return v
	}
	return defaultFor(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if !isKnown(key) {
		return fmt.Errorf("unknown config key %q (known keys: %s)", key, strings.Join(Keys(), ", "))
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// ScaffolderRepoURL returns the git URL the frontend pipeline clones.
func ScaffolderRepoURL() string { return Get(KeyScaffolderRepoURL) }

// ScaffolderTemplate returns the template id passed to the scaffolder.
func ScaffolderTemplate() string { return Get(KeyScaffolderTemplate) }

// PackageManager returns the primary package manager (yarn by default).
func PackageManager() string { return Get(KeyPackageManager) }

// FallbackPackageManager returns the package manager tried when the primary
// one is unavailable.
func FallbackPackageManager() string { return Get(KeyFallbackPackageManager) }

// LogLevel returns the diagnostic log level name.
func LogLevel() string { return Get(KeyLogLevel) }

func defaultFor(key string) string {
	switch key {
	case KeyScaffolderRepoURL:
		return branding.ScaffolderRepoURL()
	case KeyScaffolderTemplate:
		return branding.ScaffolderTemplate()
	case KeyPackageManager:
		return DefaultPackageManager
	case KeyFallbackPackageManager:
		return DefaultFallbackPackageManager
	case KeyLogLevel:
		return DefaultLogLevel
	}
	return ""
}

func isKnown(key string) bool {
	for _, k := range Keys() {
		if k == key {
			return true
		}
	}
	return false
}
