// Package cli defines the Cobra command tree for the polkastarter CLI. The
// root command runs the project creation flow; the remaining files each
// register one subcommand. Commands handle flags, output formatting and user
// interaction and delegate the work to the internal packages.
package cli
