// Package frontend populates a project's front/ directory with the output of
// create-polkadot-dapp.
//
// Setup clones the scaffolder, installs and builds it, runs it against the
// project's front directory, and flattens the generated tree into front/.
// The temporary clone is removed at the end of every run, successful or not.
// Validator is a read-only check of the prerequisites for that pipeline.
//
// Two runs against the same project directory at the same time share the
// same temporary and generated paths; callers must not do that.
package frontend
