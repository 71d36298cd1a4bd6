// Package process runs external tools for the scaffolder. Runner launches a
// child process, captures its output while echoing it live, and reports the
// exit status in a Result. The pipeline steps (Clone, Install, Build) wrap a
// Runner with a fixed command line and turn a non-zero exit into an ExitError.
package process
