// Package scaffold creates the base project skeleton: the fixed directory
// tree and the boilerplate files (IDE rules, CI workflows, README) rendered
// from embedded templates. Generated workflows are checked against an
// embedded JSON schema and any issue is reported as a warning.
package scaffold
