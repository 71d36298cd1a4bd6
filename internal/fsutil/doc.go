// Package fsutil provides the filesystem operations used to lay out a new
// project: existence checks, concurrent directory creation and file writes,
// moving directory contents with overwrite, and best-effort removal for
// cleanup paths.
package fsutil
