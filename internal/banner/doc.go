// Package banner renders the welcome art shown when the CLI starts.
package banner
