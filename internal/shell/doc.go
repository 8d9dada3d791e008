// Package shell maps environments and shell types to literal activation
// command strings and per-shell completion scripts. Shell detection reads
// the SHELL environment variable and falls back to bash.
package shell
