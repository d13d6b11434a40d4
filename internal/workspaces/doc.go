// Package workspaces persists composite workspace definitions.
//
// A composite workspace is synthesized when several folders are dropped
// together: its TOML definition lists exactly those folders and lives in its
// own directory under the configured workspaces root. The file extension is
// what drop classification matches on; the drop handler itself never reads a
// definition's contents.
package workspaces
