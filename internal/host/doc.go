// Package host is the composition root for the Inkwell editor host.
//
// It turns configuration into a wired drop handler: filesystem stat
// resolution, the backup store, untitled identities, the workspace service,
// the window manager, the editor layout, and the SQLite recents registry.
// A flock-based lock on the state directory keeps concurrent hosts from
// sharing backups and recents.
package host
