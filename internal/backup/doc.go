// Package backup stores unsaved editor content on the filesystem, keyed by
// the owning resource identity.
//
// The store doubles as the drop handler's content resolver and backup writer:
// migrating a dirty drop reads the source backup through Resolve, converts it
// with Parse, and re-persists it with Backup under the target identity.
// Writes are staged and renamed so readers never observe a torn backup.
package backup
