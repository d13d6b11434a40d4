// Package recents persists the recently-opened registry in SQLite.
//
// The drop handler records external drops here whenever a drop does not open
// a workspace; window openings record themselves through other machinery.
// Entries dedupe on path, keep their last-opened timestamp, and are pruned
// to the configured maximum.
package recents
