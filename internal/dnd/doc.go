// Package dnd classifies and routes drops onto the editor workspace.
//
// A drop arrives as an ordered batch of candidates. The handler decides which
// of two mutually exclusive paths applies: a single dirty in-app document
// being transferred between running instances, or one or more external
// filesystem resources being imported. Dirty transfers re-persist the source
// backup under a target identity and never surface failures; external imports
// partition candidates into workspace files and folders, then either open the
// locations directly or synthesize one composite workspace from the folders.
//
// The handler owns only the decision procedure. Filesystem stats, backup
// storage, window and workspace management, untitled identities, and the
// recently-opened registry are injected collaborators; see the interfaces in
// collaborators.go for the contracts they must satisfy.
package dnd
