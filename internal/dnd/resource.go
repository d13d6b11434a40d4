package dnd

import (
	"path/filepath"
	"strings"
)

// Resource schemes understood by drop handling.
const (
	SchemeFile     = "file"
	SchemeUntitled = "untitled"
)

// Resource identifies a location: a filesystem path or an untitled document.
type Resource struct {
	Scheme string
	Path   string
}

// FileResource returns a file-scheme resource for the given path.
func FileResource(path string) Resource {
	return Resource{Scheme: SchemeFile, Path: path}
}

// UntitledResource returns an untitled-scheme resource for the given identity.
func UntitledResource(id string) Resource {
	return Resource{Scheme: SchemeUntitled, Path: id}
}

// IsZero reports whether the resource carries no identity at all.
func (r Resource) IsZero() bool {
	return r.Scheme == "" && r.Path == ""
}

func (r Resource) String() string {
	if r.Scheme == "" || r.Scheme == SchemeFile {
		return r.Path
	}
	return r.Scheme + ":" + r.Path
}

// HasExtension reports whether a file-scheme resource carries the given
// extension. Comparison is case-insensitive; non-file schemes never match.
func (r Resource) HasExtension(ext string) bool {
	if r.Scheme != "" && r.Scheme != SchemeFile {
		return false
	}
	return ext != "" && strings.EqualFold(filepath.Ext(r.Path), ext)
}

// Candidate is one dragged item within a drop.
//
// IsExternal marks items that originate outside the application.
// BackupResource points at previously persisted unsaved content and is only
// ever present on in-app items; an external candidate never carries one.
type Candidate struct {
	Resource       Resource
	IsExternal     bool
	BackupResource *Resource
}

// Batch is the ordered list of candidates for one drop event.
type Batch []Candidate

func (b Batch) hasExternal() bool {
	for _, cand := range b {
		if cand.IsExternal {
			return true
		}
	}
	return false
}

func (b Batch) externals() []Candidate {
	out := make([]Candidate, 0, len(b))
	for _, cand := range b {
		if cand.IsExternal {
			out = append(out, cand)
		}
	}
	return out
}
