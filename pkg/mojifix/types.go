package mojifix

import (
	"io/fs"
	"time"
)

// FileMetadata describes a file discovered under the scan root.
type FileMetadata struct {
	// Path is the file as discovered: the scan root joined with RelPath.
	// Scanning "." yields "docs/index.html"; scanning "site" yields
	// "site/docs/index.html". This is the path printed in notices.
	Path string

	// RelPath is relative to the scan root and uses the OS separator.
	RelPath string

	// AbsPath is where the file is read from and written back to.
	AbsPath string

	Name       string
	SizeBytes  int64
	Mode       fs.FileMode
	ModifiedAt time.Time
}

// FileResult records what happened to one scanned file.
type FileResult struct {
	Path string

	// Changed is true when the repaired text differs from the original.
	Changed bool

	// Written is false for unchanged files and for every file in dry-run mode.
	Written bool

	// ChecksumBefore and ChecksumAfter are SHA-256 hex digests of the raw bytes.
	ChecksumBefore string
	ChecksumAfter  string

	// Replacements counts the garbled sequences that were substituted.
	Replacements int
}

// RunResult summarizes a complete pass over a directory tree.
type RunResult struct {
	Root    string
	DryRun  bool
	Scanned int
	Files   []FileResult
}

// FixedCount returns how many scanned files needed repair.
func (r RunResult) FixedCount() int {
	n := 0
	for _, f := range r.Files {
		if f.Changed {
			n++
		}
	}
	return n
}

// RunOptions controls a single Fixer run.
type RunOptions struct {
	// Extensions lists the file suffixes to repair, including the dot.
	Extensions []string

	// Exclude lists directory names that are not descended into.
	Exclude []string

	// DryRun reports what would change without writing anything.
	DryRun bool
}

// DefaultRunOptions repairs *.html files and excludes nothing.
func DefaultRunOptions() RunOptions {
	return RunOptions{
		Extensions: []string{DefaultExtension},
	}
}
