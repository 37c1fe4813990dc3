package scanner

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vvka-141/mojifix/internal/files/filesystem"
	"github.com/vvka-141/mojifix/pkg/mojifix"
)

// Scanner discovers files to repair from a directory tree.
// Scanner is safe for concurrent use by multiple goroutines as long as
// the provided fsProvider is also thread-safe.
type Scanner struct {
	fsProvider filesystem.FileSystemProvider
	extensions []string
	exclude    map[string]bool
}

// NewScanner creates a new file scanner over the OS filesystem.
func NewScanner(opts mojifix.RunOptions) *Scanner {
	return NewScannerWithFS(opts, filesystem.NewOSFileSystem())
}

// NewScannerWithFS creates a new file scanner with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if fsProvider is nil.
func NewScannerWithFS(opts mojifix.RunOptions, fsProvider filesystem.FileSystemProvider) *Scanner {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}

	extensions := opts.Extensions
	if len(extensions) == 0 {
		extensions = []string{mojifix.DefaultExtension}
	}

	exclude := make(map[string]bool, len(opts.Exclude))
	for _, name := range opts.Exclude {
		exclude[name] = true
	}

	return &Scanner{
		fsProvider: fsProvider,
		extensions: extensions,
		exclude:    exclude,
	}
}

// ScanDirectory recursively scans rootPath and returns every file whose name
// ends in one of the configured extensions, sorted by path component.
// Directories are never returned, even when their name matches.
func (s *Scanner) ScanDirectory(rootPath string) (mojifix.FileScanResult, error) {
	dir, err := s.fsProvider.Open(rootPath)
	if err != nil {
		return mojifix.FileScanResult{}, fmt.Errorf("%w: %w", mojifix.ErrRootNotFound, err)
	}

	var files []mojifix.FileMetadata

	err = dir.Walk(func(file filesystem.File, err error) error {
		if err != nil {
			return fmt.Errorf("error walking path: %w", err)
		}

		info := file.Info()
		relPath := file.RelativePath()

		if info.IsDir() {
			if relPath != "." && s.Excluded(info.Name()) {
				return fs.SkipDir
			}
			return nil
		}

		if !s.Matches(info.Name()) {
			return nil
		}

		files = append(files, mojifix.FileMetadata{
			Path:       filepath.Join(rootPath, relPath),
			RelPath:    relPath,
			AbsPath:    file.Path(),
			Name:       info.Name(),
			SizeBytes:  info.Size(),
			Mode:       info.Mode().Perm(),
			ModifiedAt: info.ModTime(),
		})
		return nil
	})
	if err != nil {
		return mojifix.FileScanResult{}, err
	}

	sort.SliceStable(files, func(i, j int) bool {
		return ComparePaths(files[i].RelPath, files[j].RelPath) < 0
	})

	return mojifix.FileScanResult{Files: files}, nil
}

// Matches reports whether a file name carries one of the configured extensions.
// Matching is case-sensitive.
func (s *Scanner) Matches(name string) bool {
	for _, ext := range s.extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// Excluded reports whether a directory name is pruned from the walk.
func (s *Scanner) Excluded(dirName string) bool {
	return s.exclude[dirName]
}

// ComparePaths orders relative paths component by component, so
// "a/b.html" sorts before "a.html" and "a/z.html" before "a0.html".
func ComparePaths(a, b string) int {
	pa := strings.Split(filepath.ToSlash(a), "/")
	pb := strings.Split(filepath.ToSlash(b), "/")

	for i := 0; i < len(pa) && i < len(pb); i++ {
		if c := strings.Compare(pa[i], pb[i]); c != 0 {
			return c
		}
	}
	return len(pa) - len(pb)
}

// Verify Scanner implements the interface at compile time
var _ mojifix.FileScanner = (*Scanner)(nil)
