package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/vvka-141/mojifix/internal/checksum"
	"github.com/vvka-141/mojifix/internal/files/filesystem"
	"github.com/vvka-141/mojifix/internal/mojibake"
	"github.com/vvka-141/mojifix/pkg/mojifix"
)

// Fixer repairs mojibake in every matching file under a root directory.
// Thread-Safety: NOT safe for concurrent Run() calls on the same instance.
type Fixer struct {
	scanner    mojifix.FileScanner
	fsProvider filesystem.FileSystemProvider
	repairer   *mojibake.Repairer
	checksum   checksum.Calculator
	logger     mojifix.Logger
	out        io.Writer
	dryRun     bool
}

// NewFixer creates a Fixer with all dependencies injected.
// Notices go to out, diagnostics to logger.
// Panics on nil dependencies.
func NewFixer(
	scanner mojifix.FileScanner,
	fsProvider filesystem.FileSystemProvider,
	repairer *mojibake.Repairer,
	logger mojifix.Logger,
	out io.Writer,
	dryRun bool,
) *Fixer {
	if scanner == nil {
		panic("scanner cannot be nil")
	}
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if repairer == nil {
		panic("repairer cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	if out == nil {
		panic("out cannot be nil")
	}

	return &Fixer{
		scanner:    scanner,
		fsProvider: fsProvider,
		repairer:   repairer,
		checksum:   checksum.New(),
		logger:     logger,
		out:        out,
		dryRun:     dryRun,
	}
}

// Run scans root and repairs each matching file in order.
//
// The first read, decode or write failure stops the run. Files handled
// before the failure keep their repaired content, and the partial result
// is returned alongside the error.
func (f *Fixer) Run(ctx context.Context, root string) (mojifix.RunResult, error) {
	return f.run(ctx, root, false)
}

// RunSkippingUndecodable is Run, except that a file which is not valid UTF-8
// is logged and skipped instead of ending the run. Read and write failures
// still stop it.
func (f *Fixer) RunSkippingUndecodable(ctx context.Context, root string) (mojifix.RunResult, error) {
	return f.run(ctx, root, true)
}

func (f *Fixer) run(ctx context.Context, root string, skipUndecodable bool) (mojifix.RunResult, error) {
	result := mojifix.RunResult{Root: root, DryRun: f.dryRun}

	scan, err := f.scanner.ScanDirectory(root)
	if err != nil {
		return result, err
	}
	f.logger.Verbose("Found %d matching files under %s", len(scan.Files), root)

	for _, file := range scan.Files {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		fr, err := f.FixFile(file)
		if err != nil {
			if skipUndecodable && errors.Is(err, mojifix.ErrInvalidUTF8) {
				f.logger.Error("%v", err)
				continue
			}
			return result, err
		}
		result.Scanned++
		result.Files = append(result.Files, fr)
	}

	return result, nil
}

// FixPath repairs a single file outside a directory scan.
// path is both read from and printed in the notice.
func (f *Fixer) FixPath(path string) (mojifix.FileResult, error) {
	info, err := f.fsProvider.Stat(path)
	if err != nil {
		return mojifix.FileResult{Path: path}, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return mojifix.FileResult{Path: path}, fmt.Errorf("%s is a directory", path)
	}

	return f.FixFile(mojifix.FileMetadata{
		Path:       path,
		AbsPath:    path,
		Name:       info.Name(),
		SizeBytes:  info.Size(),
		Mode:       info.Mode().Perm(),
		ModifiedAt: info.ModTime(),
	})
}

// FixFile reads one file, repairs it, and writes it back if anything changed.
func (f *Fixer) FixFile(file mojifix.FileMetadata) (mojifix.FileResult, error) {
	fr := mojifix.FileResult{Path: file.Path}

	content, err := f.fsProvider.ReadFile(file.AbsPath)
	if err != nil {
		return fr, fmt.Errorf("failed to read %s: %w", file.Path, err)
	}
	if !utf8.Valid(content) {
		return fr, fmt.Errorf("%s: %w", file.Path, mojifix.ErrInvalidUTF8)
	}

	fr.ChecksumBefore = f.checksum.Calculate(content)

	fixed, replacements := f.repairer.FixCount(string(content))
	fr.Replacements = replacements
	fr.Changed = fixed != string(content)

	if !fr.Changed {
		fr.ChecksumAfter = fr.ChecksumBefore
		f.logger.Verbose("Clean: %s", file.Path)
		return fr, nil
	}

	out := []byte(fixed)
	fr.ChecksumAfter = f.checksum.Calculate(out)

	if f.dryRun {
		fmt.Fprintf(f.out, mojifix.DryRunNoticeFormat, file.Path)
	} else {
		mode := file.Mode
		if mode == 0 {
			mode = 0644
		}
		if err := f.fsProvider.WriteFile(file.AbsPath, out, mode); err != nil {
			return fr, fmt.Errorf("%w: %s: %w", mojifix.ErrWriteFailed, file.Path, err)
		}
		fr.Written = true
		fmt.Fprintf(f.out, mojifix.FixedNoticeFormat, file.Path)
	}

	f.logger.Verbose("%s: %d replacements, sha256 %s -> %s",
		file.Path, replacements, shortSum(fr.ChecksumBefore), shortSum(fr.ChecksumAfter))
	return fr, nil
}

func shortSum(sum string) string {
	if len(sum) > 12 {
		return sum[:12]
	}
	return sum
}
