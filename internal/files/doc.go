// Package files provides file-related functionality organized into sub-packages.
//
//   - filesystem: Filesystem abstraction interfaces and implementations (OS and in-memory)
//   - scanner: Discovery of the files a run should repair
//
// # Usage
//
//	import (
//	    "github.com/vvka-141/mojifix/internal/files/filesystem"
//	    "github.com/vvka-141/mojifix/internal/files/scanner"
//	)
//
//	fileScanner := scanner.NewScanner(mojifix.DefaultRunOptions())
//	result, err := fileScanner.ScanDirectory(".")
package files
