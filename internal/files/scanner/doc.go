// Package scanner discovers the files a run should repair.
//
// The scanner is responsible for:
//   - Recursively walking a directory tree and pruning excluded directories
//   - Selecting files by suffix (".html" unless configured otherwise)
//   - Returning them in path-component order so runs and their output are
//     reproducible
//
// The scanner is designed to be filesystem-agnostic through the use of
// filesystem.FileSystemProvider interface, enabling both production use
// with the OS filesystem and testing with in-memory filesystems.
package scanner
