// Package services runs the repair workflow over a directory tree.
//
// Fixer ties the scanner, the mojibake engine and the filesystem together:
// files are visited in path order, repaired in memory, and written back only
// when the repaired text differs from what was read.
package services
