// Package mojibake repairs text that was UTF-8 on disk but got decoded as
// Windows-1252 or ISO-8859-1 somewhere along the way, turning "é" into "Ã©"
// and "’" into "â€™".
//
// The repair is a single forward scan. At each position the scanner tries, in
// order:
//   - a fixed table of known three-character sequences (SpecialSequences)
//   - a two-character window containing 'Ã' or 'Â', re-encoded and decoded as UTF-8
//   - a three-character window containing 'â' or 'ï', handled the same way
//   - copying the current character unchanged
//
// The first rule that applies consumes its window and the scanner never looks
// back. Marker characters only nominate a window; a legitimate two- or
// three-character sequence that happens to contain a marker and also
// round-trips cleanly will be rewritten. That risk is accepted.
//
// The package does no I/O.
package mojibake
