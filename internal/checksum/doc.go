// Package checksum fingerprints file content so a run can report exactly
// which bytes it replaced.
//
// # Example Usage
//
//	calculator := checksum.New()
//	before := calculator.Calculate(original)
//	after := calculator.Calculate(repaired)
//
// # Thread Safety
//
// SHA256 is safe for concurrent use by multiple goroutines.
package checksum
