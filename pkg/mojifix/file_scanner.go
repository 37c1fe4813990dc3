package mojifix

// FileScanner defines the interface for discovering files to repair.
type FileScanner interface {
	// ScanDirectory recursively scans a directory and returns the matching
	// files in path-component order.
	ScanDirectory(rootPath string) (FileScanResult, error)
}

// FileScanResult contains the results of scanning a directory.
type FileScanResult struct {
	Files []FileMetadata
}
