// =============================================================================
// GL Toolbox - Record Source: File Discovery
// =============================================================================
//
// GL exports arrive either as a single tabular file or as a directory of
// them. Discovery resolves a path argument into the ordered list of files a
// run will ingest. Directories are scanned non-recursively and the result is
// sorted by name, so ingestion order -- and therefore matching outcome -- is
// deterministic for a given directory.
//
// =============================================================================

package source

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ginjaninja78/gl-toolbox/internal/ledger"
)

// tabularExts are the file extensions recognized as GL export files.
var tabularExts = map[string]bool{
	".csv":  true,
	".xlsx": true,
}

// Supported reports whether a path has a recognized tabular extension.
func Supported(path string) bool {
	return tabularExts[strings.ToLower(filepath.Ext(path))]
}

// Discover resolves a path into the ordered list of files to ingest.
//
// PARAMETERS:
//   - path: A single tabular file, or a directory containing them.
//
// RETURNS:
//   - File paths sorted by name. A directory without any tabular files
//     yields an empty list, which downstream surfaces as an empty scope or
//     a failed lookup rather than a format error.
//   - SourceFormatError if the path does not exist or is a file of an
//     unsupported format.
func Discover(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &ledger.SourceFormatError{Path: path, Reason: "path does not exist"}
	}

	if !info.IsDir() {
		if !Supported(path) {
			return nil, &ledger.SourceFormatError{Path: path}
		}
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, &ledger.SourceFormatError{Path: path, Reason: err.Error()}
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if Supported(entry.Name()) {
			files = append(files, filepath.Join(path, entry.Name()))
		}
	}
	sort.Strings(files)

	return files, nil
}

// DiscoverFile resolves a path that must be a single tabular file.
// Used by dedup, which does not accept directories.
func DiscoverFile(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", &ledger.SourceFormatError{Path: path, Reason: "path does not exist"}
	}
	if info.IsDir() {
		return "", &ledger.SourceFormatError{Path: path, Reason: "expected a single file, got a directory"}
	}
	if !Supported(path) {
		return "", &ledger.SourceFormatError{Path: path}
	}
	return path, nil
}
