// Package zone loads master-format zone files from disk and parses them
// into complete records via the zonefile scanner and the rrdata registry.
package zone

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/haukened/rr-codec/internal/dns/rrdata"
	"github.com/haukened/rr-codec/internal/dns/zonefile"
)

// LoadZoneDirectory walks the given directory, loading all files whose
// extension appears in exts, and returns a map of file paths to their
// records. Returns an error as soon as any file fails to parse.
func LoadZoneDirectory(dir string, exts []string) (map[string][]rrdata.Record, error) {
	zones := make(map[string][]rrdata.Record)

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		if !slices.Contains(exts, strings.ToLower(filepath.Ext(path))) {
			return nil
		}
		records, err := LoadZoneFile(path)
		if err != nil {
			return fmt.Errorf("error parsing zone file %s: %w", path, err)
		}
		if len(records) > 0 {
			zones[path] = records
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return zones, nil
}

// LoadZoneFile loads and parses a single master-format zone file at the
// given path. Returns the complete records or the first parse error.
func LoadZoneFile(path string) ([]rrdata.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open zone file %s: %w", path, err)
	}
	defer f.Close()

	var records []rrdata.Record
	sc := zonefile.NewScanner(f)
	for {
		entry, err := sc.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		rec, err := rrdata.ParseRecord(entry.Header, entry.RData)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", entry.Line, err)
		}
		records = append(records, rec)
	}
	return records, nil
}
