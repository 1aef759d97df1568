// Command rr-zonecheck scans a directory of master-format zone files,
// parses every record through the full codec pipeline, and reports the
// first error in each file with its line and column. When a store path is
// configured it also compiles the parsed records into a bbolt-backed store
// for downstream tooling.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/haukened/rr-codec/internal/dns/common/log"
	"github.com/haukened/rr-codec/internal/dns/common/utils"
	"github.com/haukened/rr-codec/internal/dns/config"
	"github.com/haukened/rr-codec/internal/dns/repos/rrstore"
	"github.com/haukened/rr-codec/internal/dns/repos/rrstore/bloom"
	"github.com/haukened/rr-codec/internal/dns/repos/rrstore/bolt"
	"github.com/haukened/rr-codec/internal/dns/repos/rrstore/lru"
	"github.com/haukened/rr-codec/internal/dns/repos/zone"
	"github.com/haukened/rr-codec/internal/dns/rrdata"
)

const (
	version = "0.1.0-dev"
	appName = "rr-zonecheck"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	err = log.Configure(cfg.Env, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logging configuration error: %v\n", err)
		os.Exit(1)
	}

	log.Info(map[string]any{
		"version":    version,
		"env":        cfg.Env,
		"log_level":  cfg.LogLevel,
		"zone_dir":   cfg.ZoneDir,
		"zone_exts":  cfg.ZoneExts,
		"store_path": cfg.StorePath,
	}, "Starting zone check")

	records, failed := checkZones(cfg)
	if failed > 0 {
		log.Error(map[string]any{"failed_files": failed}, "Zone check found errors")
		os.Exit(1)
	}

	if cfg.StorePath != "" {
		if err := compileStore(cfg, records); err != nil {
			log.Fatal(map[string]any{"error": err, "store_path": cfg.StorePath}, "Failed to compile record store")
		}
	}

	log.Info(map[string]any{"records": len(records)}, "Zone check passed")
}

// checkZones parses every zone file under the configured directory,
// logging a diagnostic for each file that fails. It returns all parsed
// records plus the count of failed files.
func checkZones(cfg *config.AppConfig) ([]rrdata.Record, int) {
	var records []rrdata.Record
	failed := 0

	paths, err := listZoneFiles(cfg.ZoneDir, cfg.ZoneExts)
	if err != nil {
		log.Fatal(map[string]any{"error": err, "zone_dir": cfg.ZoneDir}, "Failed to read zone directory")
	}
	if len(paths) == 0 {
		log.Warn(map[string]any{"zone_dir": cfg.ZoneDir}, "No zone files found")
	}

	for _, path := range paths {
		recs, err := zone.LoadZoneFile(path)
		if err != nil {
			failed++
			log.Error(map[string]any{"file": path, "error": err.Error()}, "Zone file failed to parse")
			continue
		}
		warnOrigins(path, recs)
		log.Debug(map[string]any{"file": path, "records": len(recs)}, "Zone file parsed")
		// Canonical presentation on stdout; diagnostics stay on the logger.
		for _, rec := range recs {
			fmt.Println(rrdata.PresentRecord(rec))
		}
		records = append(records, recs...)
	}
	return records, failed
}

// listZoneFiles returns the matching files under dir in sorted order so
// runs are deterministic.
func listZoneFiles(dir string, exts []string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		ext := strings.ToLower(filepath.Ext(path))
		for _, want := range exts {
			if ext == want {
				paths = append(paths, path)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}

// warnOrigins flags owner names that sit on a public suffix, which almost
// always means a zone file was written relative to the wrong origin.
func warnOrigins(path string, records []rrdata.Record) {
	seen := make(map[string]struct{})
	for _, r := range records {
		name := r.Header.Name
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		if utils.IsPublicSuffix(name) {
			log.Warn(map[string]any{"file": path, "name": name}, "Owner name is a public suffix")
		}
	}
}

// compileStore rebuilds the record store from the parsed records.
func compileStore(cfg *config.AppConfig, records []rrdata.Record) error {
	store, err := bolt.New(cfg.StorePath)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer store.Close()

	cache, err := lru.New(cfg.CacheSize)
	if err != nil {
		return fmt.Errorf("building cache: %w", err)
	}

	repo := rrstore.NewRepository(store, cache, bloom.NewFactory(), cfg.BloomFPRate)
	now := time.Now()
	if err := repo.Compile(records, uint64(now.Unix()), now.Unix()); err != nil {
		return fmt.Errorf("compiling records: %w", err)
	}

	stats := repo.RepoStats()
	log.Info(map[string]any{
		"store_path": cfg.StorePath,
		"sets":       stats.Store.SetCount,
		"version":    stats.Store.Version,
	}, "Record store compiled")
	return nil
}
