// Package gamescanner discovers playable maps in the maps directory.
package gamescanner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// MapExt is the extension of Tiled JSON maps
const MapExt = ".tmj"

// MapEntry represents a discoverable map in the maps directory
type MapEntry struct {
	Name string // Display name (file name without extension)
	Path string // Path to the map file, including the maps directory
}

// ScanMaps scans the maps directory for Tiled JSON maps.
// Returns one MapEntry per map, sorted by name.
func ScanMaps(mapsPath string) ([]MapEntry, error) {
	entries, err := os.ReadDir(mapsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read maps directory: %w", err)
	}

	var maps []MapEntry
	for _, entry := range entries {
		// Skip directories and hidden files
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		if !strings.EqualFold(filepath.Ext(name), MapExt) {
			continue
		}

		maps = append(maps, MapEntry{
			Name: strings.TrimSuffix(name, filepath.Ext(name)),
			Path: filepath.Join(mapsPath, name),
		})
	}

	sort.Slice(maps, func(i, j int) bool { return maps[i].Name < maps[j].Name })
	return maps, nil
}

// Find returns the entry with the given name
func Find(maps []MapEntry, name string) (MapEntry, bool) {
	for _, m := range maps {
		if m.Name == name {
			return m, true
		}
	}
	return MapEntry{}, false
}

// Names lists the map names, for error messages and flag help
func Names(maps []MapEntry) []string {
	names := make([]string, len(maps))
	for i, m := range maps {
		names[i] = m.Name
	}
	return names
}
