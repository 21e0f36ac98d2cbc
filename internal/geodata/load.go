package geodata

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Supported reports whether Load understands files with extension ext.
func Supported(ext string) bool {
	switch strings.ToLower(ext) {
	case ".geojson", ".json", ".csv", ".kml", ".wkt":
		return true
	}
	return false
}

// Load reads any supported file, choosing the format by extension.
func Load(path string) (Data, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".geojson", ".json":
		return LoadGeoJSON(path)
	case ".csv":
		return LoadCSV(path)
	case ".kml":
		return LoadKML(path)
	case ".wkt":
		b, err := os.ReadFile(path)
		if err != nil {
			return Data{}, err
		}
		return ParseWKT(string(b))
	}
	return Data{}, fmt.Errorf("unsupported file: %s", ext)
}
