package arranger

import (
	"encoding/json"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// LoadTracks walks a directory tree of track descriptor files and returns the
// loaded tracks in lexical path order. The walk order is the canonical track
// processing order: channel allocation depends on it, so it has to be
// deterministic. Each descriptor may be either .json or .yml; like the
// instrument loader, a file that parses as neither aborts the load.
func LoadTracks(fsys fs.FS) ([]Track, error) {
	var tracks []Track
	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("could not read track file %v: %w", path, err)
		}
		var track Track
		if errJSON := json.Unmarshal(data, &track); errJSON != nil {
			if errYaml := yaml.Unmarshal(data, &track); errYaml != nil {
				return fmt.Errorf("track file %v could not be parsed as .json (%v) or .yml (%v)", path, errJSON, errYaml)
			}
		}
		track.Name = baseName(path)
		if err := track.Validate(); err != nil {
			return fmt.Errorf("track file %v: %w", path, err)
		}
		tracks = append(tracks, track)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tracks, nil
}
