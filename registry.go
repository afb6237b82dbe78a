package arranger

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v2"
)

// ErrUnresolvedInstrument is returned when a track names an instrument type
// that is not present in the registry.
var ErrUnresolvedInstrument = errors.New("unresolved instrument")

// Registry is the set of loaded instruments, keyed by the base name of the
// descriptor file each instrument was loaded from. The file name key exists
// for diagnostics only; tracks match instruments by the Type field, which is
// an independent key.
type Registry map[string]Instrument

// LoadInstruments walks a directory tree of instrument descriptor files and
// returns the resulting registry. Any file that does not parse as an
// instrument descriptor aborts the load.
func LoadInstruments(fsys fs.FS) (Registry, error) {
	registry := Registry{}
	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("could not read instrument file %v: %w", path, err)
		}
		var ins Instrument
		if err := yaml.UnmarshalStrict(data, &ins); err != nil {
			return fmt.Errorf("could not parse instrument file %v: %w", path, err)
		}
		registry[baseName(path)] = ins
		return nil
	})
	if err != nil {
		return nil, err
	}
	return registry, nil
}

// FindByType returns the first instrument whose Type field equals typeTag,
// scanning the registry in key order so that duplicate type tags resolve
// deterministically. Not finding one is reported to the caller rather than
// raised here, because the caller attaches track context to the error.
func (r Registry) FindByType(typeTag string) (Instrument, bool) {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if ins := r[name]; ins.Type == typeTag {
			return ins, true
		}
	}
	return Instrument{}, false
}

func baseName(path string) string {
	name := filepath.Base(path)
	return name[:len(name)-len(filepath.Ext(name))]
}
