package arranger_test

import (
	"strings"
	"testing"
	"testing/fstest"

	arranger "github.com/aczwink/OpenArabicMusicArrangerStyles"
)

func TestLoadInstruments(t *testing.T) {
	fsys := fstest.MapFS{
		"oud.yml": &fstest.MapFile{Data: []byte(
			"type: oud\nprogram: 25\n")},
		"riq.yml": &fstest.MapFile{Data: []byte(
			"type: riq\npitchMap:\n  dum: 36\n  tak: 38\n")},
	}
	registry, err := arranger.LoadInstruments(fsys)
	if err != nil {
		t.Fatalf("LoadInstruments failed: %v", err)
	}
	if len(registry) != 2 {
		t.Fatalf("registry has %v entries, expected 2", len(registry))
	}
	oud, ok := registry["oud"]
	if !ok {
		t.Fatalf("registry is missing the file base name key \"oud\"")
	}
	if oud.Type != "oud" || oud.Program == nil || *oud.Program != 25 || oud.Percussion() {
		t.Errorf("oud loaded as %+v, expected a melodic instrument with program 25", oud)
	}
	riq := registry["riq"]
	if !riq.Percussion() || riq.PitchMap["dum"] != 36 || riq.PitchMap["tak"] != 38 {
		t.Errorf("riq loaded as %+v, expected a percussion instrument", riq)
	}
}

func TestLoadInstrumentsMalformed(t *testing.T) {
	fsys := fstest.MapFS{
		"broken.yml": &fstest.MapFile{Data: []byte("type: [unclosed\n")},
	}
	if _, err := arranger.LoadInstruments(fsys); err == nil {
		t.Fatalf("LoadInstruments succeeded, expected a parse error")
	} else if !strings.Contains(err.Error(), "broken.yml") {
		t.Errorf("error %q does not name the offending file", err)
	}
}

func TestFindByType(t *testing.T) {
	registry := arranger.Registry{
		"oud": {Type: "oud"},
		"ney": {Type: "ney"},
	}
	ins, ok := registry.FindByType("ney")
	if !ok {
		t.Fatalf("FindByType(\"ney\") found nothing")
	}
	if ins.Type != "ney" {
		t.Errorf("FindByType(\"ney\") returned %+v", ins)
	}
	if _, ok := registry.FindByType("qanun"); ok {
		t.Errorf("FindByType(\"qanun\") found an instrument, expected not-found")
	}
}

// With duplicate type tags the first match in registry key order wins.
func TestFindByTypeDuplicates(t *testing.T) {
	program1, program2 := 1, 2
	registry := arranger.Registry{
		"b-oud": {Type: "oud", Program: &program2},
		"a-oud": {Type: "oud", Program: &program1},
	}
	ins, ok := registry.FindByType("oud")
	if !ok {
		t.Fatalf("FindByType(\"oud\") found nothing")
	}
	if ins.Program == nil || *ins.Program != program1 {
		t.Errorf("FindByType(\"oud\") returned %+v, expected the entry keyed \"a-oud\"", ins)
	}
}
