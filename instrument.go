package arranger

// Instrument describes one playable voice. Instruments are loaded once at
// startup from a directory of descriptor files and are immutable thereafter.
type Instrument struct {
	// Type is the tag used to match a track to this instrument. It should be
	// unique within a loaded set; if duplicates exist, the first match in
	// registry key order wins.
	Type string `yaml:"type" json:"type"`

	// Program is the 1-based synthesizer program number. When nil, no program
	// change is issued for tracks using this instrument and the channel
	// counter is not advanced.
	Program *int `yaml:"program,omitempty" json:"program,omitempty"`

	// PitchMap maps symbolic pitch tokens to MIDI pitch numbers. Its presence
	// alone marks the instrument as a percussion voice; when present it always
	// takes precedence over formulaic pitch resolution.
	PitchMap map[string]uint8 `yaml:"pitchMap,omitempty" json:"pitchMap,omitempty"`
}

// Percussion returns whether the instrument is a fixed-pitch percussion
// voice, i.e. whether it carries a pitch map.
func (ins *Instrument) Percussion() bool {
	return ins.PitchMap != nil
}

func (ins *Instrument) Copy() Instrument {
	ret := Instrument{Type: ins.Type}
	if ins.Program != nil {
		program := *ins.Program
		ret.Program = &program
	}
	if ins.PitchMap != nil {
		ret.PitchMap = make(map[string]uint8, len(ins.PitchMap))
		for k, v := range ins.PitchMap {
			ret.PitchMap[k] = v
		}
	}
	return ret
}
