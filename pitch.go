package arranger

import (
	"errors"
	"fmt"
)

// ErrUnknownPitch is returned when a symbolic pitch token cannot be resolved:
// a percussion token missing from the instrument's pitch map, or a formulaic
// token whose letter or accidental is outside the supported set.
var ErrUnknownPitch = errors.New("unknown pitch")

// PitchResolver converts a symbolic pitch token to a MIDI pitch number in
// [0,127]. The resolution strategy is fixed per instrument: percussion
// instruments have no coherent pitch scale (each token names a distinct drum
// sound), so they use an explicit lookup table, while melodic instruments use
// a uniform arithmetic mapping.
type PitchResolver interface {
	Resolve(token string) (uint8, error)
}

type (
	tablePitches   map[string]uint8
	formulaPitches struct{}
)

// Resolver returns the pitch resolution strategy for the instrument. The
// choice is made once, when the instrument enters the compilation, instead of
// re-inspecting the pitch map presence on every note.
func (ins *Instrument) Resolver() PitchResolver {
	if ins.Percussion() {
		return tablePitches(ins.PitchMap)
	}
	return formulaPitches{}
}

func (m tablePitches) Resolve(token string) (uint8, error) {
	pitch, ok := m[token]
	if !ok {
		return 0, fmt.Errorf("%w %q", ErrUnknownPitch, token)
	}
	return pitch, nil
}

// letterOffsets maps a pitch letter to its pitch-class offset in semitones.
// Only these three letters are defined; the table is deliberately left as is
// even though it cannot express the full diatonic scale.
var letterOffsets = map[string]int{
	"c": 0,
	"e": 4,
	"g": 7,
}

// accidentalOffsets maps an accidental to its offset in semitones. Only the
// empty accidental is defined; sharps and flats are rejected.
var accidentalOffsets = map[string]int{
	"": 0,
}

// Resolve parses the token as <letter><accidental><octaveDigit> and computes
// (octave+1)*12 + letter offset + accidental offset, so that e.g. "c4"
// resolves to middle C (60).
func (formulaPitches) Resolve(token string) (uint8, error) {
	if len(token) < 2 {
		return 0, fmt.Errorf("%w %q", ErrUnknownPitch, token)
	}
	last := token[len(token)-1]
	if last < '0' || last > '9' {
		return 0, fmt.Errorf("%w %q: missing octave digit", ErrUnknownPitch, token)
	}
	octave := int(last - '0')
	letter := token[:1]
	accidental := token[1 : len(token)-1]
	letterOffset, ok := letterOffsets[letter]
	if !ok {
		return 0, fmt.Errorf("%w %q: letter %q is not supported", ErrUnknownPitch, token, letter)
	}
	accidentalOffset, ok := accidentalOffsets[accidental]
	if !ok {
		return 0, fmt.Errorf("%w %q: accidental %q is not supported", ErrUnknownPitch, token, accidental)
	}
	return uint8((octave+1)*12 + letterOffset + accidentalOffset), nil
}
