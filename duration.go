package arranger

import (
	"errors"
	"fmt"
)

// ErrUnknownDuration is returned when a note uses a symbolic duration code
// that is not in the duration table. It always aborts document generation;
// notes are never silently skipped.
var ErrUnknownDuration = errors.New("unknown duration")

// durationTable maps the closed set of symbolic duration codes to note
// lengths in beats, anchored at quarter note = 1 beat (a 60 BPM reference,
// independent of the tempo written into the output document header). Dotted
// codes are literal entries; any code added here must keep the dotted value
// at 1.5 times its undotted counterpart.
var durationTable = map[string]float64{
	"2":  2,
	"4":  1,
	"4.": 1.5,
	"8":  0.5,
	"8.": 0.75,
	"16": 0.25,
}

// DurationOf resolves a symbolic duration code to its length in beats.
func DurationOf(code string) (float64, error) {
	beats, ok := durationTable[code]
	if !ok {
		return 0, fmt.Errorf("%w %q", ErrUnknownDuration, code)
	}
	return beats, nil
}
