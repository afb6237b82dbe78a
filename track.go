package arranger

import (
	"errors"
	"fmt"
)

type (
	// Track is one musical part: the type tag of the instrument that plays it
	// and the ordered sequence of notes it loops over. One Track produces
	// exactly one track in the output document.
	Track struct {
		// Name is the base name of the descriptor file the track was loaded
		// from, used for diagnostics and as the output track name. It is not
		// part of the descriptor itself.
		Name string `yaml:"-" json:"-"`

		// Instrument names the Type of the instrument to use.
		Instrument string `yaml:"instrument" json:"instrument"`

		// Notes is the note sequence, in playback order.
		Notes []Note `yaml:"notes" json:"notes"`
	}

	// Note is one timeline slot: a symbolic duration code and either a single
	// symbolic pitch or an ordered collection of pitches sounding
	// simultaneously (a chord). A Note occupies exactly one slot of length
	// Duration regardless of how many pitches it carries.
	Note struct {
		Duration string   `yaml:"duration" json:"duration"`
		Pitch    string   `yaml:"pitch,omitempty" json:"pitch,omitempty"`
		Pitches  []string `yaml:"pitches,omitempty" json:"pitches,omitempty"`
	}
)

// Validate checks that the note carries exactly one of Pitch and Pitches.
func (n *Note) Validate() error {
	if n.Pitch == "" && len(n.Pitches) == 0 {
		return errors.New("note carries neither pitch nor pitches")
	}
	if n.Pitch != "" && len(n.Pitches) > 0 {
		return errors.New("note carries both pitch and pitches")
	}
	return nil
}

// Validate checks that the track names an instrument and that every note is
// well-formed. It does not check that the instrument actually exists; that is
// the compiler's job, as it attaches track context to the error.
func (t *Track) Validate() error {
	if t.Instrument == "" {
		return errors.New("track names no instrument")
	}
	for i := range t.Notes {
		if err := t.Notes[i].Validate(); err != nil {
			return fmt.Errorf("note %v: %w", i, err)
		}
	}
	return nil
}

func (t *Track) Copy() Track {
	notes := make([]Note, len(t.Notes))
	for i, n := range t.Notes {
		notes[i] = n.Copy()
	}
	return Track{Name: t.Name, Instrument: t.Instrument, Notes: notes}
}

func (n *Note) Copy() Note {
	pitches := make([]string, len(n.Pitches))
	copy(pitches, n.Pitches)
	if n.Pitches == nil {
		pitches = nil
	}
	return Note{Duration: n.Duration, Pitch: n.Pitch, Pitches: pitches}
}
