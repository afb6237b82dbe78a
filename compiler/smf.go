package compiler

import (
	"bytes"
	"math"
	"sort"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	arranger "github.com/aczwink/OpenArabicMusicArrangerStyles"
)

const (
	// ticksPerQuarter is the metric resolution of the output file. All
	// duration table values are multiples of 1/4 beat, so every event lands
	// on an exact tick.
	ticksPerQuarter = 96

	// noteVelocity is the fixed velocity of every note on; the notation
	// format carries no dynamics.
	noteVelocity = 100
)

// wireEvent is a note on or off at an absolute tick, before conversion to
// the delta-time encoding of the file format.
type wireEvent struct {
	tick uint32
	off  bool
	key  uint8
}

// EncodeSMF serializes the document as a format 1 standard MIDI file: one
// file track per document track, the header tempo as a meta event on the
// first track, and each track's events converted from absolute beats to
// delta ticks. At equal ticks note offs are ordered before note ons, so
// back-to-back repetitions of the same pitch retrigger instead of being
// swallowed.
func EncodeSMF(doc *arranger.Document) ([]byte, error) {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(ticksPerQuarter)
	if len(doc.Tracks) == 0 {
		var tr smf.Track
		tr.Add(0, smf.MetaTempo(float64(doc.BPM)))
		tr.Close(0)
		s.Add(tr)
	}
	for i := range doc.Tracks {
		track := &doc.Tracks[i]
		var tr smf.Track
		if i == 0 {
			tr.Add(0, smf.MetaTempo(float64(doc.BPM)))
		}
		if track.Name != "" {
			tr.Add(0, smf.MetaTrackSequenceName(track.Name))
		}
		channel := track.Voice.Channel
		if channel < 0 {
			channel = 0
		}
		if track.Voice.Program >= 0 {
			tr.Add(0, midi.ProgramChange(uint8(channel), uint8(track.Voice.Program)))
		}
		wire := make([]wireEvent, 0, 2*len(track.Events))
		for _, ev := range track.Events {
			wire = append(wire,
				wireEvent{tick: beatTicks(ev.Start), key: ev.Pitch},
				wireEvent{tick: beatTicks(ev.Start + ev.Duration), off: true, key: ev.Pitch},
			)
		}
		sort.SliceStable(wire, func(i, j int) bool {
			if wire[i].tick != wire[j].tick {
				return wire[i].tick < wire[j].tick
			}
			return wire[i].off && !wire[j].off
		})
		last := uint32(0)
		for _, w := range wire {
			delta := w.tick - last
			last = w.tick
			if w.off {
				tr.Add(delta, midi.NoteOff(uint8(channel), w.key))
			} else {
				tr.Add(delta, midi.NoteOn(uint8(channel), w.key, noteVelocity))
			}
		}
		tr.Close(0)
		s.Add(tr)
	}
	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func beatTicks(beats float64) uint32 {
	return uint32(math.Round(beats * ticksPerQuarter))
}
