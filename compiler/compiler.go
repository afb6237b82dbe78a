// Package compiler translates loaded track and instrument definitions into
// an event document and serializes it as a standard MIDI file.
package compiler

import (
	"fmt"

	arranger "github.com/aczwink/OpenArabicMusicArrangerStyles"
)

const (
	// DefaultBPM is the tempo written into the document header. It is
	// deliberately decoupled from the duration table's 60 BPM reference: note
	// lengths are pre-scaled in beats at composition time and are not
	// reinterpreted against the header tempo.
	DefaultBPM = 120

	// DefaultLoopCount is how many times each track's note pattern is
	// repeated back-to-back along the timeline.
	DefaultLoopCount = 4
)

// Compiler assembles event documents from track definitions, resolving
// instruments against a fixed registry.
type Compiler struct {
	Registry  arranger.Registry
	BPM       int
	LoopCount int
}

// New returns a compiler with the default tempo and loop count.
func New(registry arranger.Registry) *Compiler {
	return &Compiler{Registry: registry, BPM: DefaultBPM, LoopCount: DefaultLoopCount}
}

// Compile lays out all tracks along a shared timeline and returns the
// assembled document. Tracks are processed strictly in the given order: the
// channel allocation accumulator is order-dependent, so the order of the
// tracks decides which channel each one gets. Any unresolved instrument,
// unknown duration or unknown pitch aborts the whole compilation.
func (c *Compiler) Compile(tracks []arranger.Track) (*arranger.Document, error) {
	doc := &arranger.Document{BPM: c.BPM}
	nextChannel := 0
	for _, track := range tracks {
		ins, ok := c.Registry.FindByType(track.Instrument)
		if !ok {
			return nil, fmt.Errorf("track %v: %w %q", track.Name, arranger.ErrUnresolvedInstrument, track.Instrument)
		}
		var voice arranger.Voice
		voice, nextChannel = AllocateVoice(&ins, nextChannel)
		events, err := BuildTimeline(track.Notes, &ins, c.LoopCount)
		if err != nil {
			return nil, fmt.Errorf("track %v: %w", track.Name, err)
		}
		doc.Tracks = append(doc.Tracks, arranger.DocumentTrack{
			Name:   track.Name,
			Voice:  voice,
			Events: events,
		})
	}
	return doc, nil
}

// CompileSMF is a convenience wrapper that compiles the tracks and encodes
// the resulting document in one go.
func (c *Compiler) CompileSMF(tracks []arranger.Track) ([]byte, error) {
	doc, err := c.Compile(tracks)
	if err != nil {
		return nil, err
	}
	return EncodeSMF(doc)
}
