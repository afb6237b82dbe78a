package compiler

import (
	"fmt"

	arranger "github.com/aczwink/OpenArabicMusicArrangerStyles"
)

// BuildTimeline replays the note sequence loopCount times back-to-back and
// returns the resulting note events. A running cursor starts at 0 and
// advances by each note's duration exactly once per note; a chord entry emits
// one event per pitch, all sharing the same start time and duration, but
// still advances the cursor only once. Loops are plain concatenation along
// the timeline, with no gap and no variation between repetitions.
func BuildTimeline(notes []arranger.Note, ins *arranger.Instrument, loopCount int) ([]arranger.NoteEvent, error) {
	resolver := ins.Resolver()
	var events []arranger.NoteEvent
	t := 0.0
	for loop := 0; loop < loopCount; loop++ {
		for i := range notes {
			note := &notes[i]
			duration, err := arranger.DurationOf(note.Duration)
			if err != nil {
				return nil, err
			}
			tokens := note.Pitches
			if note.Pitch != "" {
				tokens = []string{note.Pitch}
			}
			for _, token := range tokens {
				pitch, err := resolver.Resolve(token)
				if err != nil {
					return nil, fmt.Errorf("instrument %v: %w", ins.Type, err)
				}
				events = append(events, arranger.NoteEvent{Pitch: pitch, Start: t, Duration: duration})
			}
			t += duration
		}
	}
	return events, nil
}
