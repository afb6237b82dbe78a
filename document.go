package arranger

// PercussionChannel is the output channel universally reserved for
// non-pitched drum sounds (the 10th channel, zero-based 9). It is never
// handed out to a melodic track.
const PercussionChannel = 9

type (
	// Document is the in-memory representation of the final sequenced-audio
	// file prior to binary serialization: a fixed global tempo and the output
	// tracks in processing order. It is built incrementally by a single owner
	// and serialized once, after all tracks are appended.
	Document struct {
		BPM    int
		Tracks []DocumentTrack
	}

	// DocumentTrack is one output track: its channel/program assignment and
	// the timed note events laid out along the shared timeline.
	DocumentTrack struct {
		Name   string
		Voice  Voice
		Events []NoteEvent
	}

	// Voice is the channel/program assignment of an output track. Channel and
	// Program are -1 when unassigned: a melodic instrument without a program
	// number is emitted as a default, program-less track, and percussion
	// tracks never carry a program change.
	Voice struct {
		Channel int
		Program int
	}

	// NoteEvent is a single resolved note: a MIDI pitch sounding from Start
	// for Duration, both in beats (quarter note = 1).
	NoteEvent struct {
		Pitch    uint8
		Start    float64
		Duration float64
	}
)

// NoVoice is the assignment of a track that gets neither a channel nor a
// program change.
var NoVoice = Voice{Channel: -1, Program: -1}

func (t *DocumentTrack) Copy() DocumentTrack {
	events := make([]NoteEvent, len(t.Events))
	copy(events, t.Events)
	return DocumentTrack{Name: t.Name, Voice: t.Voice, Events: events}
}

func (d *Document) Copy() Document {
	tracks := make([]DocumentTrack, len(d.Tracks))
	for i := range d.Tracks {
		tracks[i] = d.Tracks[i].Copy()
	}
	return Document{BPM: d.BPM, Tracks: tracks}
}
