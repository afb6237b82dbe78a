package compiler_test

import (
	"errors"
	"testing"

	arranger "github.com/aczwink/OpenArabicMusicArrangerStyles"
	"github.com/aczwink/OpenArabicMusicArrangerStyles/compiler"
)

func TestBuildTimelineChord(t *testing.T) {
	melodic := arranger.Instrument{Type: "oud"}
	notes := []arranger.Note{
		{Duration: "4", Pitches: []string{"c4", "e4", "g4"}},
		{Duration: "8", Pitch: "c5"},
	}
	events, err := compiler.BuildTimeline(notes, &melodic, 1)
	if err != nil {
		t.Fatalf("BuildTimeline failed: %v", err)
	}
	expected := []arranger.NoteEvent{
		{Pitch: 60, Start: 0, Duration: 1},
		{Pitch: 64, Start: 0, Duration: 1},
		{Pitch: 67, Start: 0, Duration: 1},
		{Pitch: 72, Start: 1, Duration: 0.5},
	}
	if len(events) != len(expected) {
		t.Fatalf("emitted %v events, expected %v", len(events), len(expected))
	}
	for i, ev := range expected {
		if events[i] != ev {
			t.Errorf("event %v = %+v, expected %+v", i, events[i], ev)
		}
	}
}

func TestBuildTimelineLooping(t *testing.T) {
	melodic := arranger.Instrument{Type: "oud"}
	// one pattern repetition lasts 1 + 0.75 = 1.75 beats
	notes := []arranger.Note{
		{Duration: "4", Pitch: "c4"},
		{Duration: "8.", Pitch: "e4"},
	}
	events, err := compiler.BuildTimeline(notes, &melodic, 4)
	if err != nil {
		t.Fatalf("BuildTimeline failed: %v", err)
	}
	if len(events) != 8 {
		t.Fatalf("emitted %v events, expected 8", len(events))
	}
	for loop := 0; loop < 4; loop++ {
		base := 1.75 * float64(loop)
		if got := events[2*loop].Start; got != base {
			t.Errorf("loop %v first note starts at %v, expected %v", loop, got, base)
		}
		if got := events[2*loop+1].Start; got != base+1 {
			t.Errorf("loop %v second note starts at %v, expected %v", loop, got, base+1)
		}
	}
	// looping law: last event starts at 3*D + its offset within one repetition
	if last := events[len(events)-1]; last.Start != 3*1.75+1 {
		t.Errorf("last event starts at %v, expected %v", last.Start, 3*1.75+1)
	}
}

func TestBuildTimelineUnknownDuration(t *testing.T) {
	melodic := arranger.Instrument{Type: "oud"}
	notes := []arranger.Note{{Duration: "3", Pitch: "c4"}}
	_, err := compiler.BuildTimeline(notes, &melodic, 4)
	if !errors.Is(err, arranger.ErrUnknownDuration) {
		t.Fatalf("BuildTimeline = %v, expected ErrUnknownDuration", err)
	}
}

func TestBuildTimelineUnknownPitch(t *testing.T) {
	percussion := arranger.Instrument{Type: "riq", PitchMap: map[string]uint8{"dum": 36}}
	notes := []arranger.Note{{Duration: "4", Pitch: "boom"}}
	_, err := compiler.BuildTimeline(notes, &percussion, 4)
	if !errors.Is(err, arranger.ErrUnknownPitch) {
		t.Fatalf("BuildTimeline = %v, expected ErrUnknownPitch", err)
	}
}
