package compiler

import (
	arranger "github.com/aczwink/OpenArabicMusicArrangerStyles"
)

// AllocateVoice assigns an output channel and program to one track and
// returns the advanced channel counter. The counter is an explicit
// accumulator threaded through the track-processing loop (value in, value
// out), so the allocation for a track depends on how many melodic tracks with
// a program came before it.
//
// Percussion instruments always get the reserved percussion channel, leave
// the counter untouched and never get a program change, regardless of any
// program number in the descriptor. Melodic instruments with a program take
// the next counter value, skipping over the percussion channel, and get a
// program change of Program-1 (descriptors are 1-based, the wire format is
// 0-based). Melodic instruments without a program get no assignment at all.
func AllocateVoice(ins *arranger.Instrument, next int) (arranger.Voice, int) {
	if ins.Percussion() {
		return arranger.Voice{Channel: arranger.PercussionChannel, Program: -1}, next
	}
	if ins.Program == nil {
		return arranger.NoVoice, next
	}
	channel := next
	next++
	if channel == arranger.PercussionChannel {
		channel = next
		next++
	}
	return arranger.Voice{Channel: channel, Program: *ins.Program - 1}, next
}
