// Package midifile writes a chart's chord progression as a Standard
// MIDI File: one block of root and bass per chorded chunk, in order.
package midifile

import (
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/perahi/songchart/chart"
	"github.com/perahi/songchart/theory"
)

const (
	channel    = 0
	velocity   = 100
	resolution = 960
	// One chord per quarter note.
	chordTicks = resolution
)

// Export builds an SMF with the chart's chords as timed note events.
// Nashville-numbered chords are realized through the chart's key
// directive; a numbered chart without one returns chart.ErrNoKey.
func Export(c *chart.Chart) (*smf.SMF, error) {
	key, hasKey := c.Key()

	pitchOf := func(n theory.Note) (uint8, error) {
		switch note := n.(type) {
		case theory.LetterNote:
			return uint8(note.AsMidi()), nil
		case theory.ScaleDegree:
			if !hasKey {
				return 0, chart.ErrNoKey
			}
			return uint8(note.MidiInKey(key)), nil
		}
		return 0, errors.Errorf("unknown note type %T", n)
	}

	var s smf.SMF
	s.TimeFormat = smf.MetricTicks(resolution)
	var tr smf.Track

	for _, line := range c.Lines {
		content, ok := line.(chart.ContentLine)
		if !ok {
			continue
		}
		for _, chunk := range content.Chunks {
			if chunk.Chord == nil {
				continue
			}

			root, err := pitchOf(chunk.Chord.Root)
			if err != nil {
				return nil, err
			}
			notes := []uint8{root}
			if chunk.Chord.Bass != nil {
				bass, err := pitchOf(chunk.Chord.Bass)
				if err != nil {
					return nil, err
				}
				// An octave down keeps the bass under the root.
				notes = append(notes, bass-12)
			}

			for _, note := range notes {
				tr.Add(0, midi.NoteOn(channel, note, velocity))
			}
			for i, note := range notes {
				var delta uint32
				if i == 0 {
					delta = chordTicks
				}
				tr.Add(delta, midi.NoteOff(channel, note))
			}
		}
	}

	tr.Close(0)
	if err := s.Add(tr); err != nil {
		return nil, errors.Wrap(err, "adding midi track")
	}
	return &s, nil
}

// WriteFile exports the chart and writes the SMF to path.
func WriteFile(c *chart.Chart, path string) error {
	s, err := Export(c)
	if err != nil {
		return err
	}
	return errors.Wrapf(s.WriteFile(path), "writing midi file %s", path)
}
