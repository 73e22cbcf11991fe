package midifile

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/perahi/songchart/chart"
)

func noteOns(t *testing.T, input string) []uint8 {
	t.Helper()
	c, err := chart.Parse(input, chart.Options{})
	if err != nil {
		t.Fatal(err)
	}
	s, err := Export(c)
	if err != nil {
		t.Fatal(err)
	}

	var notes []uint8
	for _, track := range s.Tracks {
		for _, event := range track {
			var channel, key, velocity uint8
			if event.Message.GetNoteOn(&channel, &key, &velocity) {
				notes = append(notes, key)
			}
		}
	}
	return notes
}

func TestExportLetterChords(t *testing.T) {
	// C and G roots at middle C, B bass an octave down.
	notes := noteOns(t, "{key:C}\n[C]x [G/B]y\n")
	assert.Equal(t, []uint8{60, 67, 59}, notes)
}

func TestExportNumberedChordsUseKey(t *testing.T) {
	notes := noteOns(t, "{key:G}\n[1]x [5]y\n")
	assert.Equal(t, []uint8{67, 74}, notes)
}

func TestExportNumberedChartWithoutKeyFails(t *testing.T) {
	c, err := chart.Parse("[1]x\n", chart.Options{})
	assert.NoError(t, err)

	_, err = Export(c)
	assert.ErrorIs(t, err, chart.ErrNoKey)
}

func TestExportSkipsChordlessChunks(t *testing.T) {
	notes := noteOns(t, "{key:C}\nno chords at all\n")
	assert.Empty(t, notes)
}
