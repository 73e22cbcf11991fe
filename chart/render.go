package chart

import (
	"strings"

	"github.com/perahi/songchart/util"
)

// Rendering is the inverse of parsing: inline charts round-trip
// byte-identically, stacked charts reproduce the column alignment the
// chord offsets encode.

func (c Chunk) String() string {
	if c.Chord != nil {
		return "[" + c.Chord.String() + "]" + c.Lyrics
	}
	return c.Lyrics
}

// FormatLine renders one line without its trailing line break. Stacked
// content lines may span two output rows.
func FormatLine(l Line) string {
	switch line := l.(type) {
	case DirectiveLine:
		return line.Directive.String()
	case ContentLine:
		if line.Inline {
			var b strings.Builder
			for _, chunk := range line.Chunks {
				b.WriteString(chunk.String())
			}
			return b.String()
		}
		return formatStacked(line.Chunks)
	}
	return ""
}

// formatStacked lays chords out above the lyrics. A running cursor
// tracks the next free column: a chord pads its row to the cursor and
// then pushes the cursor one past its own text, so the lyrics that
// follow can never collide with a long chord name. Chordless lyric runs
// are not forced to a new column.
func formatStacked(chunks []Chunk) string {
	var index int
	var chordRow, lyricRow strings.Builder
	for _, chunk := range chunks {
		if chunk.Chord != nil {
			padTo(&chordRow, index)
		}
		if chunk.Lyrics != "" {
			padTo(&lyricRow, index)
		}

		if chunk.Chord != nil {
			chordRow.WriteString(chunk.Chord.String())
			index = chordRow.Len() + 1
		}
		lyricRow.WriteString(chunk.Lyrics)
		index = util.Max(index, lyricRow.Len())
	}

	if chordRow.Len() == 0 {
		return lyricRow.String()
	}
	return chordRow.String() + "\n" + lyricRow.String()
}

func padTo(b *strings.Builder, index int) {
	for b.Len() < index {
		b.WriteByte(' ')
	}
}

// String renders the whole chart, one trailing line break per line.
func (c *Chart) String() string {
	var b strings.Builder
	for _, line := range c.Lines {
		b.WriteString(FormatLine(line))
		b.WriteByte('\n')
	}
	return b.String()
}
