// Package chart holds the layout-independent song chart model: an
// ordered list of directive and content lines, parsed from ChordPro-like
// text and rendered back inline or stacked.
package chart

import (
	"github.com/pkg/errors"

	"github.com/perahi/songchart/theory"
)

// ErrNoKey is returned by transforms that need a key frame of reference
// when the chart carries no key directive.
var ErrNoKey = errors.New("chart has no key directive")

// Chunk is one optionally-chorded span of lyric text. The chord, when
// present, sits at the start of the span.
type Chunk struct {
	Chord  *theory.Chord
	Lyrics string
}

// Line is either a DirectiveLine or a ContentLine.
type Line interface {
	line()
}

type DirectiveLine struct {
	Directive Directive
}

type ContentLine struct {
	Chunks []Chunk
	// Inline selects bracketed-in-flow rendering; false stacks chords
	// on a separate line above the lyrics.
	Inline bool
}

func (DirectiveLine) line() {}
func (ContentLine) line()   {}

// IsEmpty reports whether the line renders to nothing: a content line
// with no chunks. Directive lines are never empty.
func IsEmpty(l Line) bool {
	content, ok := l.(ContentLine)
	return ok && len(content.Chunks) == 0
}

// Chart owns its lines exclusively; transforms mutate payloads in place
// but never change a line's kind.
type Chart struct {
	Lines []Line
}

// Title returns the first title directive's text.
func (c *Chart) Title() (string, bool) {
	for _, line := range c.Lines {
		if d, ok := line.(DirectiveLine); ok {
			if title, ok := d.Directive.(Title); ok {
				return string(title), true
			}
		}
	}
	return "", false
}

// Comment returns the first comment directive's text.
func (c *Chart) Comment() (string, bool) {
	for _, line := range c.Lines {
		if d, ok := line.(DirectiveLine); ok {
			if comment, ok := d.Directive.(Comment); ok {
				return string(comment), true
			}
		}
	}
	return "", false
}

// Key returns the first key directive's scale.
func (c *Chart) Key() (theory.Scale, bool) {
	for _, line := range c.Lines {
		if d, ok := line.(DirectiveLine); ok {
			if key, ok := d.Directive.(Key); ok {
				return key.Scale, true
			}
		}
	}
	return theory.Scale{}, false
}

// SetKey replaces the existing key directive in place, or inserts a new
// one right after the leading run of directives.
func (c *Chart) SetKey(key theory.Scale) {
	for i, line := range c.Lines {
		if d, ok := line.(DirectiveLine); ok {
			if _, ok := d.Directive.(Key); ok {
				c.Lines[i] = DirectiveLine{Directive: Key{Scale: key}}
				return
			}
		}
	}

	at := len(c.Lines)
	for i, line := range c.Lines {
		if _, ok := line.(DirectiveLine); !ok {
			at = i
			break
		}
	}
	c.Lines = append(c.Lines, nil)
	copy(c.Lines[at+1:], c.Lines[at:])
	c.Lines[at] = DirectiveLine{Directive: Key{Scale: key}}
}

// SetInline sets the layout flag on every content line.
func (c *Chart) SetInline(inline bool) {
	for i, line := range c.Lines {
		if content, ok := line.(ContentLine); ok {
			content.Inline = inline
			c.Lines[i] = content
		}
	}
}

// ToNumbers rewrites every chord root and bass as a scale degree
// relative to the chart's key. The key directive stays: it remains the
// frame of reference for the numbered chart.
func (c *Chart) ToNumbers() error {
	key, ok := c.Key()
	if !ok {
		return ErrNoKey
	}
	c.transformNotes(func(n theory.Note) theory.Note {
		return theory.AsScaleDegree(n, key)
	})
	return nil
}

// TransposeTo moves the chart from its current key to newKey: every
// chord note goes through its key-agnostic scale degree and comes back
// spelled in the new key. Quality strings pass through untouched.
func (c *Chart) TransposeTo(newKey theory.Scale) error {
	oldKey, ok := c.Key()
	if !ok {
		return ErrNoKey
	}
	c.transformNotes(func(n theory.Note) theory.Note {
		return theory.AsScaleDegree(n, oldKey).InKey(newKey)
	})
	c.SetKey(newKey)
	return nil
}

func (c *Chart) transformNotes(f func(theory.Note) theory.Note) {
	for _, line := range c.Lines {
		content, ok := line.(ContentLine)
		if !ok {
			continue
		}
		for i := range content.Chunks {
			chord := content.Chunks[i].Chord
			if chord == nil {
				continue
			}
			chord.Root = f(chord.Root)
			if chord.Bass != nil {
				chord.Bass = f(chord.Bass)
			}
		}
	}
}
