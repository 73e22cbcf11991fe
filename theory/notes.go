// Package theory models pitches, keys and chords the way chord charts
// spell them: letters with accidentals, or scale degrees relative to a
// key. All pitch math is octave-free modular arithmetic over MidiPitch.
package theory

import (
	"fmt"
	"strings"
)

// Letter is one of the seven note letters, ordered C..B so that letter
// arithmetic is plain mod-7 index arithmetic.
type Letter uint8

const (
	C Letter = iota
	D
	E
	F
	G
	A
	B
)

var letterNames = [7]string{"C", "D", "E", "F", "G", "A", "B"}

// Base semitones of each natural letter within an octave.
var letterPitches = [7]MidiPitch{0, 2, 4, 5, 7, 9, 11}

// MidiPitch anchors letters at middle C. Only differences mod 12 ever
// matter; the absolute octave is irrelevant to every operation.
const middleC = 60

// LetterFromInt maps any integer onto a letter, wrapping mod 7.
func LetterFromInt(v int) Letter {
	return Letter(((v % 7) + 7) % 7)
}

func (l Letter) AsInt() int {
	return int(l)
}

// Add shifts a letter by n positions with wraparound, so B.Add(1) == C.
func (l Letter) Add(n int) Letter {
	return LetterFromInt(int(l) + n)
}

func (l Letter) AsMidi() MidiPitch {
	return letterPitches[l] + middleC
}

func (l Letter) String() string {
	return letterNames[l]
}

// Natural returns the letter as a LetterNote with no accidental.
func (l Letter) Natural() LetterNote {
	return LetterNote{Letter: l}
}

func (l Letter) Flat() LetterNote {
	return LetterNote{Letter: l, Accidental: Flat}
}

func (l Letter) Sharp() LetterNote {
	return LetterNote{Letter: l, Accidental: Sharp}
}

// Accidental is a signed semitone deflection. Chart notation only ever
// writes up to double accidentals, which NewAccidental enforces;
// respelling math uses the full signed range internally.
type Accidental int8

const (
	DoubleFlat  Accidental = -2
	Flat        Accidental = -1
	Natural     Accidental = 0
	Sharp       Accidental = 1
	DoubleSharp Accidental = 2
)

// ErrInvalidAccidental is returned for accidentals outside [-2, 2].
var ErrInvalidAccidental = fmt.Errorf("accidental out of range")

// NewAccidental validates the notation-level range [-2, 2].
func NewAccidental(delta int) (Accidental, error) {
	if delta < -2 || delta > 2 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidAccidental, delta)
	}
	return Accidental(delta), nil
}

func (a Accidental) AsInt() int {
	return int(a)
}

func (a Accidental) String() string {
	if a < 0 {
		return strings.Repeat("b", int(-a))
	}
	return strings.Repeat("#", int(a))
}

// MidiPitch is an absolute pitch in MIDI numbering. It is kept as an
// integer rather than a pitch class so deltas stay sign-aware before
// being reduced mod 12.
type MidiPitch int

// Add offsets a pitch by a signed number of semitones.
func (p MidiPitch) Add(semitones int) MidiPitch {
	return p + MidiPitch(semitones)
}

// AsLetter names the pitch with the conventional letter for its pitch
// class (flats for the black keys), respelled to match exactly.
func (p MidiPitch) AsLetter() LetterNote {
	var letter Letter
	switch ((p % 12) + 12) % 12 {
	case 0:
		letter = C
	case 1, 2:
		letter = D
	case 3, 4:
		letter = E
	case 5:
		letter = F
	case 6, 7:
		letter = G
	case 8, 9:
		letter = A
	case 10, 11:
		letter = B
	}
	return letter.Natural().Respell(p)
}

// LetterNote is a letter plus accidental, e.g. Bb or F##.
type LetterNote struct {
	Letter     Letter
	Accidental Accidental
}

func (n LetterNote) AsMidi() MidiPitch {
	return n.Letter.AsMidi().Add(n.Accidental.AsInt())
}

// Respell recomputes the accidental so that the letter names the target
// pitch class. The delta is always the minimal representative in
// (-6, 6], so a one-semitone-flat spelling wins over an
// eleven-semitones-sharp one. Total: the result may carry an accidental
// beyond what NewAccidental would admit from notation.
func (n LetterNote) Respell(target MidiPitch) LetterNote {
	delta := int(target-n.Letter.AsMidi()) % 12
	if delta < 0 {
		delta += 12
	}
	if delta > 6 {
		delta -= 12
	}
	return LetterNote{Letter: n.Letter, Accidental: Accidental(delta)}
}

func (n LetterNote) String() string {
	return n.Letter.String() + n.Accidental.String()
}

func (n LetterNote) note() {}

// Note is either a letter-spelled pitch (LetterNote) or a key-relative
// scale degree (ScaleDegree). The set is closed.
type Note interface {
	fmt.Stringer
	note()
}
