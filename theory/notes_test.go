package theory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMidiPitchAsLetter(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(C.Natural(), MidiPitch(60).AsLetter())
	assert.Equal(E.Natural(), MidiPitch(76).AsLetter())
	assert.Equal(B.Flat(), MidiPitch(82).AsLetter())
}

func TestLetterNoteAsMidi(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(MidiPitch(60), C.Natural().AsMidi())
	assert.Equal(MidiPitch(64), E.Natural().AsMidi())
	assert.Equal(MidiPitch(70), B.Flat().AsMidi())
	assert.Equal(MidiPitch(66), F.Sharp().AsMidi())
}

func TestLetterArithmeticWraps(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(C, B.Add(1))
	assert.Equal(B, C.Add(-1))
	assert.Equal(G, C.Add(4))
	assert.Equal(D, D.Add(14))
	assert.Equal(A, LetterFromInt(5))
	assert.Equal(C, LetterFromInt(-7))
}

func TestRespellPicksMinimalRepresentative(t *testing.T) {
	assert := assert.New(t)
	for letter := C; letter <= B; letter++ {
		for pc := 0; pc < 12; pc++ {
			target := MidiPitch(60 + pc)
			respelled := letter.Natural().Respell(target)

			assert.Equal(letter, respelled.Letter)
			got := ((respelled.AsMidi() % 12) + 12) % 12
			assert.Equal(target%12, got, "letter %s target %d", letter, pc)

			delta := respelled.Accidental.AsInt()
			assert.Greater(delta, -6, "letter %s target %d", letter, pc)
			assert.LessOrEqual(delta, 6, "letter %s target %d", letter, pc)
		}
	}
}

func TestRespellPrefersFlatOverElevenSharps(t *testing.T) {
	// C named one semitone below its base pitch must be Cb, not C with
	// eleven sharps.
	respelled := C.Natural().Respell(MidiPitch(59))
	assert.Equal(t, Flat, respelled.Accidental)
}

func TestNewAccidentalRange(t *testing.T) {
	assert := assert.New(t)

	for _, ok := range []int{-2, -1, 0, 1, 2} {
		_, err := NewAccidental(ok)
		assert.NoError(err)
	}
	for _, bad := range []int{-3, 3, 11} {
		_, err := NewAccidental(bad)
		assert.ErrorIs(err, ErrInvalidAccidental)
	}
}

func TestAccidentalString(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("", Natural.String())
	assert.Equal("b", Flat.String())
	assert.Equal("bb", DoubleFlat.String())
	assert.Equal("#", Sharp.String())
	assert.Equal("##", DoubleSharp.String())
}

func TestLetterNoteString(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("C", C.Natural().String())
	assert.Equal("Bb", B.Flat().String())
	assert.Equal("F##", LetterNote{Letter: F, Accidental: DoubleSharp}.String())
}
