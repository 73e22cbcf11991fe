package theory

import "fmt"

// Scale is a major key identified by its tonic.
type Scale struct {
	Tonic LetterNote
}

func (s Scale) String() string {
	return s.Tonic.String()
}

// ScaleDegree is a pitch relative to a key: degree 1..7 plus an
// accidental. Fields are unexported so the degree range invariant holds
// for every value that exists.
type ScaleDegree struct {
	degree     uint8
	accidental Accidental
}

// ErrInvalidDegree is returned for degrees outside [1, 7].
var ErrInvalidDegree = fmt.Errorf("scale degree out of range")

// NewScaleDegree validates the degree range [1, 7].
func NewScaleDegree(degree int, accidental Accidental) (ScaleDegree, error) {
	if degree < 1 || degree > 7 {
		return ScaleDegree{}, fmt.Errorf("%w: %d", ErrInvalidDegree, degree)
	}
	return ScaleDegree{degree: uint8(degree), accidental: accidental}, nil
}

func (d ScaleDegree) Degree() int {
	return int(d.degree)
}

func (d ScaleDegree) Accidental() Accidental {
	return d.accidental
}

// Nashville numbers write the accidental before the digit: b7, #4.
func (d ScaleDegree) String() string {
	return fmt.Sprintf("%s%d", d.accidental, d.degree)
}

func (d ScaleDegree) note() {}

// Major-scale semitone offsets for degrees 1..7.
var degreeOffsets = [8]int{0, 0, 2, 4, 5, 7, 9, 11}

// MidiInKey is the absolute pitch this degree lands on in the given key.
func (d ScaleDegree) MidiInKey(key Scale) MidiPitch {
	return key.Tonic.AsMidi().Add(degreeOffsets[d.degree] + d.accidental.AsInt())
}

// InKey spells the degree as a letter note in the given key: the letter
// is the tonic letter shifted by degree-1 positions, the accidental is
// back-solved against the pitch the degree names.
func (d ScaleDegree) InKey(key Scale) LetterNote {
	letter := key.Tonic.Letter.Add(int(d.degree) - 1)
	return letter.Natural().Respell(d.MidiInKey(key))
}

// respellInKey corrects the accidental so the degree names the target
// pitch in the given key, using the same (-6, 6] minimal delta as
// letter respelling.
func (d ScaleDegree) respellInKey(key Scale, target MidiPitch) ScaleDegree {
	delta := int(target-d.MidiInKey(key)) % 12
	if delta < 0 {
		delta += 12
	}
	if delta > 6 {
		delta -= 12
	}
	return ScaleDegree{degree: d.degree, accidental: d.accidental + Accidental(delta)}
}

// NaturalDegreeOf maps a letter to its natural scale degree in this
// key, from letter distance alone.
func (s Scale) NaturalDegreeOf(letter Letter) ScaleDegree {
	degree := ((letter.AsInt()-s.Tonic.Letter.AsInt())%7+7)%7 + 1
	return ScaleDegree{degree: uint8(degree)}
}

// DegreeOf converts a letter note to its scale degree in this key:
// natural degree first, then accidental-corrected to the note's true
// pitch.
func (s Scale) DegreeOf(n LetterNote) ScaleDegree {
	return s.NaturalDegreeOf(n.Letter).respellInKey(s, n.AsMidi())
}

// AsScaleDegree converts any note to a scale degree relative to key.
// Degree notes are already key-relative and pass through unchanged.
func AsScaleDegree(n Note, key Scale) ScaleDegree {
	switch note := n.(type) {
	case LetterNote:
		return key.DegreeOf(note)
	case ScaleDegree:
		return note
	default:
		panic(fmt.Sprintf("unknown note type %T", n))
	}
}
