package theory

import (
	"fmt"
	"strings"
)

// Text scanning for notes and keys. Scanners consume a prefix of the
// input and hand back the rest, so the chart grammar can keep parsing
// where a note ends. Parse* wrappers ignore trailing input, which is
// what directive values like {key:Bb} rely on.

// ScanAccidental reads bb, b, ##, # or nothing. Double accidentals are
// matched greedily before single ones.
func ScanAccidental(s string) (Accidental, string) {
	switch {
	case strings.HasPrefix(s, "bb"):
		return DoubleFlat, s[2:]
	case strings.HasPrefix(s, "b"):
		return Flat, s[1:]
	case strings.HasPrefix(s, "##"):
		return DoubleSharp, s[2:]
	case strings.HasPrefix(s, "#"):
		return Sharp, s[1:]
	}
	return Natural, s
}

// ScanLetter reads one of C D E F G A B.
func ScanLetter(s string) (Letter, string, bool) {
	if s == "" {
		return 0, s, false
	}
	i := strings.IndexByte("CDEFGAB", s[0])
	if i < 0 {
		return 0, s, false
	}
	return []Letter{C, D, E, F, G, A, B}[i], s[1:], true
}

// ScanLetterNote reads a letter followed by an optional accidental.
func ScanLetterNote(s string) (LetterNote, string, bool) {
	letter, rest, ok := ScanLetter(s)
	if !ok {
		return LetterNote{}, s, false
	}
	accidental, rest := ScanAccidental(rest)
	return LetterNote{Letter: letter, Accidental: accidental}, rest, true
}

// ScanNote reads either a letter note or a scale degree. Degrees write
// the accidental first: b7, #4, 1.
func ScanNote(s string) (Note, string, bool) {
	if n, rest, ok := ScanLetterNote(s); ok {
		return n, rest, true
	}
	accidental, rest := ScanAccidental(s)
	if rest == "" || rest[0] < '1' || rest[0] > '7' {
		return nil, s, false
	}
	degree, err := NewScaleDegree(int(rest[0]-'0'), accidental)
	if err != nil {
		return nil, s, false
	}
	return degree, rest[1:], true
}

// ParseLetterNote parses a letter note from the start of s, ignoring
// any trailing input.
func ParseLetterNote(s string) (LetterNote, error) {
	n, _, ok := ScanLetterNote(s)
	if !ok {
		return LetterNote{}, fmt.Errorf("invalid note: %q", s)
	}
	return n, nil
}

// ParseScale parses a key name such as C, Bb or F#.
func ParseScale(s string) (Scale, error) {
	tonic, err := ParseLetterNote(s)
	if err != nil {
		return Scale{}, fmt.Errorf("invalid key: %q", s)
	}
	return Scale{Tonic: tonic}, nil
}
