package theory

// Chord is a root note, an uninterpreted quality tag and an optional
// bass note. Quality stays a plain string on purpose: the grammar
// constrains its characters but nothing downstream needs to understand
// "m7b5" beyond printing it back.
type Chord struct {
	Root    Note
	Quality string
	Bass    Note // nil when the chord has no slash bass
}

// Major builds a plain major chord on the given root.
func Major(root Note) Chord {
	return Chord{Root: root}
}

// Minor builds a minor chord on the given root.
func Minor(root Note) Chord {
	return Chord{Root: root, Quality: "m"}
}

// Over returns a copy of the chord with the given bass note.
func (c Chord) Over(bass Note) Chord {
	c.Bass = bass
	return c
}

func (c Chord) String() string {
	s := c.Root.String() + c.Quality
	if c.Bass != nil {
		s += "/" + c.Bass.String()
	}
	return s
}
