package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/perahi/songchart/theory"
)

func mustParse(t *testing.T, input string, opts Options) *Chart {
	t.Helper()
	c, err := Parse(input, opts)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestMetadataGetters(t *testing.T) {
	assert := assert.New(t)

	c := mustParse(t, "{title:Song}\n{comment:slowly}\n{key:G}\n[G]x\n", Options{})

	title, ok := c.Title()
	assert.True(ok)
	assert.Equal("Song", title)

	comment, ok := c.Comment()
	assert.True(ok)
	assert.Equal("slowly", comment)

	key, ok := c.Key()
	assert.True(ok)
	assert.Equal(theory.Scale{Tonic: theory.G.Natural()}, key)
}

func TestMetadataGettersMissing(t *testing.T) {
	assert := assert.New(t)

	c := mustParse(t, "[G]x\n", Options{})

	_, ok := c.Title()
	assert.False(ok)
	_, ok = c.Key()
	assert.False(ok)
}

func TestSetKeyReplacesInPlace(t *testing.T) {
	assert := assert.New(t)

	c := mustParse(t, "{title:T}\n{key:G}\n[G]x\n", Options{})
	c.SetKey(theory.Scale{Tonic: theory.A.Natural()})

	assert.Equal("{title:T}\n{key:A}\n[G]x\n", c.String())
}

func TestSetKeyInsertsAfterLeadingDirectives(t *testing.T) {
	assert := assert.New(t)

	c := mustParse(t, "{title:T}\n{tempo:80}\n[G]x\n{comment:late}\n", Options{})
	c.SetKey(theory.Scale{Tonic: theory.E.Flat()})

	assert.Equal("{title:T}\n{tempo:80}\n{key:Eb}\n[G]x\n{comment:late}\n", c.String())
}

func TestSetKeyOnEmptyChart(t *testing.T) {
	var c Chart
	c.SetKey(theory.Scale{Tonic: theory.C.Natural()})
	assert.Equal(t, "{key:C}\n", c.String())
}

func TestSetInline(t *testing.T) {
	assert := assert.New(t)

	c := mustParse(t, "{key:G}\n[G]one\n[C]two\n", Options{})
	c.SetInline(false)
	for _, line := range c.Lines {
		if content, ok := line.(ContentLine); ok {
			assert.False(content.Inline)
		}
	}
	c.SetInline(true)
	assert.Equal("{key:G}\n[G]one\n[C]two\n", c.String())
}

func TestTransposeGToA(t *testing.T) {
	assert := assert.New(t)

	c := mustParse(t, "{key:G}\n[G]Hello\n", Options{})
	err := c.TransposeTo(theory.Scale{Tonic: theory.A.Natural()})
	assert.NoError(err)

	assert.Equal("{key:A}\n[A]Hello\n", c.String())
}

func TestTransposeKeepsQualityAndBass(t *testing.T) {
	assert := assert.New(t)

	c := mustParse(t, "{key:C}\n[Am7]x [G/B]y\n", Options{})
	err := c.TransposeTo(theory.Scale{Tonic: theory.D.Natural()})
	assert.NoError(err)

	assert.Equal("{key:D}\n[Bm7]x [A/C#]y\n", c.String())
}

func TestTransposeRespellsFlats(t *testing.T) {
	assert := assert.New(t)

	c := mustParse(t, "{key:C}\n[Bb]x\n", Options{})
	err := c.TransposeTo(theory.Scale{Tonic: theory.D.Natural()})
	assert.NoError(err)

	assert.Equal("{key:D}\n[C]x\n", c.String())
}

func TestTransposeWithoutKeyFails(t *testing.T) {
	c := mustParse(t, "[G]x\n", Options{})
	err := c.TransposeTo(theory.Scale{Tonic: theory.A.Natural()})
	assert.ErrorIs(t, err, ErrNoKey)
}

func TestToNumbers(t *testing.T) {
	assert := assert.New(t)

	c := mustParse(t, "{key:G}\n[G]a[C]b[D7]c[Em]d[F]e\n", Options{})
	err := c.ToNumbers()
	assert.NoError(err)

	// The key directive stays: it remains the frame of reference.
	assert.Equal("{key:G}\n[1]a[4]b[57]c[6m]d[b7]e\n", c.String())
}

func TestToNumbersWithoutKeyFails(t *testing.T) {
	c := mustParse(t, "[G]x\n", Options{})
	assert.ErrorIs(t, c.ToNumbers(), ErrNoKey)
}

func TestNumbersThenTransposeRealizesNewKey(t *testing.T) {
	assert := assert.New(t)

	c := mustParse(t, "{key:G}\n[G]a [D/F#]b\n", Options{})
	assert.NoError(c.ToNumbers())
	assert.NoError(c.TransposeTo(theory.Scale{Tonic: theory.B.Flat()}))

	assert.Equal("{key:Bb}\n[Bb]a [F/A]b\n", c.String())
}
