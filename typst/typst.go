// Package typst renders a chart into Typst markup and drives the typst
// binary to produce a PDF. The core never depends on this package; it
// is a pure text-producing side channel fed the finished chart.
package typst

import (
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/pkg/errors"

	"github.com/perahi/songchart/chart"
)

// DefaultBinary is the typst executable looked up on PATH when no
// explicit path is configured.
const DefaultBinary = "typst"

// WriteDocument emits the Typst source for a chart: title and comment
// from the directives, then every content line as single-chord calls
// from the chordx package, one lyric/chord pair per chunk.
func WriteDocument(c *chart.Chart, w io.Writer) error {
	var b strings.Builder

	b.WriteString("#import \"@preview/chordx:0.6.1\": single-chord\n")
	b.WriteString("#set text(font: \"Arial\")\n")
	if title, ok := c.Title(); ok {
		fmt.Fprintf(&b, "= %s\n", title)
	}
	if comment, ok := c.Comment(); ok {
		fmt.Fprintf(&b, "%s\n", comment)
	}
	b.WriteString("#set text(font: \"Courier New\")\n")
	b.WriteString("#let chord = single-chord.with(weight: \"semibold\")\n")

	for _, line := range c.Lines {
		content, ok := line.(chart.ContentLine)
		if !ok {
			continue
		}
		for _, chunk := range content.Chunks {
			if chunk.Chord != nil {
				offset := ""
				if strings.TrimSpace(chunk.Lyrics) != "" {
					offset = "1"
				}
				fmt.Fprintf(&b, "#chord[#%q][#%q][%s]", chunk.Lyrics, chunk.Chord.String()+" ", offset)
			} else {
				b.WriteString(chunk.Lyrics)
			}
		}
		b.WriteString("\\\n")
	}

	_, err := io.WriteString(w, b.String())
	return errors.Wrap(err, "writing typst document")
}

// CompilePDF streams the chart's Typst document into `typst compile`
// and writes the PDF to output. A missing binary or a non-zero exit is
// reported as an error; nothing is retried.
func CompilePDF(c *chart.Chart, output string, binary string) error {
	if binary == "" {
		binary = DefaultBinary
	}
	cmd := exec.Command(binary, "compile", "-", output)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return errors.Wrap(err, "opening typst stdin")
	}
	if err := cmd.Start(); err != nil {
		return errors.Wrapf(err, "starting %s", binary)
	}

	writeErr := WriteDocument(c, stdin)
	stdin.Close()

	if err := cmd.Wait(); err != nil {
		return errors.Wrapf(err, "%s compile failed", binary)
	}
	return writeErr
}
