package chart

import (
	"fmt"
	"strings"

	"github.com/perahi/songchart/theory"
	"github.com/perahi/songchart/util"
)

// Options configures a single parse. The stacked chords-over-lyrics
// layout is a non-standard extension of the format, recognized only
// when Extensions is set.
type Options struct {
	Extensions bool
}

// ParseError reports the position of the first unparseable construct.
// The whole parse aborts; there is no partial chart.
type ParseError struct {
	Line int
	Col  int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d: %s", e.Line, e.Col, e.Msg)
}

// Parse converts ChordPro-like text into a Chart. The final line break
// is optional; blank lines become empty content lines.
func Parse(input string, opts Options) (*Chart, error) {
	physical := splitLines(input)

	var chart Chart
	for i := 0; i < len(physical); i++ {
		text := physical[i]

		if directive, ok := matchDirective(text); ok {
			chart.Lines = append(chart.Lines, DirectiveLine{Directive: directive})
			continue
		}

		if opts.Extensions {
			if chords, ok := matchChordRow(text); ok {
				lyrics := ""
				if i+1 < len(physical) {
					lyrics = physical[i+1]
					i++
				}
				chart.Lines = append(chart.Lines, ContentLine{
					Chunks: pairChordsWithLyrics(chords, lyrics),
				})
				continue
			}
		}

		chunks, err := parseInline(text, i+1)
		if err != nil {
			return nil, err
		}
		chart.Lines = append(chart.Lines, ContentLine{Chunks: chunks, Inline: true})
	}
	return &chart, nil
}

// splitLines splits on line breaks, tolerating CRLF and a missing final
// terminator.
func splitLines(input string) []string {
	if input == "" {
		return nil
	}
	lines := strings.Split(input, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// matchDirective recognizes a line that is entirely {content}.
func matchDirective(line string) (Directive, bool) {
	if !strings.HasPrefix(line, "{") {
		return nil, false
	}
	end := strings.IndexByte(line, '}')
	if end != len(line)-1 {
		return nil, false
	}
	return parseDirective(line[1:end]), true
}

// positionedChord is a chord with its character column in the source
// chord row.
type positionedChord struct {
	offset int
	chord  theory.Chord
}

// matchChordRow recognizes a line of nothing but whitespace-separated
// chord tokens, each bare or [bracketed], and records each token's
// column. Any token that is not wholly a chord disqualifies the line.
func matchChordRow(line string) ([]positionedChord, bool) {
	var chords []positionedChord
	pos := skipSpaces(line, 0)
	for pos < len(line) {
		chord, next, ok := matchChordToken(line, pos)
		if !ok {
			return nil, false
		}
		if next < len(line) && line[next] != ' ' && line[next] != '\t' {
			return nil, false
		}
		chords = append(chords, positionedChord{offset: pos, chord: chord})
		pos = skipSpaces(line, next)
	}
	if len(chords) == 0 {
		return nil, false
	}
	return chords, true
}

func matchChordToken(line string, pos int) (theory.Chord, int, bool) {
	if line[pos] == '[' {
		chord, rest, ok := scanChord(line[pos+1:])
		if !ok || !strings.HasPrefix(rest, "]") {
			return theory.Chord{}, pos, false
		}
		return chord, len(line) - len(rest) + 1, true
	}
	chord, rest, ok := scanChord(line[pos:])
	if !ok {
		return theory.Chord{}, pos, false
	}
	return chord, len(line) - len(rest), true
}

func skipSpaces(line string, pos int) int {
	for pos < len(line) && (line[pos] == ' ' || line[pos] == '\t') {
		pos++
	}
	return pos
}

// pairChordsWithLyrics splices a chord row into the following lyric
// line. Each chord claims the lyric span from its own column to the
// next chord's column; text before the first chord becomes a chordless
// chunk. Offsets beyond the lyric text clamp to its end, so trailing
// chords attach empty-lyric chunks.
func pairChordsWithLyrics(chords []positionedChord, lyrics string) []Chunk {
	var chunks []Chunk
	if chords[0].offset != 0 {
		end := util.Min(chords[0].offset, len(lyrics))
		chunks = append(chunks, Chunk{Lyrics: lyrics[:end]})
	}
	for i := range chords {
		chord := chords[i].chord
		start := util.Min(chords[i].offset, len(lyrics))
		end := len(lyrics)
		if i+1 < len(chords) {
			end = util.Min(chords[i+1].offset, len(lyrics))
		}
		chunks = append(chunks, Chunk{Chord: &chord, Lyrics: lyrics[start:end]})
	}
	return chunks
}

// parseInline consumes a line greedily as [chord]lyrics chunks. A `[`
// that does not open a well-formed chord is a hard error.
func parseInline(line string, lineNum int) ([]Chunk, error) {
	var chunks []Chunk
	pos := 0
	for pos < len(line) {
		var chunk Chunk
		if line[pos] == '[' {
			chord, rest, ok := scanChord(line[pos+1:])
			if !ok || !strings.HasPrefix(rest, "]") {
				return nil, &ParseError{Line: lineNum, Col: pos + 1, Msg: "malformed chord"}
			}
			chunk.Chord = &chord
			pos = len(line) - len(rest) + 1
		}
		start := pos
		for pos < len(line) && line[pos] != '[' {
			pos++
		}
		chunk.Lyrics = line[start:pos]
		chunks = append(chunks, chunk)
	}
	return chunks, nil
}

func isQualityChar(c byte) bool {
	return (c >= '0' && c <= '9') || strings.IndexByte("Majminsusadd+-", c) >= 0
}

// scanChord reads note, quality run, and an optional /bass. A slash
// whose bass fails to parse is left unconsumed.
func scanChord(s string) (theory.Chord, string, bool) {
	root, rest, ok := theory.ScanNote(s)
	if !ok {
		return theory.Chord{}, s, false
	}
	qualityEnd := 0
	for qualityEnd < len(rest) && isQualityChar(rest[qualityEnd]) {
		qualityEnd++
	}
	chord := theory.Chord{Root: root, Quality: rest[:qualityEnd]}
	rest = rest[qualityEnd:]
	if strings.HasPrefix(rest, "/") {
		if bass, afterBass, ok := theory.ScanNote(rest[1:]); ok {
			chord.Bass = bass
			rest = afterBass
		}
	}
	return chord, rest, true
}
