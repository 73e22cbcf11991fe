package chart

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/perahi/songchart/theory"
)

// Directive is one of the brace-delimited metadata lines. The set is
// closed: Title, Comment, Key, Tempo and the Other fallback.
type Directive interface {
	fmt.Stringer
	directive()
}

type Title string

type Comment string

type Key struct {
	Scale theory.Scale
}

type Tempo uint32

// Other preserves the brace-stripped content of any directive we do not
// recognize, including key/tempo directives whose value fails to parse.
// Those round-trip untouched instead of failing the chart.
type Other string

func (t Title) String() string   { return "{title:" + string(t) + "}" }
func (c Comment) String() string { return "{comment:" + string(c) + "}" }
func (k Key) String() string     { return "{key:" + k.Scale.String() + "}" }
func (t Tempo) String() string   { return fmt.Sprintf("{tempo:%d}", uint32(t)) }
func (o Other) String() string   { return "{" + string(o) + "}" }

func (Title) directive()   {}
func (Comment) directive() {}
func (Key) directive()     {}
func (Tempo) directive()   {}
func (Other) directive()   {}

// parseDirective dispatches on the text before the first colon. Anything
// unrecognized or unparseable becomes Other.
func parseDirective(content string) Directive {
	name, value, found := strings.Cut(content, ":")
	if found {
		switch name {
		case "title":
			return Title(value)
		case "comment":
			return Comment(value)
		case "key":
			if scale, err := theory.ParseScale(value); err == nil {
				return Key{Scale: scale}
			}
		case "tempo":
			if tempo, err := strconv.ParseUint(strings.TrimSpace(value), 10, 32); err == nil {
				return Tempo(tempo)
			}
		}
	}
	return Other(content)
}
