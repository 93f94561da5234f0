package examples

import (
	"regexp"
	"strings"

	"github.com/SeaCloudHub/eventually/adapters/emitter"
	"github.com/SeaCloudHub/eventually/domain/event"
)

const (
	EventLine = "line"
	EventWord = "word"
)

var lineBreak = regexp.MustCompile(`\r?\n`)

func init() {
	decl := event.For[SentenceParser]()
	decl.EmitsArity(EventLine, 1)
	decl.EmitsArity(EventWord, 1)
}

// SentenceParser emits every line of a document, then every word of it.
type SentenceParser struct {
	*emitter.Emitter

	document string
}

func NewSentenceParser(document string, options ...emitter.Option) *SentenceParser {
	return &SentenceParser{
		Emitter:  emitter.New(event.For[SentenceParser](), options...),
		document: document,
	}
}

func (p *SentenceParser) Parse() error {
	for _, line := range lineBreak.Split(p.document, -1) {
		if err := p.Emit(EventLine, line); err != nil {
			return err
		}

		for _, word := range strings.Fields(line) {
			if err := p.Emit(EventWord, word); err != nil {
				return err
			}
		}
	}

	return nil
}
