package content

import (
	"fmt"
	"strings"
)

// scanMode is the state of the [MarkupScanner] state machine.
type scanMode int

const (
	// modeText collects visible text for the TextTransformer.
	modeText scanMode = iota
	// modeTag copies tag syntax from '<' through '>' verbatim.
	modeTag
	// modeRawBody copies a script or style body verbatim.
	modeRawBody
)

// MarkupScanner is a [Transformer] that passes only the visible text of an
// HTML document through a [TextTransformer]. Tag syntax and script/style
// bodies are copied verbatim and the document is reassembled in order.
//
// The scanner is a single-pass text scanner, not an HTML parser. Tags end at
// the first '>', even inside a quoted attribute value, and unterminated tags
// or bodies at the end of input are copied through as-is.
type MarkupScanner struct {
	text TextTransformer
}

// NewMarkupScanner returns a [MarkupScanner] applying text to every text run.
func NewMarkupScanner(text TextTransformer) (*MarkupScanner, error) {
	if text == nil {
		return nil, fmt.Errorf("markup scanner: %w", ErrNilTransformer)
	}
	return &MarkupScanner{text: text}, nil
}

// Transform satisfies [Transformer]. It never returns an error.
func (s *MarkupScanner) Transform(document string) (string, error) {
	state := scanState{doc: document, text: s.text}
	state.out.Grow(len(document))
	return state.run(), nil
}

// scanState is the working state of a single Transform call.
type scanState struct {
	doc  string
	text TextTransformer
	out  strings.Builder

	mode scanMode
	// rawBody is set while inside a <script> or <style> element.
	rawBody bool
	// textStart is the start of the pending text run.
	textStart int
	// verbatimStart is the start of the pending run of tag syntax and
	// script/style body, all of which is copied unchanged.
	verbatimStart int
	// tagStart is the offset of the '<' opening the current tag. The tag
	// name accumulated so far is doc[tagStart:idx+1].
	tagStart int
}

func (st *scanState) run() string {
	doc := st.doc
	for idx := 0; idx < len(doc); idx++ {
		switch st.mode {
		case modeText:
			if doc[idx] == '<' {
				st.flushText(idx)
				st.verbatimStart = idx
				st.enterTag(idx)
			}
		case modeTag:
			st.scanTag(idx)
		case modeRawBody:
			if doc[idx] != '<' {
				continue
			}
			if idx+1 < len(doc) && doc[idx+1] == '/' {
				// '/' is consumed by modeTag on the next iteration.
				st.enterTag(idx)
				continue
			}
			// A bare '<' and the character after it are body content.
			idx++
		}
	}

	if st.mode == modeText {
		st.flushText(len(doc))
	} else {
		st.out.WriteString(doc[st.verbatimStart:])
	}
	return st.out.String()
}

func (st *scanState) enterTag(idx int) {
	st.tagStart = idx
	st.mode = modeTag
}

func (st *scanState) scanTag(idx int) {
	switch st.doc[st.tagStart : idx+1] {
	case "<script", "<style":
		st.rawBody = true
	case "</script", "</style":
		st.rawBody = false
	}
	if st.doc[idx] != '>' {
		return
	}
	if st.rawBody {
		st.mode = modeRawBody
		return
	}
	st.out.WriteString(st.doc[st.verbatimStart : idx+1])
	st.textStart = idx + 1
	st.mode = modeText
}

// flushText passes the text run ending at end through the TextTransformer.
func (st *scanState) flushText(end int) {
	st.out.WriteString(st.text.TransformText(st.doc[st.textStart:end]))
}
