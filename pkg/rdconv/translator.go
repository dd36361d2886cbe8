package rdconv

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// LinkState tracks whether the translator is inside an anchor, and which kind
type LinkState int

const (
	LinkOutside LinkState = iota
	LinkHref              // <a href=...>, text must be the placeholder
	LinkTarget            // <a name=...>, text passes through
)

// RowState tracks table row progress. RowJustOpened suppresses the cell
// separator for the first cell of a row.
type RowState int

const (
	RowClosed RowState = iota
	RowJustOpened
	RowInProgress
)

const (
	// redactedText marks a note about grayed-out syntax that has no meaning
	// outside the web page; text nodes containing it are dropped.
	redactedText = "Grayed out expressions are not supported"

	// linkPlaceholder is the only text accepted inside an anchor.
	linkPlaceholder = "(link)"

	// seeBelow replaces anchors that point elsewhere in the document.
	seeBelow = "(see below)"
)

// Translator writes Rd fragments for a stream of markup events.
// A Translator serves one document and is not safe for concurrent use.
type Translator struct {
	w    io.Writer
	link LinkState
	row  RowState
}

// NewTranslator returns a Translator writing to w
func NewTranslator(w io.Writer) *Translator {
	return &Translator{w: w}
}

// LinkState reports the current anchor state
func (t *Translator) LinkState() LinkState { return t.link }

// RowState reports the current table row state
func (t *Translator) RowState() RowState { return t.row }

// StartTag handles an opening tag and its attributes
func (t *Translator) StartTag(name string, attrs []html.Attribute) error {
	tag, ok := LookupTag(name)
	if !ok {
		return fmt.Errorf("%w: <%s>", ErrUnknownTag, name)
	}
	info := tag.info()

	switch info.Kind {
	case kindLink:
		if t.link != LinkOutside {
			return fmt.Errorf("%w: <a> inside <a>", ErrNestedElement)
		}
		if len(attrs) == 0 {
			return fmt.Errorf("%w: <a> without attributes", ErrMalformedLink)
		}
		switch attrs[0].Key {
		case "href":
			t.link = LinkHref
			return t.write(seeBelow)
		case "name":
			t.link = LinkTarget
			return nil
		default:
			return fmt.Errorf("%w: unexpected attribute %q on <a>", ErrMalformedLink, attrs[0].Key)
		}
	case kindRow:
		if t.row != RowClosed {
			return fmt.Errorf("%w: <tr> inside <tr>", ErrNestedElement)
		}
		t.row = RowJustOpened
		return t.write(info.Open)
	case kindCell:
		if t.row == RowJustOpened {
			t.row = RowInProgress
			return t.write(info.Open)
		}
		return t.write(cellSeparator, info.Open)
	default:
		return t.write(info.Open)
	}
}

// EndTag handles a closing tag
func (t *Translator) EndTag(name string) error {
	tag, ok := LookupTag(name)
	if !ok {
		return fmt.Errorf("%w: </%s>", ErrUnknownTag, name)
	}
	info := tag.info()

	switch info.Kind {
	case kindLink:
		t.link = LinkOutside
		return nil
	case kindRow:
		t.row = RowClosed
		return t.write(info.Close)
	default:
		return t.write(info.Close)
	}
}

// Text handles character data between tags. The data must already have its
// character references resolved.
func (t *Translator) Text(data string) error {
	if strings.Contains(data, redactedText) {
		return nil
	}
	if t.link == LinkHref {
		// The placeholder is already rendered as seeBelow by StartTag.
		if data != linkPlaceholder {
			return fmt.Errorf("%w: link text %q, want %q", ErrMalformedLink, data, linkPlaceholder)
		}
		return nil
	}
	if data == "" {
		return nil
	}
	return t.write(escapeRd(data))
}

// Finish checks the state left at the end of the document
func (t *Translator) Finish() error {
	if t.link != LinkOutside {
		return fmt.Errorf("%w: <a> not closed at end of document", ErrMalformedLink)
	}
	return nil
}

func (t *Translator) write(fragments ...string) error {
	for _, f := range fragments {
		if f == "" {
			continue
		}
		if _, err := io.WriteString(t.w, f); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}
